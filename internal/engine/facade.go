package engine

import "github.com/kestrelgames/chesskernel/internal/board"

// ListenerProvider is implemented by a piece or tile type that wants to
// participate in resolution as a listener. The kernel discovers it by
// type assertion when gathering listeners for a resolution, rather than
// through board.Piece/board.Tile themselves, so that package board stays
// free of any dependency on package engine.
type ListenerProvider interface {
	AsListener() Listener
}

// Facade is the kernel's external entry point: a RuleSet plus the
// globally registered listeners (clocks, achievement trackers, anything
// not tied to a particular piece or tile) needed to turn a player's
// intent into a resolved GameState.
type Facade struct {
	Rules              RuleSet
	Sink               DiagnosticSink
	globalListeners    []Listener
}

// NewFacade builds a Facade. sink may be nil, in which case LogSink is
// used.
func NewFacade(rules RuleSet, sink DiagnosticSink) *Facade {
	if sink == nil {
		sink = LogSink{}
	}
	return &Facade{Rules: rules, Sink: sink}
}

// RegisterListener adds l to the set of listeners consulted on every
// resolution, in addition to whatever piece/tile listeners the board
// itself contributes.
func (f *Facade) RegisterListener(l Listener) {
	f.globalListeners = append(f.globalListeners, l)
}

// GetLegalMoves delegates to the RuleSet.
func (f *Facade) GetLegalMoves(state *board.GameState, player board.PlayerColor) []board.Move {
	return f.Rules.LegalMoves(state, player)
}

// IsGameOver delegates to the RuleSet.
func (f *Facade) IsGameOver(state *board.GameState) GameOverStatus {
	return f.Rules.CheckGameOver(state)
}

// BuildMoveEvents expands a chosen move into the initial event list a
// resolution should start from. This is the kernel's own algorithm, not
// the RuleSet's: look up the piece at move.From; if it is gone, there is
// nothing to resolve; if move.To is occupied, the move first captures
// whatever is there, so a Capture is emitted ahead of the Move.
func (f *Facade) BuildMoveEvents(state *board.GameState, move board.Move) []Event {
	mover, ok := state.Board.GetPieceAt(move.From)
	if !ok {
		return nil
	}

	if target, occupied := state.Board.GetPieceAt(move.To); occupied {
		capture := NewCaptureEvent(mover, target, mover.Owner(), true, "")
		mv := NewMoveEvent(move.From, move.To, mover, mover.Owner(), true, capture.ID())
		return []Event{capture, mv}
	}

	return []Event{NewMoveEvent(move.From, move.To, mover, mover.Owner(), true, "")}
}

// ResolveMove expands move into its initial event list and resolves it
// against state.
func (f *Facade) ResolveMove(state *board.GameState, move board.Move) Resolution {
	return f.ResolveEvents(state, f.BuildMoveEvents(state, move))
}

// ResolveEvent resolves a single event against state.
func (f *Facade) ResolveEvent(state *board.GameState, event Event) Resolution {
	return f.ResolveEvents(state, []Event{event})
}

// ResolveEvents resolves an arbitrary initial event list against state.
// This is the common path every other Resolve* method funnels through.
func (f *Facade) ResolveEvents(state *board.GameState, initial []Event) Resolution {
	listeners := f.gatherListeners(state)
	return Resolve(initial, state, listeners, f.Sink)
}

// ResolveTurn resolves a full turn: TurnStart, then the move itself
// (via BuildMoveEvents, with the same Capture+Move coupling any other
// move resolution gets), then TurnEnd, then TurnAdvanced to the other
// player. Each stage's final state feeds the next, and their event logs
// are concatenated in order, so the combined log reads as a single
// resolution even though it is four Resolve calls under the hood.
func (f *Facade) ResolveTurn(state *board.GameState, move board.Move) Resolution {
	current := state.CurrentPlayer
	turnNumber := state.TurnNumber
	next := current.Opponent()

	startRes := f.ResolveEvent(state, NewTurnStartEvent(current, turnNumber, current))
	moveRes := f.ResolveMove(startRes.FinalState, move)
	endRes := f.ResolveEvent(moveRes.FinalState, NewTurnEndEvent(current, turnNumber, current))
	advRes := f.ResolveEvent(endRes.FinalState, NewTurnAdvancedEvent(next, turnNumber+1, current))

	log := make([]Event, 0, len(startRes.EventLog)+len(moveRes.EventLog)+len(endRes.EventLog)+len(advRes.EventLog))
	log = append(log, startRes.EventLog...)
	log = append(log, moveRes.EventLog...)
	log = append(log, endRes.EventLog...)
	log = append(log, advRes.EventLog...)

	aborted := startRes.Aborted || moveRes.Aborted || endRes.Aborted || advRes.Aborted

	return Resolution{FinalState: advRes.FinalState, EventLog: log, Aborted: aborted}
}

// gatherListeners collects every listener that should be consulted for a
// resolution against state: globally registered listeners plus any piece
// or tile on the board that implements ListenerProvider.
func (f *Facade) gatherListeners(state *board.GameState) []Listener {
	listeners := make([]Listener, 0, len(f.globalListeners))
	listeners = append(listeners, f.globalListeners...)

	for _, p := range state.Board.AllPieces() {
		if lp, ok := p.(ListenerProvider); ok {
			listeners = append(listeners, lp.AsListener())
		}
	}
	for _, t := range state.Board.AllTiles() {
		if lp, ok := t.(ListenerProvider); ok {
			listeners = append(listeners, lp.AsListener())
		}
	}
	return listeners
}
