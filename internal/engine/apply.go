package engine

import (
	"github.com/kestrelgames/chesskernel/internal/board"
)

// Apply computes the state that results from applying event to state. It
// never mutates state; it always returns a fresh GameState built via
// state.WithUpdated / state.Clone, or state itself unchanged when event
// is no longer valid (checked here; Resolve does not check it
// separately) or its variant carries no board mutation.
//
// Apply is the single place the kernel knows what each event variant
// does. Adding a variant means adding a case here and to events.go; there
// is deliberately no generic "mutate" method on Event, so every effect is
// visible in one type switch.
func Apply(event Event, state *board.GameState) *board.GameState {
	if !event.IsStillValid(state) {
		return state
	}

	switch e := event.(type) {
	case *MoveEvent:
		return applyMove(e, state)
	case *CaptureEvent:
		return applyCapture(e, state)
	case *DestroyEvent:
		return applyDestroy(e, state)
	case *PiecePlacedEvent:
		return applyPiecePlaced(e, state)
	case *TileChangedEvent:
		return applyTileChanged(e, state)
	case *PieceChangedEvent:
		return applyPieceChanged(e, state)
	case *TurnAdvancedEvent:
		return applyTurnAdvanced(e, state)
	case *TurnStartEvent, *TurnEndEvent, *TimeOutEvent, *GameOverEvent:
		// Pure notification variants: listeners may react to them, but they
		// carry no state mutation of their own.
		return state
	default:
		// An Event implementation outside the variants above carries no
		// mutation Apply knows how to perform; state is returned unchanged.
		return state
	}
}

func applyMove(e *MoveEvent, state *board.GameState) *board.GameState {
	next := state.Clone()
	if err := next.Board.MovePiece(e.From, e.To); err != nil {
		return state
	}
	if moved, ok := next.Board.GetPieceAt(e.To); ok {
		moved.IncrementMovesMade()
	}
	return next.AppendMove(board.Move{From: e.From, To: e.To, Piece: e.Piece})
}

func applyCapture(e *CaptureEvent, state *board.GameState) *board.GameState {
	next := state.Clone()
	target, ok := next.Board.GetPieceAt(e.Target.Position())
	if !ok || target.ID() != e.Target.ID() {
		return state
	}
	if _, ok := next.Board.RemovePiece(target.Position()); !ok {
		return state
	}
	if attacker, ok := next.Board.GetPieceAt(e.Attacker.Position()); ok && attacker.ID() == e.Attacker.ID() {
		attacker.IncrementCapturesMade()
	}
	return next
}

func applyDestroy(e *DestroyEvent, state *board.GameState) *board.GameState {
	next := state.Clone()
	target, ok := next.Board.GetPieceAt(e.Target.Position())
	if !ok || target.ID() != e.Target.ID() {
		return state
	}
	if _, ok := next.Board.RemovePiece(target.Position()); !ok {
		return state
	}
	return next
}

func applyPiecePlaced(e *PiecePlacedEvent, state *board.GameState) *board.GameState {
	next := state.Clone()
	piece := e.Piece.Clone()
	if err := next.Board.PlacePiece(piece, e.Position); err != nil {
		return state
	}
	return next
}

func applyTileChanged(e *TileChangedEvent, state *board.GameState) *board.GameState {
	next := state.Clone()
	if err := next.Board.SetTile(e.Position, e.NewTile); err != nil {
		return state
	}
	return next
}

func applyPieceChanged(e *PieceChangedEvent, state *board.GameState) *board.GameState {
	next := state.Clone()
	old, ok := findPieceByID(next.Board, e.OldPiece.ID())
	if !ok {
		return state
	}
	pos := old.Position()
	if _, ok := next.Board.RemovePiece(pos); !ok {
		return state
	}
	replacement := e.NewPiece.Clone()
	if err := next.Board.PlacePiece(replacement, pos); err != nil {
		return state
	}
	return next
}

func applyTurnAdvanced(e *TurnAdvancedEvent, state *board.GameState) *board.GameState {
	next := e.NextPlayer
	turn := e.TurnNumber
	return state.WithUpdated(board.StatePatch{
		CurrentPlayer: &next,
		TurnNumber:    &turn,
	})
}
