package board

// GameState is an immutable record of a board position: the board
// itself, whose turn it is, the turn counter, and the move history that
// produced this position. The state exclusively owns its board; the
// board exclusively owns its tiles and pieces.
type GameState struct {
	Board         *Board
	CurrentPlayer PlayerColor
	TurnNumber    int
	MoveHistory   []Move
}

// NewGameState builds a starting state. turnNumber must be >= 1.
func NewGameState(b *Board, currentPlayer PlayerColor, turnNumber int) *GameState {
	return &GameState{
		Board:         b,
		CurrentPlayer: currentPlayer,
		TurnNumber:    turnNumber,
		MoveHistory:   nil,
	}
}

// Clone returns a deep copy: a cloned board and an independently cloned
// move history (each recorded move's piece reference is itself cloned).
func (s *GameState) Clone() *GameState {
	return &GameState{
		Board:         s.Board.Clone(),
		CurrentPlayer: s.CurrentPlayer,
		TurnNumber:    s.TurnNumber,
		MoveHistory:   cloneMoveHistory(s.MoveHistory),
	}
}

func cloneMoveHistory(history []Move) []Move {
	if history == nil {
		return nil
	}
	out := make([]Move, len(history))
	for i, m := range history {
		clone := m
		if m.Piece != nil {
			clone.Piece = m.Piece.Clone()
		}
		out[i] = clone
	}
	return out
}

// StatePatch names the subset of GameState fields a call to WithUpdated
// should replace. A nil field (Board/CurrentPlayer/TurnNumber) or a nil
// MoveHistory slice leaves that field untouched, carried over as a deep
// clone of the previous value.
type StatePatch struct {
	Board         *Board
	CurrentPlayer *PlayerColor
	TurnNumber    *int
	MoveHistory   []Move
}

// WithUpdated returns a new GameState with the fields named in patch
// replaced; every other field is carried over as a deep clone of the old
// value, so the result shares no mutable state with s.
func (s *GameState) WithUpdated(patch StatePatch) *GameState {
	next := s.Clone()
	if patch.Board != nil {
		next.Board = patch.Board
	}
	if patch.CurrentPlayer != nil {
		next.CurrentPlayer = *patch.CurrentPlayer
	}
	if patch.TurnNumber != nil {
		next.TurnNumber = *patch.TurnNumber
	}
	if patch.MoveHistory != nil {
		next.MoveHistory = patch.MoveHistory
	}
	return next
}

// AppendMove returns a new GameState whose move history has m appended,
// leaving every other field a deep clone of s's.
func (s *GameState) AppendMove(m Move) *GameState {
	history := append(cloneMoveHistory(s.MoveHistory), m)
	return s.WithUpdated(StatePatch{MoveHistory: history})
}
