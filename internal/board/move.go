package board

import "fmt"

// Move describes an intended action: relocate piece from one cell to
// another. It is consumed only at the kernel's boundary (see
// engine.BuildMoveEvents) to produce the initial events of a resolution;
// it carries no validity or mutation semantics of its own.
type Move struct {
	From  Vector2Int
	To    Vector2Int
	Piece Piece
}

// String returns a human-readable summary, e.g. "N(1,1)->(3,3)".
func (m Move) String() string {
	id := "?"
	if m.Piece != nil {
		id = m.Piece.ID()
	}
	return fmt.Sprintf("%s%s->%s", id, m.From, m.To)
}
