package board

// Piece is an opaque entity occupying at most one board cell at a time.
// The kernel knows nothing about what a piece can do (that is the piece
// catalog / ability system's job, deliberately out of scope here); it
// only needs identity, ownership, position, two counters, and the
// ability to produce an independent deep copy of itself.
//
// A concrete piece type may additionally implement the Listener
// capability (see package engine); the kernel treats that as optional
// and discovers it via type assertion at the point listeners are
// assembled, not through this interface.
type Piece interface {
	ID() string
	Name() string
	Owner() PlayerColor
	Position() Vector2Int
	SetPosition(pos Vector2Int)
	MovesMade() int
	IncrementMovesMade()
	CapturesMade() int
	IncrementCapturesMade()

	// Clone returns a deep, independent copy of the piece.
	Clone() Piece
}

// Tile is an opaque entity occupying exactly one board cell. Every cell
// of a Board has exactly one tile; tiles may carry listener behavior the
// same way pieces can.
type Tile interface {
	ID() string
	Position() Vector2Int
	SetPosition(pos Vector2Int)

	// Clone returns a deep, independent copy of the tile.
	Clone() Tile
}
