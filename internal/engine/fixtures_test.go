package engine

import "github.com/kestrelgames/chesskernel/internal/board"

type fixturePiece struct {
	id       string
	name     string
	owner    board.PlayerColor
	pos      board.Vector2Int
	moves    int
	captures int
}

func (p *fixturePiece) ID() string                    { return p.id }
func (p *fixturePiece) Name() string                  { return p.name }
func (p *fixturePiece) Owner() board.PlayerColor      { return p.owner }
func (p *fixturePiece) Position() board.Vector2Int    { return p.pos }
func (p *fixturePiece) SetPosition(pos board.Vector2Int) { p.pos = pos }
func (p *fixturePiece) MovesMade() int                { return p.moves }
func (p *fixturePiece) IncrementMovesMade()            { p.moves++ }
func (p *fixturePiece) CapturesMade() int              { return p.captures }
func (p *fixturePiece) IncrementCapturesMade()         { p.captures++ }
func (p *fixturePiece) Clone() board.Piece             { c := *p; return &c }

type fixtureTile struct {
	id  string
	pos board.Vector2Int
}

func (t *fixtureTile) ID() string                     { return t.id }
func (t *fixtureTile) Position() board.Vector2Int     { return t.pos }
func (t *fixtureTile) SetPosition(pos board.Vector2Int) { t.pos = pos }
func (t *fixtureTile) Clone() board.Tile              { c := *t; return &c }

func newFixtureBoard(width, height int) *board.Board {
	b, err := board.NewBoard(width, height, &fixtureTile{id: "plain"})
	if err != nil {
		panic(err)
	}
	return b
}
