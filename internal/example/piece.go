package example

import "github.com/kestrelgames/chesskernel/internal/board"

// Slider is the example package's only piece kind: a piece that moves
// any distance along a rank, file, or diagonal (see SliderRuleSet).
type Slider struct {
	id           string
	owner        board.PlayerColor
	pos          board.Vector2Int
	movesMade    int
	capturesMade int

	// Volatile, if true, gives the piece's listener an after-hook: on
	// capturing an opponent it also destroys itself (see listener.go).
	Volatile bool
}

// NewSlider constructs a slider belonging to owner at pos.
func NewSlider(owner board.PlayerColor, pos board.Vector2Int) *Slider {
	return &Slider{id: NewPieceID("slider"), owner: owner, pos: pos}
}

func (s *Slider) ID() string                     { return s.id }
func (s *Slider) Name() string                   { return "slider" }
func (s *Slider) Owner() board.PlayerColor       { return s.owner }
func (s *Slider) Position() board.Vector2Int     { return s.pos }
func (s *Slider) SetPosition(pos board.Vector2Int) { s.pos = pos }
func (s *Slider) MovesMade() int                 { return s.movesMade }
func (s *Slider) IncrementMovesMade()            { s.movesMade++ }
func (s *Slider) CapturesMade() int              { return s.capturesMade }
func (s *Slider) IncrementCapturesMade()         { s.capturesMade++ }

func (s *Slider) Clone() board.Piece {
	c := *s
	return &c
}

// Ground is the example package's only tile kind: a plain, featureless
// cell.
type Ground struct {
	id  string
	pos board.Vector2Int
}

// NewGround constructs a ground tile.
func NewGround() *Ground {
	return &Ground{id: NewPieceID("ground")}
}

func (g *Ground) ID() string                     { return g.id }
func (g *Ground) Position() board.Vector2Int     { return g.pos }
func (g *Ground) SetPosition(pos board.Vector2Int) { g.pos = pos }

func (g *Ground) Clone() board.Tile {
	c := *g
	return &c
}
