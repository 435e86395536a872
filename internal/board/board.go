package board

import (
	"fmt"
	"sort"
)

// Board is a rectangular grid of width W and height H. It maintains a
// total mapping from cell to Tile (every cell holds exactly one) and a
// partial mapping from cell to Piece (at most one piece per cell), and
// preserves the invariant that a placed piece's Position() equals the
// cell it occupies.
type Board struct {
	Width  int
	Height int

	tiles  map[Vector2Int]Tile
	pieces map[Vector2Int]Piece
}

// NewBoard creates an empty board of the given dimensions, covered by
// defaultTile clones so that every cell holds a tile from the start.
func NewBoard(width, height int, defaultTile Tile) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board: dimensions must be >= 1, got %dx%d", width, height)
	}

	b := &Board{
		Width:  width,
		Height: height,
		tiles:  make(map[Vector2Int]Tile, width*height),
		pieces: make(map[Vector2Int]Piece),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := Vector2Int{X: x, Y: y}
			tile := defaultTile.Clone()
			tile.SetPosition(pos)
			b.tiles[pos] = tile
		}
	}

	return b, nil
}

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos Vector2Int) bool {
	return pos.X >= 0 && pos.X < b.Width && pos.Y >= 0 && pos.Y < b.Height
}

// GetTile returns the tile at pos and whether pos is on the board.
func (b *Board) GetTile(pos Vector2Int) (Tile, bool) {
	t, ok := b.tiles[pos]
	return t, ok
}

// SetTile replaces the tile at pos with a clone of tile, provided pos is
// on the board. Returns an error if pos is out of bounds.
func (b *Board) SetTile(pos Vector2Int, tile Tile) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("board: position %s out of bounds", pos)
	}
	clone := tile.Clone()
	clone.SetPosition(pos)
	b.tiles[pos] = clone
	return nil
}

// GetPieceAt returns the piece at pos, if any.
func (b *Board) GetPieceAt(pos Vector2Int) (Piece, bool) {
	p, ok := b.pieces[pos]
	return p, ok
}

// PlacePiece places piece at pos, which must be empty and on the board.
// The piece's Position is updated to match.
func (b *Board) PlacePiece(piece Piece, pos Vector2Int) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("board: position %s out of bounds", pos)
	}
	if _, occupied := b.pieces[pos]; occupied {
		return fmt.Errorf("board: position %s already occupied", pos)
	}
	piece.SetPosition(pos)
	b.pieces[pos] = piece
	return nil
}

// RemovePiece removes and returns the piece at pos, if any.
func (b *Board) RemovePiece(pos Vector2Int) (Piece, bool) {
	p, ok := b.pieces[pos]
	if ok {
		delete(b.pieces, pos)
	}
	return p, ok
}

// MovePiece relocates the piece at from to to. from must hold a piece
// and to must be empty and on the board; the piece's Position is updated.
func (b *Board) MovePiece(from, to Vector2Int) error {
	if !b.InBounds(to) {
		return fmt.Errorf("board: position %s out of bounds", to)
	}
	piece, ok := b.pieces[from]
	if !ok {
		return fmt.Errorf("board: no piece at %s", from)
	}
	if _, occupied := b.pieces[to]; occupied {
		return fmt.Errorf("board: position %s already occupied", to)
	}
	delete(b.pieces, from)
	piece.SetPosition(to)
	b.pieces[to] = piece
	return nil
}

// AllPieces returns a snapshot of every piece on the board, ordered
// deterministically by (Y, X) so that callers relying on iteration order
// (logging, test fixtures) see the same sequence across runs — Go's map
// iteration order is not stable enough on its own.
func (b *Board) AllPieces() []Piece {
	out := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Position(), out[j].Position()
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

// AllTiles returns a snapshot of every tile on the board, ordered
// deterministically by (Y, X) for the same reason AllPieces is.
func (b *Board) AllTiles() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Position(), out[j].Position()
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	return out
}

// Clone returns a deep copy of the board: every tile and every piece is
// independently cloned, so mutating the clone never touches b.
func (b *Board) Clone() *Board {
	clone := &Board{
		Width:  b.Width,
		Height: b.Height,
		tiles:  make(map[Vector2Int]Tile, len(b.tiles)),
		pieces: make(map[Vector2Int]Piece, len(b.pieces)),
	}
	for pos, t := range b.tiles {
		clone.tiles[pos] = t.Clone()
	}
	for pos, p := range b.pieces {
		clone.pieces[pos] = p.Clone()
	}
	return clone
}
