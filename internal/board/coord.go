// Package board implements the immutable board and game-state model: a
// rectangular grid of tiles with sparse piece occupancy, and the
// record-style game state that wraps it.
package board

import "fmt"

// Vector2Int is an integer board coordinate (x, y). It has no invariant
// beyond totality; whether a given coordinate lies on a particular board
// is a property of that board, not of the coordinate.
type Vector2Int struct {
	X int
	Y int
}

// String returns the stable "(x,y)" form used in descriptions and logs.
func (v Vector2Int) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the coordinate offset by dx, dy.
func (v Vector2Int) Add(dx, dy int) Vector2Int {
	return Vector2Int{X: v.X + dx, Y: v.Y + dy}
}
