// Package example provides a minimal, concrete RuleSet, Piece, and Tile
// implementation for exercising the kernel end to end: a slider piece
// that moves any number of cells in a straight line, captures by landing
// on an opponent, and loses on having no pieces left. It exists to give
// the kernel something runnable; it encodes no real game's rules.
package example

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelgames/chesskernel/internal/board"
	"github.com/kestrelgames/chesskernel/internal/engine"
)

// SliderRuleSet implements engine.RuleSet for pieces that slide any
// distance along a rank, file, or diagonal until blocked.
type SliderRuleSet struct{}

var directions = []board.Vector2Int{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// LegalMoves returns every slide available to player's pieces, stopping
// each ray at the first occupied cell (inclusive, if it holds an
// opponent).
func (SliderRuleSet) LegalMoves(state *board.GameState, player board.PlayerColor) []board.Move {
	var moves []board.Move
	for _, p := range state.Board.AllPieces() {
		if p.Owner() != player {
			continue
		}
		for _, dir := range directions {
			pos := p.Position()
			for {
				pos = pos.Add(dir.X, dir.Y)
				if !state.Board.InBounds(pos) {
					break
				}
				occupant, occupied := state.Board.GetPieceAt(pos)
				if occupied && occupant.Owner() == player {
					break
				}
				moves = append(moves, board.Move{From: p.Position(), To: pos, Piece: p})
				if occupied {
					break
				}
			}
		}
	}
	return moves
}

// CheckGameOver declares the game over, undecided until one side has no
// pieces left.
func (SliderRuleSet) CheckGameOver(state *board.GameState) engine.GameOverStatus {
	whiteAlive, blackAlive := false, false
	for _, p := range state.Board.AllPieces() {
		switch p.Owner() {
		case board.White:
			whiteAlive = true
		case board.Black:
			blackAlive = true
		}
	}
	switch {
	case whiteAlive && blackAlive:
		return engine.GameOverStatus{}
	case whiteAlive:
		return engine.GameOverStatus{Over: true, Winner: board.White, Reason: "Black has no pieces left"}
	case blackAlive:
		return engine.GameOverStatus{Over: true, Winner: board.Black, Reason: "White has no pieces left"}
	default:
		return engine.GameOverStatus{Over: true, Draw: true, Reason: "no pieces remain"}
	}
}

// NewPieceID mints a fresh piece identity.
func NewPieceID(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.NewString())
}
