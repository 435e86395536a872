package engine

import "github.com/kestrelgames/chesskernel/internal/board"

// GameOverStatus reports whether a game has ended and, if so, why.
type GameOverStatus struct {
	Over   bool
	Winner board.PlayerColor
	// Draw is set when the game ended without a winner.
	Draw   bool
	Reason string
}

// RuleSet supplies everything the kernel itself deliberately does not
// know: what moves are legal and whether the game has ended. Expanding a
// chosen move into its initial event list is the kernel's own job (see
// Facade.BuildMoveEvents) — every ruleset gets the same Capture+Move
// coupling, since that invariant belongs to the kernel, not to any one
// game's rules.
type RuleSet interface {
	// LegalMoves returns every move player may make from state.
	LegalMoves(state *board.GameState, player board.PlayerColor) []board.Move

	// CheckGameOver inspects state and reports whether the game has ended.
	CheckGameOver(state *board.GameState) GameOverStatus
}
