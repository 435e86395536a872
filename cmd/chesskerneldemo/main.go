// Command chesskerneldemo runs a short scripted game through the event
// kernel and prints the resulting event logs: a capture-then-move
// resolution, a game-over check, and one full turn (TurnStart, the move,
// TurnEnd, TurnAdvanced). An aborted resolution is reported to the
// diagnostics trace store, or to the log sink if the store cannot be
// opened.
package main

import (
	"log"

	"github.com/kestrelgames/chesskernel/internal/board"
	"github.com/kestrelgames/chesskernel/internal/diagnostics"
	"github.com/kestrelgames/chesskernel/internal/engine"
	"github.com/kestrelgames/chesskernel/internal/example"
)

func main() {
	store, err := diagnostics.NewStore()
	if err != nil {
		log.Printf("diagnostics store unavailable, falling back to log sink: %v", err)
	}
	var sink engine.DiagnosticSink = engine.LogSink{}
	if store != nil {
		defer store.Close()
		sink = store
	}

	facade := engine.NewFacade(example.SliderRuleSet{}, sink)

	b, err := board.NewBoard(8, 8, example.NewGround())
	if err != nil {
		log.Fatalf("new board: %v", err)
	}

	white := example.NewSlider(board.White, board.Vector2Int{X: 0, Y: 0})
	black := example.NewSlider(board.Black, board.Vector2Int{X: 5, Y: 0})
	reinforcement := example.NewSlider(board.Black, board.Vector2Int{X: 7, Y: 7})
	if err := b.PlacePiece(white, white.Position()); err != nil {
		log.Fatalf("place white: %v", err)
	}
	if err := b.PlacePiece(black, black.Position()); err != nil {
		log.Fatalf("place black: %v", err)
	}
	if err := b.PlacePiece(reinforcement, reinforcement.Position()); err != nil {
		log.Fatalf("place reinforcement: %v", err)
	}

	state := board.NewGameState(b, board.White, 1)

	log.Printf("turn %d: %s slides from %s toward %s", state.TurnNumber, white.Name(), white.Position(), black.Position())
	res := facade.ResolveMove(state, board.Move{From: white.Position(), To: black.Position(), Piece: white})
	for _, e := range res.EventLog {
		log.Printf("  %s: %s", e.Kind(), e.Description())
	}

	status := facade.IsGameOver(res.FinalState)
	if status.Over {
		log.Printf("game over: %s", status.Reason)
		return
	}

	turnRes := facade.ResolveTurn(res.FinalState, board.Move{From: reinforcement.Position(), To: reinforcement.Position().Add(-1, 0), Piece: reinforcement})
	for _, e := range turnRes.EventLog {
		log.Printf("  %s: %s", e.Kind(), e.Description())
	}
	log.Printf("now turn %d, %s to move", turnRes.FinalState.TurnNumber, turnRes.FinalState.CurrentPlayer)
}
