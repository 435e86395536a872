package example

import (
	"testing"

	"github.com/kestrelgames/chesskernel/internal/board"
	"github.com/kestrelgames/chesskernel/internal/engine"
)

func newExampleBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.NewBoard(8, 8, NewGround())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func TestSliderLegalMovesStopsAtFirstOccupant(t *testing.T) {
	b := newExampleBoard(t)
	mover := NewSlider(board.White, board.Vector2Int{X: 0, Y: 0})
	blocker := NewSlider(board.White, board.Vector2Int{X: 3, Y: 0})
	if err := b.PlacePiece(mover, mover.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	if err := b.PlacePiece(blocker, blocker.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	moves := SliderRuleSet{}.LegalMoves(state, board.White)

	for _, m := range moves {
		if m.From == mover.Position() && m.To.Y == 0 && m.To.X >= 3 {
			t.Errorf("expected ray to stop before a friendly occupant, got move to %s", m.To)
		}
	}
}

func TestSliderCaptureThenMove(t *testing.T) {
	b := newExampleBoard(t)
	attacker := NewSlider(board.White, board.Vector2Int{X: 0, Y: 0})
	target := NewSlider(board.Black, board.Vector2Int{X: 3, Y: 0})
	if err := b.PlacePiece(attacker, attacker.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	if err := b.PlacePiece(target, target.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	facade := engine.NewFacade(SliderRuleSet{}, nil)
	res := facade.ResolveMove(state, board.Move{From: attacker.Position(), To: target.Position(), Piece: attacker})

	if len(res.EventLog) != 2 {
		t.Fatalf("expected capture+move logged, got %d", len(res.EventLog))
	}
	if got, ok := res.FinalState.Board.GetPieceAt(target.Position()); !ok || got.ID() != attacker.ID() {
		t.Fatalf("expected attacker at %s after capture, got %v ok=%v", target.Position(), got, ok)
	}
}

func TestVolatileSliderSelfDestructsAfterCapture(t *testing.T) {
	b := newExampleBoard(t)
	attacker := NewSlider(board.White, board.Vector2Int{X: 0, Y: 0})
	attacker.Volatile = true
	target := NewSlider(board.Black, board.Vector2Int{X: 3, Y: 0})
	if err := b.PlacePiece(attacker, attacker.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	if err := b.PlacePiece(target, target.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	facade := engine.NewFacade(SliderRuleSet{}, nil)
	res := facade.ResolveMove(state, board.Move{From: attacker.Position(), To: target.Position(), Piece: attacker})

	if _, ok := res.FinalState.Board.GetPieceAt(target.Position()); ok {
		t.Error("expected the volatile attacker to have self-destructed, leaving the cell empty")
	}
	status := SliderRuleSet{}.CheckGameOver(res.FinalState)
	if !status.Over || !status.Draw {
		t.Errorf("expected a draw with both pieces gone, got %+v", status)
	}
}

func TestCheckGameOverDeclaresWinnerWhenOneSideRemains(t *testing.T) {
	b := newExampleBoard(t)
	survivor := NewSlider(board.White, board.Vector2Int{X: 0, Y: 0})
	if err := b.PlacePiece(survivor, survivor.Position()); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	status := SliderRuleSet{}.CheckGameOver(state)
	if !status.Over || status.Winner != board.White || status.Draw {
		t.Errorf("expected White to win, got %+v", status)
	}
}
