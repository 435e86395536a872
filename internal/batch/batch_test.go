package batch

import (
	"testing"

	"github.com/kestrelgames/chesskernel/internal/board"
	"github.com/kestrelgames/chesskernel/internal/engine"
)

type batchTile struct {
	id  string
	pos board.Vector2Int
}

func (t *batchTile) ID() string                     { return t.id }
func (t *batchTile) Position() board.Vector2Int     { return t.pos }
func (t *batchTile) SetPosition(pos board.Vector2Int) { t.pos = pos }
func (t *batchTile) Clone() board.Tile              { c := *t; return &c }

type batchPiece struct {
	id    string
	owner board.PlayerColor
	pos   board.Vector2Int
	moves int
}

func (p *batchPiece) ID() string                     { return p.id }
func (p *batchPiece) Name() string                   { return "pawn" }
func (p *batchPiece) Owner() board.PlayerColor       { return p.owner }
func (p *batchPiece) Position() board.Vector2Int     { return p.pos }
func (p *batchPiece) SetPosition(pos board.Vector2Int) { p.pos = pos }
func (p *batchPiece) MovesMade() int                 { return p.moves }
func (p *batchPiece) IncrementMovesMade()            { p.moves++ }
func (p *batchPiece) CapturesMade() int              { return 0 }
func (p *batchPiece) IncrementCapturesMade()         {}
func (p *batchPiece) Clone() board.Piece             { c := *p; return &c }

func TestRunResolvesAllJobsInOrder(t *testing.T) {
	const n = 20
	jobs := make([]Job, n)
	for i := 0; i < n; i++ {
		b, err := board.NewBoard(4, 4, &batchTile{id: "plain"})
		if err != nil {
			t.Fatalf("NewBoard failed: %v", err)
		}
		from := board.Vector2Int{X: 0, Y: 0}
		to := board.Vector2Int{X: (i % 3) + 1, Y: 0}
		p := &batchPiece{id: "p", owner: board.White}
		if err := b.PlacePiece(p, from); err != nil {
			t.Fatalf("PlacePiece failed: %v", err)
		}
		state := board.NewGameState(b, board.White, 1)
		jobs[i] = Job{
			State:  state,
			Events: []engine.Event{engine.NewMoveEvent(from, to, p, board.White, true, "")},
		}
	}

	results := Run(jobs, nil)

	if len(results) != n {
		t.Fatalf("expected %d results, got %d", n, len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("expected result %d to carry index %d, got %d", i, i, r.Index)
		}
		wantTo := board.Vector2Int{X: (i % 3) + 1, Y: 0}
		if _, ok := r.Resolution.FinalState.Board.GetPieceAt(wantTo); !ok {
			t.Errorf("job %d: expected piece at %s", i, wantTo)
		}
	}
}
