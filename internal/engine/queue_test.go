package engine

import (
	"testing"

	"github.com/kestrelgames/chesskernel/internal/board"
)

func TestResolvePlainMove(t *testing.T) {
	b := newFixtureBoard(4, 4)
	from := board.Vector2Int{X: 0, Y: 0}
	to := board.Vector2Int{X: 1, Y: 0}
	p := &fixturePiece{id: "p1"}
	if err := b.PlacePiece(p, from); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	res := Resolve([]Event{NewMoveEvent(from, to, p, board.White, true, "")}, state, nil, nil)

	if res.Aborted {
		t.Fatal("expected resolution not to abort")
	}
	if len(res.EventLog) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(res.EventLog))
	}
	if _, ok := res.FinalState.Board.GetPieceAt(to); !ok {
		t.Error("expected piece at destination after resolution")
	}
}

func TestResolveBeforeHookCancelsEvent(t *testing.T) {
	b := newFixtureBoard(4, 4)
	from := board.Vector2Int{X: 0, Y: 0}
	to := board.Vector2Int{X: 1, Y: 0}
	p := &fixturePiece{id: "p1"}
	if err := b.PlacePiece(p, from); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	blocker := Listener{
		Name: "blocker",
		OnBefore: func(ctx ListenerContext) BeforeResult {
			return Cancel()
		},
	}

	res := Resolve([]Event{NewMoveEvent(from, to, p, board.White, true, "")}, state, []Listener{blocker}, nil)

	if len(res.EventLog) != 0 {
		t.Fatalf("expected cancelled event not to be logged, got %d entries", len(res.EventLog))
	}
	if _, ok := res.FinalState.Board.GetPieceAt(from); !ok {
		t.Error("expected piece to remain at its original cell after cancellation")
	}
}

func TestResolveBeforeHookReplacesEvent(t *testing.T) {
	b := newFixtureBoard(4, 4)
	from := board.Vector2Int{X: 0, Y: 0}
	intended := board.Vector2Int{X: 1, Y: 0}
	redirected := board.Vector2Int{X: 3, Y: 3}
	p := &fixturePiece{id: "p1"}
	if err := b.PlacePiece(p, from); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	redirect := Listener{
		Name: "redirect",
		OnBefore: func(ctx ListenerContext) BeforeResult {
			mv, ok := ctx.Event.(*MoveEvent)
			if !ok {
				return PassThrough()
			}
			return ReplaceOne(NewMoveEvent(mv.From, redirected, mv.Piece, mv.Actor(), mv.IsPlayerAction(), ""))
		},
	}

	res := Resolve([]Event{NewMoveEvent(from, intended, p, board.White, true, "")}, state, []Listener{redirect}, nil)

	if _, ok := res.FinalState.Board.GetPieceAt(intended); ok {
		t.Error("expected original destination to remain empty")
	}
	if _, ok := res.FinalState.Board.GetPieceAt(redirected); !ok {
		t.Error("expected piece at redirected destination")
	}
}

func TestResolveAfterHookFansOutFollowupEvents(t *testing.T) {
	b := newFixtureBoard(4, 4)
	from := board.Vector2Int{X: 0, Y: 0}
	to := board.Vector2Int{X: 1, Y: 0}
	victimPos := board.Vector2Int{X: 2, Y: 0}
	p := &fixturePiece{id: "mover"}
	victim := &fixturePiece{id: "victim"}
	if err := b.PlacePiece(p, from); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	if err := b.PlacePiece(victim, victimPos); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	exploder := Listener{
		Name: "exploder",
		OnAfter: func(ctx ListenerContext, resultState *board.GameState) []Event {
			if _, ok := ctx.Event.(*MoveEvent); !ok {
				return nil
			}
			return []Event{NewDestroyEvent(victim, "chain reaction", board.White, false, ctx.Event.ID())}
		},
	}

	res := Resolve([]Event{NewMoveEvent(from, to, p, board.White, true, "")}, state, []Listener{exploder}, nil)

	if len(res.EventLog) != 2 {
		t.Fatalf("expected move + destroy logged, got %d", len(res.EventLog))
	}
	if _, ok := res.FinalState.Board.GetPieceAt(victimPos); ok {
		t.Error("expected victim destroyed by after-hook follow-up")
	}
}

func TestResolveHardCancelsQueuedMoveWhenCaptureIsCancelled(t *testing.T) {
	b := newFixtureBoard(4, 4)
	attackerPos := board.Vector2Int{X: 0, Y: 0}
	targetPos := board.Vector2Int{X: 1, Y: 0}
	attacker := &fixturePiece{id: "atk"}
	target := &fixturePiece{id: "tgt"}
	if err := b.PlacePiece(attacker, attackerPos); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	if err := b.PlacePiece(target, targetPos); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	capture := NewCaptureEvent(attacker, target, board.White, true, "")
	move := NewMoveEvent(attackerPos, targetPos, attacker, board.White, true, "")

	protectTarget := Listener{
		Name: "shield",
		OnBefore: func(ctx ListenerContext) BeforeResult {
			if _, ok := ctx.Event.(*CaptureEvent); ok {
				return Cancel()
			}
			return PassThrough()
		},
	}

	res := Resolve([]Event{capture, move}, state, []Listener{protectTarget}, nil)

	if _, ok := res.FinalState.Board.GetPieceAt(targetPos); !ok {
		t.Error("expected shielded target to remain on the board")
	}
	if _, ok := res.FinalState.Board.GetPieceAt(attackerPos); !ok {
		t.Error("expected attacker to remain at its original cell since the paired move was also cancelled")
	}
	if len(res.EventLog) != 0 {
		t.Errorf("expected neither capture nor its paired move to be logged, got %d entries", len(res.EventLog))
	}
}

func TestResolveSoftCancelsQueuedMoveWhenCaptureIsReplaced(t *testing.T) {
	b := newFixtureBoard(4, 4)
	attackerPos := board.Vector2Int{X: 0, Y: 0}
	targetPos := board.Vector2Int{X: 1, Y: 0}
	attacker := &fixturePiece{id: "atk"}
	target := &fixturePiece{id: "tgt"}
	if err := b.PlacePiece(attacker, attackerPos); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	if err := b.PlacePiece(target, targetPos); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	capture := NewCaptureEvent(attacker, target, board.White, true, "")
	move := NewMoveEvent(attackerPos, targetPos, attacker, board.White, true, "")

	// A ranged-effect listener replaces the Capture with a Destroy of the
	// same target. The replacement is a single event (ReplaceOne), so the
	// before-walk would ordinarily continue rather than stop — but since
	// the original event was a player's Capture and its replacement is not
	// itself a Capture, the queued Move that assumed the capture happened
	// must still be dropped once it is dequeued.
	ranged := Listener{
		Name: "ranged",
		OnBefore: func(ctx ListenerContext) BeforeResult {
			cap, ok := ctx.Event.(*CaptureEvent)
			if !ok {
				return PassThrough()
			}
			return ReplaceOne(NewDestroyEvent(cap.Target, "ranged", cap.Actor(), true, ""))
		},
	}

	res := Resolve([]Event{capture, move}, state, []Listener{ranged}, nil)

	if len(res.EventLog) != 1 || res.EventLog[0].Kind() != KindDestroy {
		t.Fatalf("expected only the Destroy to be logged, got %v", res.EventLog)
	}
	if _, ok := res.FinalState.Board.GetPieceAt(targetPos); ok {
		t.Error("expected the target cell to be empty after the ranged destroy")
	}
	if _, ok := res.FinalState.Board.GetPieceAt(attackerPos); !ok {
		t.Error("expected the attacker to remain in place since its paired move was soft-cancelled")
	}
}

func TestResolveBeforeHookChainsThroughMultipleReplacements(t *testing.T) {
	b := newFixtureBoard(8, 8)
	from := board.Vector2Int{X: 0, Y: 0}
	firstHop := board.Vector2Int{X: 3, Y: 3}
	secondHop := board.Vector2Int{X: 5, Y: 5}
	finalHop := board.Vector2Int{X: 7, Y: 7}
	p := &fixturePiece{id: "p1"}
	if err := b.PlacePiece(p, from); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	// priority 0 rewrites the destination once; priority 1 sees that
	// rewritten event and rewrites it again. ReplaceOne must chain: both
	// listeners get a say, and only the final event is ever applied or
	// logged.
	first := Listener{
		Name:     "first",
		Priority: 0,
		OnBefore: func(ctx ListenerContext) BeforeResult {
			mv, ok := ctx.Event.(*MoveEvent)
			if !ok || mv.To != firstHop {
				return PassThrough()
			}
			return ReplaceOne(NewMoveEvent(mv.From, secondHop, mv.Piece, mv.Actor(), mv.IsPlayerAction(), ""))
		},
	}
	second := Listener{
		Name:     "second",
		Priority: 1,
		OnBefore: func(ctx ListenerContext) BeforeResult {
			mv, ok := ctx.Event.(*MoveEvent)
			if !ok || mv.To != secondHop {
				t.Fatalf("expected second listener to see the first listener's replacement, got %v", ctx.Event)
			}
			return ReplaceOne(NewMoveEvent(mv.From, finalHop, mv.Piece, mv.Actor(), mv.IsPlayerAction(), ""))
		},
	}

	res := Resolve([]Event{NewMoveEvent(from, firstHop, p, board.White, true, "")}, state, []Listener{first, second}, nil)

	if len(res.EventLog) != 1 {
		t.Fatalf("expected exactly one event logged, got %d", len(res.EventLog))
	}
	if _, ok := res.FinalState.Board.GetPieceAt(finalHop); !ok {
		t.Error("expected the piece to land at the final, twice-replaced destination")
	}
	if _, ok := res.FinalState.Board.GetPieceAt(firstHop); ok {
		t.Error("expected the intermediate destination to be untouched")
	}
	if _, ok := res.FinalState.Board.GetPieceAt(secondHop); ok {
		t.Error("expected the second intermediate destination to be untouched")
	}
}

func TestResolveAbortsAtEventCap(t *testing.T) {
	b := newFixtureBoard(4, 4)
	pos := board.Vector2Int{X: 0, Y: 0}
	p := &fixturePiece{id: "looper"}
	if err := b.PlacePiece(p, pos); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}
	state := board.NewGameState(b, board.White, 1)

	var aborted []Event
	sink := funcSink(func(recent []Event) { aborted = recent })

	// Every GameOver notification's after-hook queues another one, which
	// never mutates the board (so IsStillValid always holds) and so would
	// never terminate on its own.
	looper := Listener{
		Name: "looper",
		OnAfter: func(ctx ListenerContext, resultState *board.GameState) []Event {
			return []Event{NewGameOverEvent(board.Black, board.White)}
		},
	}

	res := Resolve([]Event{NewGameOverEvent(board.Black, board.White)}, state, []Listener{looper}, sink)

	if !res.Aborted {
		t.Fatal("expected resolution to abort at the event cap")
	}
	if aborted == nil {
		t.Error("expected the diagnostic sink to be invoked on abort")
	}
}

type funcSink func(recent []Event)

func (f funcSink) OnAborted(recent []Event) { f(recent) }
