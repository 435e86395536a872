package engine

import (
	"sort"

	"github.com/gammazero/deque"

	"github.com/kestrelgames/chesskernel/internal/board"
)

// MaxEventsPerResolution bounds how many events a single Resolve call
// will drain before giving up and reporting an abort. It exists so that
// a listener bug that keeps re-queuing events (an after-hook that always
// produces another event, say) cannot hang the caller forever.
const MaxEventsPerResolution = 1000

// moveCancelKey identifies a Move event that should be silently dropped
// when it is eventually dequeued, because the Capture it was paired with
// was replaced by a single non-Capture event (soft cancellation; see
// Resolve).
type moveCancelKey struct {
	from    board.Vector2Int
	to      board.Vector2Int
	pieceID string
}

func (k moveCancelKey) matches(m *MoveEvent) bool {
	return m.From == k.from && m.To == k.to && pieceID(m.Piece) == k.pieceID
}

func moveCancelKeyFor(cap *CaptureEvent) moveCancelKey {
	return moveCancelKey{from: cap.Attacker.Position(), to: cap.Target.Position(), pieceID: pieceID(cap.Attacker)}
}

// Resolution is the result of draining a resolution queue to completion
// (or to the event cap).
type Resolution struct {
	FinalState *board.GameState
	EventLog   []Event
	Aborted    bool
}

// Resolve drains initial (and whatever events listeners queue in
// response) against state, returning the resulting state, the ordered
// log of events that were actually applied, and whether the resolution
// hit MaxEventsPerResolution and was aborted.
//
// listeners are consulted in ascending Priority order; listeners sharing
// a priority run in the order given (listeners is sorted with a stable
// sort so that tie is preserved rather than left to chance).
//
// Every dequeued event passes through a soft-cancellation recheck
// against moves paired with an already-replaced capture, then the
// before-phase hook walk — listeners get a chance to
// observe, replace, or cancel an event even if it happens to already be
// stale. The only validity recheck (IsStillValid) happens inside Apply,
// against whatever event survives the before-phase (current, not the
// original dequeued event); an event that fails it is simply never
// applied and never recorded in EventLog.
func Resolve(initial []Event, state *board.GameState, listeners []Listener, sink DiagnosticSink) Resolution {
	sorted := make([]Listener, len(listeners))
	copy(sorted, listeners)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	q := deque.New[Event]()
	for _, e := range initial {
		q.PushBack(e)
	}

	var pendingCancels []moveCancelKey
	var log []Event
	aborted := false
	processed := 0

	for q.Len() > 0 {
		if processed >= MaxEventsPerResolution {
			aborted = true
			if sink != nil {
				sink.OnAborted(tail(log, 20))
			}
			break
		}

		original := q.PopFront()
		processed++

		if mv, ok := original.(*MoveEvent); ok {
			if idx := indexOfPendingCancel(pendingCancels, mv); idx >= 0 {
				pendingCancels = append(pendingCancels[:idx], pendingCancels[idx+1:]...)
				continue
			}
		}

		// Step 5: walk before-hooks. A ReplaceOne result chains: the
		// walk continues and later listeners see the substitute. A
		// Cancel or ReplaceMany result stops the walk immediately.
		current := original
		wasReplaced := false
		cancelled := false
		var sequence []Event
		stoppedWithSequence := false

		for _, l := range sorted {
			if l.OnBefore == nil {
				continue
			}
			ctx := ListenerContext{State: state, Event: current, EventLog: snapshot(log)}
			result := l.OnBefore(ctx)

			if result.IsCancel() {
				cancelled = true
				wasReplaced = true
				break
			}
			if many, ok := result.ReplaceManyEvents(); ok {
				sequence = many
				stoppedWithSequence = true
				wasReplaced = true
				break
			}
			if one, ok := result.ReplaceOneEvent(); ok {
				current = one
				wasReplaced = true
				continue
			}
			// pass-through: keep walking with the same current event
		}

		originalCapture, originalWasCapture := original.(*CaptureEvent)
		originalWasPlayerCapture := originalWasCapture && original.IsPlayerAction()

		if cancelled || stoppedWithSequence {
			// Step 6: modified became none (cancelled) or was replaced
			// wholesale (a sequence stands in for the original event
			// entirely). If the original was a player's Capture, its
			// paired Move can no longer happen: find it in the queue
			// and drop it. There is no fallback if it isn't found —
			// the Move may already have been dequeued and resolved, or
			// may never have been queued in the first place.
			if originalWasPlayerCapture {
				removeFirstMatchingMove(q, moveCancelKeyFor(originalCapture))
			}
			if stoppedWithSequence {
				for i := len(sequence) - 1; i >= 0; i-- {
					q.PushFront(sequence[i])
				}
			}
			continue
		}

		// Step 7: the event survived as a single, possibly-replaced
		// event. If the original was a player's Capture and it was
		// replaced by something other than a Capture, the paired Move
		// may still be sitting further back in the queue (not yet
		// dequeued) or may not be queued yet at all (an after-hook
		// elsewhere could still add it) — remember to drop it whenever
		// it does show up, rather than trying to find it now.
		if wasReplaced && originalWasPlayerCapture {
			if _, stillCapture := current.(*CaptureEvent); !stillCapture {
				pendingCancels = append(pendingCancels, moveCancelKeyFor(originalCapture))
			}
		}

		next := Apply(current, state)
		if next == state && !isNotification(current.Kind()) {
			// Apply left a mutating variant unapplied (its IsStillValid
			// check or its re-resolution failed inside Apply); drop it
			// rather than log a no-op.
			continue
		}
		state = next
		log = append(log, current)

		afterCtx := ListenerContext{State: state, Event: current, EventLog: snapshot(log)}
		for _, l := range sorted {
			if l.OnAfter == nil {
				continue
			}
			for _, followup := range l.OnAfter(afterCtx, state) {
				q.PushBack(followup)
			}
		}
	}

	return Resolution{FinalState: state, EventLog: log, Aborted: aborted}
}

func snapshot(log []Event) []Event {
	out := make([]Event, len(log))
	copy(out, log)
	return out
}

func indexOfPendingCancel(cancels []moveCancelKey, m *MoveEvent) int {
	for i, k := range cancels {
		if k.matches(m) {
			return i
		}
	}
	return -1
}

// removeFirstMatchingMove scans q front-to-back for the first queued
// MoveEvent matching key and removes it in place, preserving the order
// of every other queued event. It reports whether a match was found.
func removeFirstMatchingMove(q *deque.Deque[Event], key moveCancelKey) bool {
	found := -1
	for i := 0; i < q.Len(); i++ {
		if mv, ok := q.At(i).(*MoveEvent); ok && key.matches(mv) {
			found = i
			break
		}
	}
	if found < 0 {
		return false
	}

	n := q.Len()
	rest := make([]Event, 0, n-1)
	for i := 0; i < n; i++ {
		if i == found {
			continue
		}
		rest = append(rest, q.At(i))
	}
	for i := 0; i < n; i++ {
		q.PopFront()
	}
	for _, e := range rest {
		q.PushBack(e)
	}
	return true
}

func tail(events []Event, n int) []Event {
	if len(events) <= n {
		out := make([]Event, len(events))
		copy(out, events)
		return out
	}
	out := make([]Event, n)
	copy(out, events[len(events)-n:])
	return out
}
