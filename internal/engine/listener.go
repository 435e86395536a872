package engine

import "github.com/kestrelgames/chesskernel/internal/board"

// ListenerContext carries the read-only context a hook is invoked with:
// the live state (for a before-hook, as of just before the current
// event; for an after-hook, just after it was applied), the event
// itself, and an immutable snapshot of the resolution's log so far.
// Hooks never receive a mutable state; any state change they want must
// flow through the events they queue or the BeforeResult they return.
type ListenerContext struct {
	State    *board.GameState
	Event    Event
	EventLog []Event
}

// resultTag discriminates the variants of BeforeResult. It is unexported
// because callers are meant to construct results only via the
// PassThrough/ReplaceOne/ReplaceMany/Cancel constructors below, never by
// building a BeforeResult literal.
type resultTag int

const (
	tagPassThrough resultTag = iota
	tagReplaceOne
	tagReplaceMany
	tagCancel
)

// BeforeResult is what a BeforeHook returns to tell the queue what to do
// with the event it was just shown. It is a tagged union, rather than
// the null/array overloading a dynamically typed host might use, so the
// four outcomes can never be confused with each other:
//   - pass-through: the event proceeds exactly as shown
//   - replace-one: a single substitute event; the before-walk continues,
//     so a later listener sees the substitute and may replace it again
//   - replace-many: an ordered sequence that takes the original's place
//     wholesale; the before-walk stops here
//   - cancel: the event never reaches Apply; the before-walk stops here
type BeforeResult struct {
	tag     resultTag
	replace []Event
}

// PassThrough lets the event proceed exactly as queued.
func PassThrough() BeforeResult {
	return BeforeResult{tag: tagPassThrough}
}

// ReplaceOne substitutes event for the one the hook was shown. Unlike
// ReplaceMany, this does not stop the before-walk: subsequent listeners
// see event in place of the original and may replace it again.
func ReplaceOne(event Event) BeforeResult {
	return BeforeResult{tag: tagReplaceOne, replace: []Event{event}}
}

// ReplaceMany substitutes events (in order) for the one the hook was
// shown and stops the before-walk; no later listener sees the original
// event again.
func ReplaceMany(events []Event) BeforeResult {
	return BeforeResult{tag: tagReplaceMany, replace: events}
}

// Cancel drops the event entirely; it never reaches Apply and is not
// recorded in the resolution's event log.
func Cancel() BeforeResult {
	return BeforeResult{tag: tagCancel}
}

// IsCancel reports whether this result cancels the event.
func (r BeforeResult) IsCancel() bool {
	return r.tag == tagCancel
}

// ReplaceOneEvent reports whether this result is a single-event
// replacement, and if so returns it.
func (r BeforeResult) ReplaceOneEvent() (Event, bool) {
	if r.tag != tagReplaceOne {
		return nil, false
	}
	return r.replace[0], true
}

// ReplaceManyEvents reports whether this result is a sequence
// replacement, and if so returns the sequence.
func (r BeforeResult) ReplaceManyEvents() ([]Event, bool) {
	if r.tag != tagReplaceMany {
		return nil, false
	}
	return r.replace, true
}

// IsPassThrough reports whether this result leaves the event unchanged.
func (r BeforeResult) IsPassThrough() bool {
	return r.tag == tagPassThrough
}

// BeforeHook is invoked before an event is applied. It may inspect state
// and event and decide whether the event proceeds, is replaced, or is
// cancelled.
type BeforeHook func(ctx ListenerContext) BeforeResult

// AfterHook is invoked after an event has been applied. It may inspect
// the resulting state and append follow-up events by returning them; it
// cannot retroactively change what already happened.
type AfterHook func(ctx ListenerContext, resultState *board.GameState) []Event

// Listener is a registered observer of event resolution. Either hook may
// be nil, letting a listener subscribe to only the phase it cares about.
// Priority orders listeners within a phase: lower values run first, and
// listeners sharing a priority run in the order they were registered
// (registration order is preserved by a stable sort, see queue.go).
type Listener struct {
	Name     string
	OnBefore BeforeHook
	OnAfter  AfterHook
	Priority int
}
