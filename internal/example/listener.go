package example

import (
	"github.com/kestrelgames/chesskernel/internal/board"
	"github.com/kestrelgames/chesskernel/internal/engine"
)

// AsListener implements engine.ListenerProvider. A non-volatile slider
// contributes no hooks; a volatile one destroys itself immediately
// after any capture it makes (an exploding piece).
func (s *Slider) AsListener() engine.Listener {
	if !s.Volatile {
		return engine.Listener{Name: "slider:" + s.id}
	}

	return engine.Listener{
		Name: "slider:" + s.id + ":volatile",
		OnAfter: func(ctx engine.ListenerContext, resultState *board.GameState) []engine.Event {
			cap, ok := ctx.Event.(*engine.CaptureEvent)
			if !ok || cap.Attacker.ID() != s.id {
				return nil
			}
			for _, p := range resultState.Board.AllPieces() {
				if p.ID() == s.id {
					target := p
					if cap.IsPlayerAction() {
						// The capture's paired Move is queued ahead of this
						// Destroy and lands the slider on the captured cell.
						target = p.Clone()
						target.SetPosition(cap.Target.Position())
					}
					return []engine.Event{engine.NewDestroyEvent(target, "volatile piece self-destructs after capturing", s.owner, false, ctx.Event.ID())}
				}
			}
			return nil
		},
	}
}
