// Package engine implements the event-resolution kernel: the tagged
// event family, the pure applier, and the listener-driven queue that
// drains an initial event list into a final state and event log.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelgames/chesskernel/internal/board"
)

// EventKind names an event variant. It exists for logging and for
// callers that want to branch on variant without a type switch; the
// kernel itself always dispatches via type switch (see apply.go).
type EventKind string

const (
	KindMove         EventKind = "Move"
	KindCapture      EventKind = "Capture"
	KindDestroy      EventKind = "Destroy"
	KindPiecePlaced  EventKind = "PiecePlaced"
	KindTileChanged  EventKind = "TileChanged"
	KindPieceChanged EventKind = "PieceChanged"
	KindTurnAdvanced EventKind = "TurnAdvanced"
	KindTurnStart    EventKind = "TurnStart"
	KindTurnEnd      EventKind = "TurnEnd"
	KindTimeOut      EventKind = "TimeOut"
	KindGameOver     EventKind = "GameOver"
)

// Event is the common surface of every atomic effect the kernel can
// resolve. Concrete variants are value-carrying structs (see below);
// Event is implemented as a sum type via interface + type switch rather
// than a class hierarchy, so the applier can pattern-match exhaustively.
type Event interface {
	ID() string
	Kind() EventKind
	SourceID() string
	Actor() board.PlayerColor
	IsPlayerAction() bool
	Description() string

	// IsStillValid reports whether this event's validity predicate holds
	// against state. It does not mutate state.
	IsStillValid(state *board.GameState) bool
}

// base carries the fields common to every event variant. Each concrete
// variant embeds it and implements Kind and IsStillValid itself.
type base struct {
	id             string
	sourceID       string
	actor          board.PlayerColor
	isPlayerAction bool
	description    string
}

func newBase(sourceID string, actor board.PlayerColor, isPlayerAction bool, description string) base {
	return base{
		id:             uuid.NewString(),
		sourceID:       sourceID,
		actor:          actor,
		isPlayerAction: isPlayerAction,
		description:    description,
	}
}

func (b base) ID() string                  { return b.id }
func (b base) SourceID() string            { return b.sourceID }
func (b base) Actor() board.PlayerColor    { return b.actor }
func (b base) IsPlayerAction() bool        { return b.isPlayerAction }
func (b base) Description() string         { return b.description }

// MoveEvent relocates a piece from one cell to another.
type MoveEvent struct {
	base
	From  board.Vector2Int
	To    board.Vector2Int
	Piece board.Piece
}

// NewMoveEvent constructs a Move event with a default human-readable
// description.
func NewMoveEvent(from, to board.Vector2Int, piece board.Piece, actor board.PlayerColor, isPlayerAction bool, sourceID string) *MoveEvent {
	desc := fmt.Sprintf("move %s from %s to %s", pieceID(piece), from, to)
	return &MoveEvent{base: newBase(sourceID, actor, isPlayerAction, desc), From: from, To: to, Piece: piece}
}

func (e *MoveEvent) Kind() EventKind { return KindMove }

func (e *MoveEvent) IsStillValid(state *board.GameState) bool {
	p, ok := state.Board.GetPieceAt(e.From)
	return ok && p.ID() == e.Piece.ID()
}

// CaptureEvent removes target, credited to attacker.
type CaptureEvent struct {
	base
	Attacker board.Piece
	Target   board.Piece
}

func NewCaptureEvent(attacker, target board.Piece, actor board.PlayerColor, isPlayerAction bool, sourceID string) *CaptureEvent {
	desc := fmt.Sprintf("%s captures %s", pieceID(attacker), pieceID(target))
	return &CaptureEvent{base: newBase(sourceID, actor, isPlayerAction, desc), Attacker: attacker, Target: target}
}

func (e *CaptureEvent) Kind() EventKind { return KindCapture }

func (e *CaptureEvent) IsStillValid(state *board.GameState) bool {
	attacker, ok := state.Board.GetPieceAt(e.Attacker.Position())
	if !ok || attacker.ID() != e.Attacker.ID() {
		return false
	}
	target, ok := state.Board.GetPieceAt(e.Target.Position())
	return ok && target.ID() == e.Target.ID()
}

// DestroyEvent removes target for reason, without crediting an attacker
// (used for cascades: explosions, ranged effects, environmental hazards).
type DestroyEvent struct {
	base
	Target board.Piece
	Reason string
}

func NewDestroyEvent(target board.Piece, reason string, actor board.PlayerColor, isPlayerAction bool, sourceID string) *DestroyEvent {
	desc := fmt.Sprintf("destroy %s (%s)", pieceID(target), reason)
	return &DestroyEvent{base: newBase(sourceID, actor, isPlayerAction, desc), Target: target, Reason: reason}
}

func (e *DestroyEvent) Kind() EventKind { return KindDestroy }

func (e *DestroyEvent) IsStillValid(state *board.GameState) bool {
	target, ok := state.Board.GetPieceAt(e.Target.Position())
	return ok && target.ID() == e.Target.ID()
}

// PiecePlacedEvent places a fresh piece onto an empty cell.
type PiecePlacedEvent struct {
	base
	Piece    board.Piece
	Position board.Vector2Int
}

func NewPiecePlacedEvent(piece board.Piece, pos board.Vector2Int, actor board.PlayerColor, isPlayerAction bool, sourceID string) *PiecePlacedEvent {
	desc := fmt.Sprintf("place %s at %s", pieceID(piece), pos)
	return &PiecePlacedEvent{base: newBase(sourceID, actor, isPlayerAction, desc), Piece: piece, Position: pos}
}

func (e *PiecePlacedEvent) Kind() EventKind { return KindPiecePlaced }

func (e *PiecePlacedEvent) IsStillValid(state *board.GameState) bool {
	_, occupied := state.Board.GetPieceAt(e.Position)
	return !occupied
}

// TileChangedEvent replaces the tile at a cell.
type TileChangedEvent struct {
	base
	Position board.Vector2Int
	OldTile  board.Tile
	NewTile  board.Tile
}

func NewTileChangedEvent(pos board.Vector2Int, oldTile, newTile board.Tile, actor board.PlayerColor, isPlayerAction bool, sourceID string) *TileChangedEvent {
	desc := fmt.Sprintf("change tile at %s", pos)
	return &TileChangedEvent{base: newBase(sourceID, actor, isPlayerAction, desc), Position: pos, OldTile: oldTile, NewTile: newTile}
}

func (e *TileChangedEvent) Kind() EventKind { return KindTileChanged }

func (e *TileChangedEvent) IsStillValid(state *board.GameState) bool {
	if !state.Board.InBounds(e.Position) {
		return false
	}
	cur, ok := state.Board.GetTile(e.Position)
	return ok && cur.ID() == e.OldTile.ID()
}

// PieceChangedEvent replaces one piece with another at the same cell
// (promotion, transformation).
type PieceChangedEvent struct {
	base
	OldPiece board.Piece
	NewPiece board.Piece
	Position board.Vector2Int
}

func NewPieceChangedEvent(oldPiece, newPiece board.Piece, pos board.Vector2Int, actor board.PlayerColor, isPlayerAction bool, sourceID string) *PieceChangedEvent {
	desc := fmt.Sprintf("change %s into %s at %s", pieceID(oldPiece), pieceID(newPiece), pos)
	return &PieceChangedEvent{base: newBase(sourceID, actor, isPlayerAction, desc), OldPiece: oldPiece, NewPiece: newPiece, Position: pos}
}

func (e *PieceChangedEvent) Kind() EventKind { return KindPieceChanged }

func (e *PieceChangedEvent) IsStillValid(state *board.GameState) bool {
	cur, ok := findPieceByID(state.Board, e.OldPiece.ID())
	return ok && cur.Position() == e.Position
}

// TurnAdvancedEvent moves the state on to the next player's turn.
type TurnAdvancedEvent struct {
	base
	NextPlayer board.PlayerColor
	TurnNumber int
}

func NewTurnAdvancedEvent(nextPlayer board.PlayerColor, turnNumber int, actor board.PlayerColor) *TurnAdvancedEvent {
	desc := fmt.Sprintf("advance to %s's turn %d", nextPlayer, turnNumber)
	return &TurnAdvancedEvent{base: newBase("", actor, false, desc), NextPlayer: nextPlayer, TurnNumber: turnNumber}
}

func (e *TurnAdvancedEvent) Kind() EventKind                         { return KindTurnAdvanced }
func (e *TurnAdvancedEvent) IsStillValid(*board.GameState) bool      { return true }

// TurnStartEvent marks the beginning of a turn. It mutates nothing; it
// exists so listeners can react to "a turn is starting".
type TurnStartEvent struct {
	base
	Player     board.PlayerColor
	TurnNumber int
}

func NewTurnStartEvent(player board.PlayerColor, turnNumber int, actor board.PlayerColor) *TurnStartEvent {
	desc := fmt.Sprintf("%s's turn %d starts", player, turnNumber)
	return &TurnStartEvent{base: newBase("", actor, false, desc), Player: player, TurnNumber: turnNumber}
}

func (e *TurnStartEvent) Kind() EventKind                    { return KindTurnStart }
func (e *TurnStartEvent) IsStillValid(*board.GameState) bool { return true }

// TurnEndEvent marks the end of a turn. It mutates nothing.
type TurnEndEvent struct {
	base
	Player     board.PlayerColor
	TurnNumber int
}

func NewTurnEndEvent(player board.PlayerColor, turnNumber int, actor board.PlayerColor) *TurnEndEvent {
	desc := fmt.Sprintf("%s's turn %d ends", player, turnNumber)
	return &TurnEndEvent{base: newBase("", actor, false, desc), Player: player, TurnNumber: turnNumber}
}

func (e *TurnEndEvent) Kind() EventKind                    { return KindTurnEnd }
func (e *TurnEndEvent) IsStillValid(*board.GameState) bool { return true }

// TimeOutEvent marks that a player's clock expired. It mutates nothing;
// clocks are out of the kernel's scope (see spec §1), this is purely a
// notification variant for listeners that implement time controls.
type TimeOutEvent struct {
	base
	ExpiredPlayer board.PlayerColor
}

func NewTimeOutEvent(expiredPlayer board.PlayerColor, actor board.PlayerColor) *TimeOutEvent {
	desc := fmt.Sprintf("%s's clock expired", expiredPlayer)
	return &TimeOutEvent{base: newBase("", actor, false, desc), ExpiredPlayer: expiredPlayer}
}

func (e *TimeOutEvent) Kind() EventKind                    { return KindTimeOut }
func (e *TimeOutEvent) IsStillValid(*board.GameState) bool { return true }

// GameOverEvent marks that losingPlayer has lost. It mutates nothing;
// game-over detection itself is the ruleset's job (see ruleset.go).
type GameOverEvent struct {
	base
	LosingPlayer board.PlayerColor
}

func NewGameOverEvent(losingPlayer board.PlayerColor, actor board.PlayerColor) *GameOverEvent {
	desc := fmt.Sprintf("%s loses", losingPlayer)
	return &GameOverEvent{base: newBase("", actor, false, desc), LosingPlayer: losingPlayer}
}

func (e *GameOverEvent) Kind() EventKind                    { return KindGameOver }
func (e *GameOverEvent) IsStillValid(*board.GameState) bool { return true }

// isNotification reports whether kind names one of the four variants
// that mutate no state by design (TurnStart, TurnEnd, TimeOut,
// GameOver). Apply returns state unchanged for these, same as it does
// when a mutating variant's re-resolution fails; the queue needs to
// tell the two apart so a legitimate no-op notification still gets
// recorded in the event log instead of being mistaken for a rejection.
func isNotification(kind EventKind) bool {
	switch kind {
	case KindTurnStart, KindTurnEnd, KindTimeOut, KindGameOver:
		return true
	default:
		return false
	}
}

func pieceID(p board.Piece) string {
	if p == nil {
		return "<nil>"
	}
	return p.ID()
}

// findPieceByID locates a piece by identity alone, scanning the whole
// board rather than checking one recorded position. PieceChangedEvent
// uses this in combination with its own Position field (rather than the
// payload's possibly-stale cached position) to resolve the piece being
// changed; most other variants instead resolve by position first and
// confirm identity there (see CaptureEvent/DestroyEvent/MoveEvent), which
// is the right direction since it makes a piece that moved away from its
// recorded square read as stale instead of being found wherever it ended up.
func findPieceByID(b *board.Board, id string) (board.Piece, bool) {
	for _, p := range b.AllPieces() {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}
