package systems

import (
	"ebiten-maze/components"
	"ebiten-maze/events"
)

// Event type constants
const (
	EventMovement    events.EventType = "movement"
	EventMoveBlocked events.EventType = "move_blocked"
)

// PlayerMoveEvent is emitted when the player moves
type PlayerMoveEvent struct {
	Direction Direction
	From      components.Position
	To        components.Position
}

// Type returns the event type
func (e PlayerMoveEvent) Type() events.EventType {
	return EventMovement
}

// MoveBlockedEvent is emitted when a directional move runs into a wall.
// Nothing is shown to the player; it exists for debug logging.
type MoveBlockedEvent struct {
	Direction Direction
	At        components.Position
	Target    components.Position
}

// Type returns the event type
func (e MoveBlockedEvent) Type() events.EventType {
	return EventMoveBlocked
}
