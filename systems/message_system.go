package systems

import (
	"github.com/charmbracelet/log"

	"ebiten-maze/events"
)

// LogEvents writes movement events to the debug log. Blocked moves are never
// shown to the player; this is the only place they surface.
func LogEvents(em *events.EventManager, logger *log.Logger) {
	em.Subscribe(EventMovement, func(e events.Event) {
		ev := e.(PlayerMoveEvent)
		logger.Debug("player moved", "dir", ev.Direction, "from", ev.From, "to", ev.To)
	})
	em.Subscribe(EventMoveBlocked, func(e events.Event) {
		ev := e.(MoveBlockedEvent)
		logger.Debug("move blocked", "dir", ev.Direction, "at", ev.At, "target", ev.Target)
	})
}
