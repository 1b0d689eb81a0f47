package systems

import (
	"ebiten-maze/components"
	"ebiten-maze/events"
)

// Direction is a one-cell movement request
type Direction int

// Direction constants for movement
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta converts a direction to dx, dy
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// DirectionFromRune maps w/a/s/d to a direction. Anything else is DirNone.
func DirectionFromRune(r rune) Direction {
	switch r {
	case 'w':
		return DirUp
	case 'a':
		return DirLeft
	case 's':
		return DirDown
	case 'd':
		return DirRight
	}
	return DirNone
}

// ApplyMove returns the position after moving one cell in dir. The move only
// succeeds onto a floor cell; otherwise pos is returned unchanged.
func ApplyMove(dir Direction, pos components.Position, maze *components.Maze) (components.Position, bool) {
	if dir == DirNone {
		return pos, false
	}
	candidate := pos.Add(dir.Delta())
	if maze.CellAt(candidate.X, candidate.Y) != components.CellFloor {
		return pos, false
	}
	return candidate, true
}

// MovementSystem applies directional input to the player
type MovementSystem struct {
	events *events.EventManager
}

// NewMovementSystem creates a new movement system. em may be nil.
func NewMovementSystem(em *events.EventManager) *MovementSystem {
	return &MovementSystem{events: em}
}

// HandleInput applies a single input symbol. Non-directional symbols are
// ignored. Reports whether the player moved.
func (s *MovementSystem) HandleInput(state *components.GameState, r rune) bool {
	return s.Move(state, DirectionFromRune(r))
}

// Move moves the player one cell in dir if the target is floor
func (s *MovementSystem) Move(state *components.GameState, dir Direction) bool {
	if dir == DirNone {
		return false
	}

	from := state.Player.Position
	to, ok := ApplyMove(dir, from, state.Maze)
	if !ok {
		s.emit(MoveBlockedEvent{
			Direction: dir,
			At:        from,
			Target:    from.Add(dir.Delta()),
		})
		return false
	}

	state.Player.Position = to
	s.emit(PlayerMoveEvent{
		Direction: dir,
		From:      from,
		To:        to,
	})
	return true
}

func (s *MovementSystem) emit(e events.Event) {
	if s.events != nil {
		s.events.Emit(e)
	}
}
