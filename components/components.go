package components

import (
	"errors"
	"fmt"
)

// ErrStartOnWall is returned when the player would start inside a wall
var ErrStartOnWall = errors.New("player start is not a floor cell")

// Position is a column/row coordinate in maze space
type Position struct {
	X int
	Y int
}

// Add returns the position offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// DefaultStart is where the player begins on the built-in maze
var DefaultStart = Position{X: 1, Y: 1}

// PlayerComponent holds the player's mutable grid position
type PlayerComponent struct {
	Position
	Symbol rune
}

// NewPlayerComponent creates a player at the given position
func NewPlayerComponent(pos Position) *PlayerComponent {
	return &PlayerComponent{
		Position: pos,
		Symbol:   '@',
	}
}

// GameState bundles the maze and the player. It is owned by whichever shell
// is running and handed by pointer to input handling and rendering.
type GameState struct {
	Maze   *Maze
	Player *PlayerComponent
}

// NewGameState places a player on the maze. The start must be a floor cell.
func NewGameState(maze *Maze, start Position) (*GameState, error) {
	if maze == nil {
		return nil, ErrEmptyMaze
	}
	if !maze.IsWalkable(start.X, start.Y) {
		return nil, fmt.Errorf("%w: %s is %s", ErrStartOnWall, start, maze.CellAt(start.X, start.Y))
	}
	return &GameState{
		Maze:   maze,
		Player: NewPlayerComponent(start),
	}, nil
}

// PlayerOnFloor reports whether the player currently stands on a floor cell
func (s *GameState) PlayerOnFloor() bool {
	return s.Maze.IsWalkable(s.Player.X, s.Player.Y)
}
