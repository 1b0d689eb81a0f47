// Package config provides YAML-based configuration for the maze: window
// settings, tile size, texture paths and the maze layout itself.
package config

import (
	"errors"
	"fmt"

	"ebiten-maze/components"
)

// Config contains all runtime configuration
type Config struct {
	Window   WindowConfig `yaml:"window"`
	TileSize int          `yaml:"tile_size"`
	Assets   AssetsConfig `yaml:"assets"`
	Maze     MazeConfig   `yaml:"maze"`
}

// WindowConfig defines the window surface
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AssetsConfig names the two tile bitmaps
type AssetsConfig struct {
	Wall  string `yaml:"wall"`
	Floor string `yaml:"floor"`
}

// MazeConfig is the maze literal and the player's starting cell
type MazeConfig struct {
	Rows  []string    `yaml:"rows"`
	Start StartConfig `yaml:"start"`
}

// StartConfig is the player's initial column/row
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  WindowTitle,
			Width:  WindowWidth,
			Height: WindowHeight,
		},
		TileSize: TileSize,
		Assets: AssetsConfig{
			Wall:  WallTexturePath,
			Floor: FloorTexturePath,
		},
		Maze: MazeConfig{
			Rows: append([]string(nil), components.DefaultRows...),
			Start: StartConfig{
				X: components.DefaultStart.X,
				Y: components.DefaultStart.Y,
			},
		},
	}
}

// Validate checks the values that cannot be defaulted
func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Assets.Wall == "" || c.Assets.Floor == "" {
		return fmt.Errorf("%w: both wall and floor assets are required", ErrInvalidConfig)
	}
	return nil
}

// NewGameState builds the maze and places the player from the config
func (c Config) NewGameState() (*components.GameState, error) {
	maze, err := components.ParseMaze(c.Maze.Rows)
	if err != nil {
		return nil, fmt.Errorf("parse maze: %w", err)
	}
	start := components.Position{X: c.Maze.Start.X, Y: c.Maze.Start.Y}
	return components.NewGameState(maze, start)
}
