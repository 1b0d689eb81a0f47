package config

// Screen layout defaults
const (
	// Tile size in pixels
	TileSize = 64

	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	WindowTitle = "Maze Game"

	// Updates per second for the window loop
	TPS = 60
)

// Asset defaults, resolved against the working directory
const (
	WallTexturePath  = "wall.bmp"
	FloorTexturePath = "floor.bmp"
)

// GetScreenDimensions returns the configured logical screen size in pixels
func (c Config) GetScreenDimensions() (width, height int) {
	return c.Window.Width, c.Window.Height
}

// MazePixelSize returns the size of the drawn maze in pixels
func (c Config) MazePixelSize(cols, rows int) (width, height int) {
	return cols * c.TileSize, rows * c.TileSize
}
