package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ebiten-maze/components"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	floorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#404040"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// RenderText draws the maze with the player as styled text for printing
func RenderText(state *components.GameState) string {
	maze := state.Maze
	lines := make([]string, maze.Height)

	for y := 0; y < maze.Height; y++ {
		var b strings.Builder
		for x := 0; x < maze.Width; x++ {
			if x == state.Player.X && y == state.Player.Y {
				b.WriteString(playerStyle.Render(string(state.Player.Symbol)))
				continue
			}
			cell := maze.CellAt(x, y)
			style := floorStyle
			if cell == components.CellWall {
				style = wallStyle
			}
			b.WriteString(style.Render(string(cell.Glyph())))
		}
		lines[y] = b.String()
	}

	return frameStyle.Render(strings.Join(lines, "\n"))
}
