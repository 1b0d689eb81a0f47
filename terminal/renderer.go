package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"ebiten-maze/components"
)

// Renderer draws the maze and player into a terminal screen, one character
// cell per tile.
type Renderer struct {
	screen  tcell.Screen
	mapping *components.TileMapping
}

// NewRenderer creates a new renderer for the given screen
func NewRenderer(screen tcell.Screen, mapping *components.TileMapping) *Renderer {
	if mapping == nil {
		mapping = components.NewTileMapping()
	}
	return &Renderer{screen: screen, mapping: mapping}
}

// Render redraws the whole maze and the player. It never changes state.
func (r *Renderer) Render(state *components.GameState) {
	r.screen.Clear()

	maze := state.Maze
	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			def := r.mapping.GetTileDefinition(maze.CellAt(x, y))
			r.screen.SetContent(x, y, def.Glyph, nil, tileStyle(def))
		}
	}

	// Draw player on top, keeping the floor background
	floor := r.mapping.GetTileDefinition(components.CellFloor)
	playerStyle := tcell.StyleDefault.
		Foreground(toColor(components.PlayerColor)).
		Bold(true)
	if floor.BG != nil {
		playerStyle = playerStyle.Background(toColor(floor.BG))
	}
	p := state.Player
	r.screen.SetContent(p.X, p.Y, p.Symbol, nil, playerStyle)

	r.drawStatus(fmt.Sprintf("%s  w/a/s/d move  esc quit", p.Position), maze.Height+1)

	r.screen.Show()
}

func (r *Renderer) drawStatus(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, nil, style)
	}
}

func tileStyle(def components.TileDefinition) tcell.Style {
	style := tcell.StyleDefault
	if def.FG != nil {
		style = style.Foreground(toColor(def.FG))
	}
	if def.BG != nil {
		style = style.Background(toColor(def.BG))
	}
	return style
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
