package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-maze/components"
)

// RenderSystem draws the maze and the player marker. It reads GameState and
// never writes it.
type RenderSystem struct {
	tileSize int
	frame    *ebiten.Image // offscreen drawing target, one maze in size
	wall     *ebiten.Image
	floor    *ebiten.Image
}

// NewRenderSystem creates a new rendering system. Textures are attached once
// they are loaded.
func NewRenderSystem(tileSize int, frame *ebiten.Image) *RenderSystem {
	return &RenderSystem{
		tileSize: tileSize,
		frame:    frame,
	}
}

// SetTextures sets the images used for wall and floor cells
func (s *RenderSystem) SetTextures(wall, floor *ebiten.Image) {
	s.wall = wall
	s.floor = floor
}

// Draw redraws every cell and the player, then presents the frame
func (s *RenderSystem) Draw(state *components.GameState, screen *ebiten.Image) {
	s.frame.Fill(color.RGBA{0, 0, 0, 255})

	maze := state.Maze
	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			tex := s.floor
			if maze.CellAt(x, y) == components.CellWall {
				tex = s.wall
			}
			s.drawTile(tex, x, y)
		}
	}

	// Player marker
	ts := float32(s.tileSize)
	p := state.Player
	vector.DrawFilledRect(s.frame, float32(p.X)*ts, float32(p.Y)*ts, ts, ts, components.PlayerColor, false)

	screen.Fill(color.RGBA{0, 0, 0, 255})
	screen.DrawImage(s.frame, nil)

	hud := fmt.Sprintf("%s  w/a/s/d move  esc quit", p.Position)
	ebitenutil.DebugPrintAt(screen, hud, 4, maze.Height*s.tileSize+4)
}

// drawTile draws a texture scaled to one tile at grid position (x, y)
func (s *RenderSystem) drawTile(tex *ebiten.Image, x, y int) {
	if tex == nil {
		return
	}
	bounds := tex.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(s.tileSize)/float64(bounds.Dx()),
		float64(s.tileSize)/float64(bounds.Dy()),
	)
	op.GeoM.Translate(float64(x*s.tileSize), float64(y*s.tileSize))
	s.frame.DrawImage(tex, op)
}
