package main

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-maze/components"
	"ebiten-maze/systems"
)

type keyBinding struct {
	key ebiten.Key
	dir systems.Direction
}

// arrowKeys mirror w/a/s/d, which arrive as typed characters
var arrowKeys = []keyBinding{
	{ebiten.KeyArrowUp, systems.DirUp},
	{ebiten.KeyArrowDown, systems.DirDown},
	{ebiten.KeyArrowLeft, systems.DirLeft},
	{ebiten.KeyArrowRight, systems.DirRight},
}

// Game implements ebiten.Game interface.
type Game struct {
	state          *components.GameState
	renderSystem   *RenderSystem
	movementSystem *systems.MovementSystem
	width          int
	height         int

	chars []rune
	quit  atomic.Bool
}

// NewGame creates a new game instance over an existing state
func NewGame(state *components.GameState, renderSystem *RenderSystem, movementSystem *systems.MovementSystem, width, height int) *Game {
	return &Game{
		state:          state,
		renderSystem:   renderSystem,
		movementSystem: movementSystem,
		width:          width,
		height:         height,
	}
}

// RequestQuit asks the loop to stop on its next update. Safe to call from
// any goroutine.
func (g *Game) RequestQuit() {
	g.quit.Store(true)
}

// Update polls input and moves the player.
func (g *Game) Update() error {
	if g.quit.Load() || ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.movementSystem.HandleInput(g.state, r)
	}

	for _, b := range arrowKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			g.movementSystem.Move(g.state, b.dir)
		}
	}

	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.state, screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
