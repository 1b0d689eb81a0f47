package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-maze/components"
	"ebiten-maze/config"
	"ebiten-maze/events"
	"ebiten-maze/lifecycle"
	"ebiten-maze/systems"
	"ebiten-maze/telemetry"
)

// runWindow acquires the window, canvas and textures in order, runs the
// ebiten loop until quit and releases everything in reverse.
func runWindow(ctx context.Context, cfg config.Config, state *components.GameState, logger *log.Logger) error {
	tracer := telemetry.Tracer("window")
	res := lifecycle.New(logger)

	logger.Info("initializing game")
	startCtx, startSpan := tracer.Start(ctx, "startup")

	var renderSystem *RenderSystem
	err := res.Acquire(startCtx, lifecycle.StepWindow, func() (lifecycle.ReleaseFunc, error) {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
		ebiten.SetWindowClosingHandled(true)
		ebiten.SetTPS(config.TPS)
		// The OS window itself is closed by RunGame returning
		return nil, nil
	})
	if err == nil {
		err = res.Acquire(startCtx, lifecycle.StepRenderer, func() (lifecycle.ReleaseFunc, error) {
			w, h := cfg.MazePixelSize(state.Maze.Width, state.Maze.Height)
			frame := ebiten.NewImage(w, h)
			renderSystem = NewRenderSystem(cfg.TileSize, frame)
			return func() error {
				frame.Deallocate()
				return nil
			}, nil
		})
	}

	var wall, floor *ebiten.Image
	if err == nil {
		wall, err = acquireTexture(startCtx, res, lifecycle.StepWallTexture, components.CellWall, cfg.Assets.Wall)
	}
	if err == nil {
		floor, err = acquireTexture(startCtx, res, lifecycle.StepFloorTexture, components.CellFloor, cfg.Assets.Floor)
	}
	startSpan.End()
	if err != nil {
		return err
	}

	defer func() {
		if err := res.Close(); err != nil {
			logger.Error("teardown", "err", err)
		}
		logger.Info("cleaning up game resources")
	}()

	renderSystem.SetTextures(wall, floor)

	em := events.NewEventManager()
	systems.LogEvents(em, logger)

	w, h := cfg.GetScreenDimensions()
	game := NewGame(state, renderSystem, systems.NewMovementSystem(em), w, h)

	stop := context.AfterFunc(ctx, game.RequestQuit)
	defer stop()

	_, span := tracer.Start(ctx, "session")
	defer span.End()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func acquireTexture(ctx context.Context, res *lifecycle.Resources, step string, cell components.Cell, path string) (*ebiten.Image, error) {
	var img *ebiten.Image
	err := res.Acquire(ctx, step, func() (lifecycle.ReleaseFunc, error) {
		tex, err := systems.LoadTexture(cell.String(), path)
		if err != nil {
			return nil, err
		}
		img = ebiten.NewImageFromImage(tex.Image)
		return func() error {
			img.Deallocate()
			return nil
		}, nil
	})
	return img, err
}
