// Package terminal runs the maze in a text terminal using tcell. It acquires
// the same resources as the window shell, in the same order, and draws
// textures as flat background colours.
package terminal

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ebiten-maze/components"
	"ebiten-maze/config"
	"ebiten-maze/events"
	"ebiten-maze/lifecycle"
	"ebiten-maze/systems"
	"ebiten-maze/telemetry"
)

// Options configures a terminal session
type Options struct {
	Assets config.AssetsConfig
	Logger *log.Logger

	// NewScreen creates the terminal surface. Defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)

	// OnReady, if set, runs once every resource is acquired and before the
	// first event is polled.
	OnReady func(tcell.Screen)
}

// Session owns the terminal resources for one run
type Session struct {
	state     *components.GameState
	opts      Options
	logger    *log.Logger
	events    *events.EventManager
	movement  *systems.MovementSystem
	resources *lifecycle.Resources
	screen    tcell.Screen
	renderer  *Renderer
	mapping   *components.TileMapping
}

// NewSession prepares a session over state. Nothing is acquired until Run.
func NewSession(state *components.GameState, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.NewScreen == nil {
		opts.NewScreen = tcell.NewScreen
	}

	em := events.NewEventManager()
	systems.LogEvents(em, logger)

	return &Session{
		state:     state,
		opts:      opts,
		logger:    logger,
		events:    em,
		movement:  systems.NewMovementSystem(em),
		resources: lifecycle.New(logger),
		mapping:   components.NewTileMapping(),
	}
}

// Run acquires the terminal, plays until quit and releases everything.
// Quit is Esc, Ctrl+C or ctx being cancelled. A startup failure is
// returned as *lifecycle.StartupError after teardown.
func (s *Session) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("terminal")

	s.logger.Info("initializing game")
	startCtx, startSpan := tracer.Start(ctx, "startup")
	err := s.acquire(startCtx)
	startSpan.End()
	if err != nil {
		return err
	}

	defer func() {
		if err := s.resources.Close(); err != nil {
			s.logger.Error("teardown", "err", err)
		}
		s.logger.Info("cleaning up game resources")
	}()

	if s.opts.OnReady != nil {
		s.opts.OnReady(s.screen)
	}

	_, span := tracer.Start(ctx, "session")
	defer span.End()
	unsubscribe := s.events.Subscribe(systems.EventMovement, func(e events.Event) {
		ev := e.(systems.PlayerMoveEvent)
		span.AddEvent("move", trace.WithAttributes(
			attribute.String("dir", ev.Direction.String()),
			attribute.Int("x", ev.To.X),
			attribute.Int("y", ev.To.Y),
		))
	})
	defer unsubscribe()

	screen := s.screen
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		s.renderer.Render(s.state)

		// PollEvent blocks until input arrives
		if quit := s.handleEvent(screen.PollEvent()); quit {
			return nil
		}
	}
}

func (s *Session) acquire(ctx context.Context) error {
	if err := s.resources.Acquire(ctx, lifecycle.StepWindow, func() (lifecycle.ReleaseFunc, error) {
		screen, err := s.opts.NewScreen()
		if err != nil {
			return nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, err
		}
		screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
		screen.Clear()
		s.screen = screen
		return func() error {
			screen.Fini()
			return nil
		}, nil
	}); err != nil {
		return err
	}

	if err := s.resources.Acquire(ctx, lifecycle.StepRenderer, func() (lifecycle.ReleaseFunc, error) {
		s.renderer = NewRenderer(s.screen, s.mapping)
		return func() error {
			s.renderer = nil
			return nil
		}, nil
	}); err != nil {
		return err
	}

	if err := s.acquireTexture(ctx, lifecycle.StepWallTexture, components.CellWall, s.opts.Assets.Wall); err != nil {
		return err
	}
	return s.acquireTexture(ctx, lifecycle.StepFloorTexture, components.CellFloor, s.opts.Assets.Floor)
}

func (s *Session) acquireTexture(ctx context.Context, step string, cell components.Cell, path string) error {
	return s.resources.Acquire(ctx, step, func() (lifecycle.ReleaseFunc, error) {
		tex, err := systems.LoadTexture(cell.String(), path)
		if err != nil {
			return nil, err
		}
		s.mapping.SetBackground(cell, tex.AverageColor())
		return func() error {
			s.mapping.SetBackground(cell, nil)
			return nil
		}, nil
	})
}

// handleEvent processes one event and reports whether to quit
func (s *Session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		// Screen finalized underneath us
		return true
	case *tcell.EventInterrupt:
		return true
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return s.handleKeyEvent(ev)
	}
	return false
}

func (s *Session) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.movement.Move(s.state, systems.DirUp)
	case tcell.KeyDown:
		s.movement.Move(s.state, systems.DirDown)
	case tcell.KeyLeft:
		s.movement.Move(s.state, systems.DirLeft)
	case tcell.KeyRight:
		s.movement.Move(s.state, systems.DirRight)
	case tcell.KeyRune:
		s.movement.HandleInput(s.state, ev.Rune())
	}
	return false
}
