package terminal

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/bmp"

	"ebiten-maze/components"
	"ebiten-maze/config"
	"ebiten-maze/lifecycle"
)

// countingScreen records how often the surface is finalized
type countingScreen struct {
	tcell.Screen
	finis int
}

func (c *countingScreen) Fini() {
	c.finis++
	c.Screen.Fini()
}

func writeBMP(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func testAssets(t *testing.T) config.AssetsConfig {
	t.Helper()
	dir := t.TempDir()
	assets := config.AssetsConfig{
		Wall:  filepath.Join(dir, "wall.bmp"),
		Floor: filepath.Join(dir, "floor.bmp"),
	}
	writeBMP(t, assets.Wall, color.RGBA{90, 90, 90, 255})
	writeBMP(t, assets.Floor, color.RGBA{20, 20, 20, 255})
	return assets
}

func newTestState(t *testing.T) *components.GameState {
	t.Helper()
	state, err := components.NewGameState(components.DefaultMaze(), components.DefaultStart)
	if err != nil {
		t.Fatal(err)
	}
	return state
}

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

type harness struct {
	screen *countingScreen
	ready  int
}

func newSession(t *testing.T, state *components.GameState, assets config.AssetsConfig, script ...tcell.Event) (*Session, *harness) {
	t.Helper()
	h := &harness{}
	s := NewSession(state, Options{
		Assets: assets,
		Logger: log.New(io.Discard),
		NewScreen: func() (tcell.Screen, error) {
			h.screen = &countingScreen{Screen: tcell.NewSimulationScreen("UTF-8")}
			return h.screen, nil
		},
		OnReady: func(screen tcell.Screen) {
			h.ready++
			for _, ev := range script {
				if err := screen.PostEvent(ev); err != nil {
					t.Fatalf("PostEvent() error = %v", err)
				}
			}
		},
	})
	return s, h
}

func TestSessionMovesAndQuits(t *testing.T) {
	state := newTestState(t)
	s, h := newSession(t, state, testAssets(t),
		char('s'), char('s'), char('d'), key(tcell.KeyEscape),
	)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := (components.Position{X: 2, Y: 3}); state.Player.Position != want {
		t.Errorf("player at %v, want %v", state.Player.Position, want)
	}
	if h.screen.finis != 1 {
		t.Errorf("screen finalized %d times, want 1", h.screen.finis)
	}
}

func TestSessionQuitDiscardsPendingInput(t *testing.T) {
	state := newTestState(t)
	s, h := newSession(t, state, testAssets(t),
		char('d'), key(tcell.KeyCtrlC), char('d'), char('d'), char('s'),
	)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := (components.Position{X: 2, Y: 1}); state.Player.Position != want {
		t.Errorf("player at %v, want %v", state.Player.Position, want)
	}
	if h.screen.finis != 1 {
		t.Errorf("screen finalized %d times, want 1", h.screen.finis)
	}
	if !s.resources.Closed() {
		t.Error("resources still held after quit")
	}
}

func TestSessionArrowKeysAndIgnoredInput(t *testing.T) {
	state := newTestState(t)
	s, _ := newSession(t, state, testAssets(t),
		key(tcell.KeyUp), char('x'), key(tcell.KeyF1), key(tcell.KeyRight), char('W'), key(tcell.KeyEscape),
	)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := (components.Position{X: 2, Y: 1}); state.Player.Position != want {
		t.Errorf("player at %v, want %v", state.Player.Position, want)
	}
}

func TestSessionContextCancel(t *testing.T) {
	state := newTestState(t)
	ctx, cancel := context.WithCancel(context.Background())
	s, h := newSession(t, state, testAssets(t), char('d'))
	onReady := s.opts.OnReady
	s.opts.OnReady = func(screen tcell.Screen) {
		onReady(screen)
		cancel()
	}

	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if h.screen.finis != 1 {
		t.Errorf("screen finalized %d times, want 1", h.screen.finis)
	}
}

func TestSessionMissingTexture(t *testing.T) {
	tests := []struct {
		name string
		drop func(config.AssetsConfig)
		step string
	}{
		{"wall", func(a config.AssetsConfig) { os.Remove(a.Wall) }, lifecycle.StepWallTexture},
		{"floor", func(a config.AssetsConfig) { os.Remove(a.Floor) }, lifecycle.StepFloorTexture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assets := testAssets(t)
			tt.drop(assets)

			s, h := newSession(t, newTestState(t), assets)
			err := s.Run(context.Background())

			var startupErr *lifecycle.StartupError
			if !errors.As(err, &startupErr) {
				t.Fatalf("Run() error = %v, want *StartupError", err)
			}
			if startupErr.Step != tt.step {
				t.Errorf("Step = %q, want %q", startupErr.Step, tt.step)
			}
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("error does not wrap not-exist: %v", err)
			}
			if h.ready != 0 {
				t.Error("loop started after failed startup")
			}
			if h.screen.finis != 1 {
				t.Errorf("screen finalized %d times, want 1", h.screen.finis)
			}
		})
	}
}

func TestSessionScreenFailure(t *testing.T) {
	boom := errors.New("no tty")
	s := NewSession(newTestState(t), Options{
		Assets:    testAssets(t),
		Logger:    log.New(io.Discard),
		NewScreen: func() (tcell.Screen, error) { return nil, boom },
	})

	err := s.Run(context.Background())
	var startupErr *lifecycle.StartupError
	if !errors.As(err, &startupErr) || startupErr.Step != lifecycle.StepWindow {
		t.Fatalf("Run() error = %v, want window startup error", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error does not wrap cause: %v", err)
	}
}
