// Package lifecycle tracks platform resources acquired at startup and
// releases them in reverse order exactly once.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/codes"

	"ebiten-maze/telemetry"
)

// Startup steps, in acquisition order
const (
	StepWindow       = "window"
	StepRenderer     = "renderer"
	StepWallTexture  = "wall texture"
	StepFloorTexture = "floor texture"
)

// ErrClosed is returned when acquiring on a closed resource set
var ErrClosed = errors.New("resources already released")

// StartupError reports which startup step failed
type StartupError struct {
	Step string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Step, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// ReleaseFunc frees one acquired resource. A nil ReleaseFunc is allowed.
type ReleaseFunc func() error

type held struct {
	step    string
	release ReleaseFunc
}

// Resources is an ordered stack of acquired resources. It is not safe for
// concurrent use.
type Resources struct {
	logger *log.Logger
	held   []held
	closed bool
}

// New creates an empty resource stack
func New(logger *log.Logger) *Resources {
	if logger == nil {
		logger = log.Default()
	}
	return &Resources{logger: logger}
}

// Acquire runs one startup step. On failure everything acquired so far is
// released in reverse order and a *StartupError naming the step is returned.
func (r *Resources) Acquire(ctx context.Context, step string, acquire func() (ReleaseFunc, error)) error {
	if r.closed {
		return &StartupError{Step: step, Err: ErrClosed}
	}

	_, span := telemetry.Tracer("lifecycle").Start(ctx, "acquire "+step)
	defer span.End()

	release, err := acquire()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("startup step failed", "step", step, "err", err)
		if closeErr := r.Close(); closeErr != nil {
			r.logger.Warn("teardown after failed startup", "err", closeErr)
		}
		return &StartupError{Step: step, Err: err}
	}

	r.held = append(r.held, held{step: step, release: release})
	r.logger.Debug("acquired", "step", step)
	return nil
}

// Held lists acquired steps in acquisition order
func (r *Resources) Held() []string {
	steps := make([]string, len(r.held))
	for i, h := range r.held {
		steps[i] = h.step
	}
	return steps
}

// Closed reports whether Close has run
func (r *Resources) Closed() bool {
	return r.closed
}

// Close releases every held resource in reverse acquisition order. Calls
// after the first are no-ops.
func (r *Resources) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	for i := len(r.held) - 1; i >= 0; i-- {
		h := r.held[i]
		if h.release == nil {
			continue
		}
		if err := h.release(); err != nil {
			errs = append(errs, fmt.Errorf("release %s: %w", h.step, err))
			continue
		}
		r.logger.Debug("released", "step", h.step)
	}
	r.held = nil

	return errors.Join(errs...)
}
