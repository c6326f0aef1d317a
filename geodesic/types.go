package geodesic

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for transform execution.
var (
	// ErrNilInput indicates a nil regions, markers, numeric or output argument.
	ErrNilInput = errors.New("geodesic: nil input")

	// ErrNilMask indicates that no chamfer mask was supplied.
	ErrNilMask = errors.New("geodesic: chamfer mask is nil")

	// ErrSizeMismatch indicates inputs (or the output grid) of different extents.
	ErrSizeMismatch = errors.New("geodesic: grid sizes do not match")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("geodesic: invalid option supplied")
)

// Phase identifies one step of the transform pipeline.
type Phase int

// Phases in execution order.
const (
	PhaseInit Phase = iota
	PhaseForward
	PhaseBackward
	PhaseWorklist
	PhaseNormalize
)

var phaseNames = [...]string{"init", "forward", "backward", "worklist", "normalize"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// PhaseReport is handed to the OnPhase hook after each phase completes.
//
//   - Updates: cells whose value changed in the phase (markers for Init).
//   - Pushes:  worklist insertions (Backward) or re-insertions (Worklist).
//   - Peak:    largest worklist length reached (Worklist only).
type PhaseReport struct {
	Phase   Phase
	Updates int
	Pushes  int
	Peak    int
	Elapsed time.Duration
}

// Option configures a transform via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the transform configuration.
type Options struct {
	// Normalize divides finite distances by the mask's normalization weight.
	Normalize bool

	// OnPhase is called after every phase, synchronously on the calling goroutine.
	OnPhase func(PhaseReport)

	// Logger overrides the package logger for one call.
	Logger *slog.Logger

	// QueueCapacity pre-sizes the worklist.
	QueueCapacity int

	err error
}

// DefaultOptions returns Options with normalization enabled, a no-op
// OnPhase hook, the package logger and a worklist sized on demand.
func DefaultOptions() Options {
	return Options{
		Normalize:     true,
		OnPhase:       func(PhaseReport) {},
		Logger:        nil,
		QueueCapacity: 0,
	}
}

// WithNormalize toggles the final normalization pass (enabled by default).
func WithNormalize(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

// WithOnPhase registers a progress callback run between phases.
func WithOnPhase(fn func(PhaseReport)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithLogger sends this call's diagnostics to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithQueueCapacity pre-sizes the worklist to n entries.
//
//	n > 0: initial capacity n
//	n == 0: grow on demand
//	n < 0: invalid option → ErrOptionViolation
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: QueueCapacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.QueueCapacity = n
	}
}
