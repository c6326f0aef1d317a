package geodesic

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/chamferdt/chamfer"
	"github.com/katalvlaran/chamferdt/grid"
	"github.com/katalvlaran/chamferdt/numeric"
)

// Transform computes the geodesic distance field of markers inside regions
// under mask, in the representation num.
//
// Excluded cells hold num.Excluded(); region cells with no marker in their
// region hold num.Unreached(). Markers on excluded cells are ignored.
// Inputs are only read.
//
// Errors: ErrOptionViolation, ErrNilInput, ErrNilMask, ErrSizeMismatch,
// grid.ErrEmptyGrid.
func Transform[T any](regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, num numeric.Numeric[T], opts ...Option) (*grid.Field[T], error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	if regions == nil {
		return nil, fmt.Errorf("%w: regions", ErrNilInput)
	}
	w, h := regions.Size()
	dst, err := grid.NewField[T](w, h)
	if err != nil {
		return nil, err
	}
	if err = TransformInto(dst, regions, markers, mask, num, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// TransformInto is Transform writing into a caller-owned field. dst must
// match the regions extent; every cell of dst is overwritten.
func TransformInto[T any](dst *grid.Field[T], regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, num numeric.Numeric[T], opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	switch {
	case dst == nil:
		return fmt.Errorf("%w: output field", ErrNilInput)
	case regions == nil:
		return fmt.Errorf("%w: regions", ErrNilInput)
	case markers == nil:
		return fmt.Errorf("%w: markers", ErrNilInput)
	case num == nil:
		return fmt.Errorf("%w: numeric", ErrNilInput)
	case mask == nil:
		return ErrNilMask
	}

	w, h := regions.Size()
	if w <= 0 || h <= 0 {
		return grid.ErrEmptyGrid
	}
	if mw, mh := markers.Size(); mw != w || mh != h {
		return fmt.Errorf("%w: regions %dx%d, markers %dx%d", ErrSizeMismatch, w, h, mw, mh)
	}
	if !dst.SameSize(w, h) {
		return fmt.Errorf("%w: regions %dx%d, output %dx%d", ErrSizeMismatch, w, h, dst.Width, dst.Height)
	}

	log := o.Logger
	if log == nil {
		log = Logger()
	}
	ctx := context.Background()
	debug := log.Enabled(ctx, slog.LevelDebug)

	r := newRunner(dst.Values(), w, h, regions, mask, num, o.QueueCapacity)
	total := time.Now()

	report := func(rep PhaseReport) {
		if debug {
			log.LogAttrs(ctx, slog.LevelDebug, "geodesic phase",
				slog.String("phase", rep.Phase.String()),
				slog.Int("updates", rep.Updates),
				slog.Int("pushes", rep.Pushes),
				slog.Int("peak", rep.Peak),
				slog.Duration("elapsed", rep.Elapsed),
			)
		}
		o.OnPhase(rep)
	}

	start := time.Now()
	seeds := r.initialize(markers)
	report(PhaseReport{Phase: PhaseInit, Updates: seeds, Elapsed: time.Since(start)})

	start = time.Now()
	n := r.forwardPass()
	report(PhaseReport{Phase: PhaseForward, Updates: n, Elapsed: time.Since(start)})

	start = time.Now()
	n, pushes := r.backwardPass()
	report(PhaseReport{Phase: PhaseBackward, Updates: n, Pushes: pushes, Elapsed: time.Since(start)})

	start = time.Now()
	n = r.propagate()
	report(PhaseReport{Phase: PhaseWorklist, Updates: n, Pushes: n, Peak: r.queue.peak, Elapsed: time.Since(start)})

	if o.Normalize {
		start = time.Now()
		n = r.normalize()
		report(PhaseReport{Phase: PhaseNormalize, Updates: n, Elapsed: time.Since(start)})
	}

	if debug {
		log.LogAttrs(ctx, slog.LevelDebug, "geodesic transform done",
			slog.Int("width", w),
			slog.Int("height", h),
			slog.Int("markers", seeds),
			slog.String("mask", mask.String()),
			slog.Bool("normalized", o.Normalize),
			slog.Duration("elapsed", time.Since(total)),
		)
	}

	return nil
}

// buildOptions applies opts over DefaultOptions and returns the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Float32 runs Transform in float32.
func Float32(regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, opts ...Option) (*grid.Field[float32], error) {
	return Transform[float32](regions, markers, mask, numeric.Float32, opts...)
}

// Float64 runs Transform in float64.
func Float64(regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, opts ...Option) (*grid.Field[float64], error) {
	return Transform[float64](regions, markers, mask, numeric.Float64, opts...)
}

// Uint16 runs Transform with saturating 16-bit integers.
func Uint16(regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, opts ...Option) (*grid.Field[uint16], error) {
	return Transform[uint16](regions, markers, mask, numeric.Uint16{}, opts...)
}

// Fixed runs Transform in 26.6 fixed point.
func Fixed(regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, opts ...Option) (*grid.Field[fixed.Int26_6], error) {
	return Transform[fixed.Int26_6](regions, markers, mask, numeric.Fixed{}, opts...)
}

// MaxFinite returns the largest reached distance in f, or false when no cell
// holds a finite value.
func MaxFinite[T any](f *grid.Field[T], num numeric.Numeric[T]) (T, bool) {
	var best T
	found := false
	for _, v := range f.Values() {
		if num.IsExcluded(v) || num.IsUnreached(v) {
			continue
		}
		if !found || num.Less(best, v) {
			best, found = v, true
		}
	}
	return best, found
}
