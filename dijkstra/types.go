package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Distances.
var (
	// ErrNilInput indicates a nil regions or markers argument.
	ErrNilInput = errors.New("dijkstra: nil input")

	// ErrNilMask indicates that no chamfer mask was supplied.
	ErrNilMask = errors.New("dijkstra: chamfer mask is nil")

	// ErrSizeMismatch indicates regions and markers of different extents.
	ErrSizeMismatch = errors.New("dijkstra: grid sizes do not match")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor marks markers, unreached and excluded cells in the
// predecessor slice.
const NoPredecessor = -1

// Options configures Distances.
//
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance – cells whose distance would exceed this value stay unreached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	ReturnPath  bool    // Whether to return the predecessor slice
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; anything else panics with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Invalid configuration is a programming error.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap and no predecessor slice.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
