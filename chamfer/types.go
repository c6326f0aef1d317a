package chamfer

import (
	"errors"
	"fmt"
)

// Sentinel errors for mask construction.
var (
	// ErrNoOffsets indicates an empty offset list.
	ErrNoOffsets = errors.New("chamfer: mask must contain at least one offset")
	// ErrZeroOffset indicates an offset with displacement (0,0).
	ErrZeroOffset = errors.New("chamfer: offset displacement must be non-zero")
	// ErrDuplicateOffset indicates the same displacement listed twice.
	ErrDuplicateOffset = errors.New("chamfer: duplicate offset displacement")
	// ErrBadWeight indicates a non-positive, non-finite or out-of-range weight.
	ErrBadWeight = errors.New("chamfer: weight must be positive and finite")
	// ErrAsymmetric indicates an offset whose negation is missing or weighted differently.
	ErrAsymmetric = errors.New("chamfer: offsets must be point-symmetric")
	// ErrWeightCount indicates FromWeights was called with an unsupported number of weights.
	ErrWeightCount = errors.New("chamfer: expected 2 (3x3) or 3 (5x5) weights")
	// ErrUnknownPreset indicates ParsePreset could not resolve a name. Preset.Mask
	// panics with it on an out-of-range value.
	ErrUnknownPreset = errors.New("chamfer: unknown preset")
)

// MaxIntWeight is the largest integer weight an offset may carry. The uint16
// representation reserves its top two values as sentinels and clamps weights
// above 65533.
const MaxIntWeight = 1<<16 - 1

// Offset is a single weighted step of a chamfer mask.
//
// Weight is used by floating-point distance maps, IntWeight by integer and
// fixed-point maps. An IntWeight of 0 passed to NewMask is derived from Weight
// by rounding, clamped to [1, MaxIntWeight].
type Offset struct {
	DX, DY    int
	Weight    float64
	IntWeight int
}

// Neg returns the point-symmetric twin of o.
func (o Offset) Neg() Offset {
	return Offset{DX: -o.DX, DY: -o.DY, Weight: o.Weight, IntWeight: o.IntWeight}
}

// IsForward reports whether o reaches a cell visited earlier by a row-major scan.
func (o Offset) IsForward() bool {
	return o.DY < 0 || (o.DY == 0 && o.DX < 0)
}

// IsOrthogonal reports whether o moves along a single axis.
func (o Offset) IsOrthogonal() bool {
	return o.DX == 0 || o.DY == 0
}

// String formats o as "(dx,dy):weight/intWeight".
func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d):%g/%d", o.DX, o.DY, o.Weight, o.IntWeight)
}

// Mask is an immutable, point-symmetric set of chamfer offsets.
// forward, backward and all are derived once by NewMask.
type Mask struct {
	offsets  []Offset
	forward  []Offset
	backward []Offset
	all      []Offset
	norm     Offset
	radius   int
}
