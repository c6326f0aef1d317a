package numeric

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/chamferdt/chamfer"
)

const (
	// FixedUnreached is the absorbing "infinite" value of Fixed fields.
	FixedUnreached fixed.Int26_6 = math.MaxInt32
	// FixedExcluded marks background cells of Fixed fields.
	FixedExcluded fixed.Int26_6 = -1
)

// Fixed is the 26.6 fixed-point representation. It keeps fractional
// weights such as √2 to 1/64 precision while staying in integer arithmetic.
type Fixed struct{}

func (Fixed) Zero() fixed.Int26_6      { return 0 }
func (Fixed) Unreached() fixed.Int26_6 { return FixedUnreached }
func (Fixed) Excluded() fixed.Int26_6  { return FixedExcluded }

// Weight rounds Offset.Weight to the nearest 1/64, never below one unit of
// least precision.
func (Fixed) Weight(o chamfer.Offset) fixed.Int26_6 {
	w := math.Round(o.Weight * 64)
	if w < 1 {
		return 1
	}
	if w >= float64(FixedUnreached) {
		return FixedUnreached - 1
	}
	return fixed.Int26_6(w)
}

// Add saturates at FixedUnreached.
func (Fixed) Add(v, w fixed.Int26_6) fixed.Int26_6 {
	if v == FixedUnreached || v < 0 {
		return FixedUnreached
	}
	s := int64(v) + int64(w)
	if s >= int64(FixedUnreached) {
		return FixedUnreached
	}
	return fixed.Int26_6(s)
}

func (Fixed) Less(a, b fixed.Int26_6) bool { return a < b }

func (Fixed) IsUnreached(v fixed.Int26_6) bool { return v == FixedUnreached }

func (Fixed) IsExcluded(v fixed.Int26_6) bool { return v == FixedExcluded }

// Normalize computes v/norm in 26.6, rounding half up. Sentinels pass through.
// A norm below one unit scales v up; a quotient that no longer fits saturates
// at FixedUnreached, like Add.
func (Fixed) Normalize(v, norm fixed.Int26_6) fixed.Int26_6 {
	if v == FixedUnreached || v < 0 || norm <= 0 {
		return v
	}
	q := (int64(v)<<6 + int64(norm)/2) / int64(norm)
	if q >= int64(FixedUnreached) {
		return FixedUnreached
	}
	return fixed.Int26_6(q)
}

func (Fixed) Float64(v fixed.Int26_6) float64 {
	switch {
	case v == FixedUnreached:
		return math.Inf(1)
	case v < 0:
		return math.NaN()
	}
	return float64(v) / 64
}
