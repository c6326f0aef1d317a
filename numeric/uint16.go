package numeric

import (
	"math"

	"github.com/katalvlaran/chamferdt/chamfer"
)

const (
	// Uint16Unreached is the absorbing "infinite" value of Uint16 fields.
	Uint16Unreached uint16 = math.MaxUint16
	// Uint16Excluded marks background cells of Uint16 fields.
	Uint16Excluded uint16 = math.MaxUint16 - 1
	// Uint16MaxFinite is the largest distance a Uint16 field can hold.
	Uint16MaxFinite uint16 = math.MaxUint16 - 2
)

// Uint16 is the 16-bit integer representation. Weights come from
// chamfer.Offset.IntWeight.
type Uint16 struct{}

func (Uint16) Zero() uint16      { return 0 }
func (Uint16) Unreached() uint16 { return Uint16Unreached }
func (Uint16) Excluded() uint16  { return Uint16Excluded }

// Weight clamps IntWeight into [1, Uint16MaxFinite]. IntWeight 65534 and
// 65535 are valid mask weights but collide with the sentinels, so both become
// Uint16MaxFinite.
func (Uint16) Weight(o chamfer.Offset) uint16 {
	switch {
	case o.IntWeight < 1:
		return 1
	case o.IntWeight > int(Uint16MaxFinite):
		return Uint16MaxFinite
	}
	return uint16(o.IntWeight)
}

// Add saturates at Uint16Unreached. The sum is formed in 32 bits so the
// check happens before anything can wrap.
func (Uint16) Add(v, w uint16) uint16 {
	if v >= Uint16Excluded {
		return Uint16Unreached
	}
	s := uint32(v) + uint32(w)
	if s > uint32(Uint16MaxFinite) {
		return Uint16Unreached
	}
	return uint16(s)
}

func (Uint16) Less(a, b uint16) bool { return a < b }

func (Uint16) IsUnreached(v uint16) bool { return v == Uint16Unreached }

func (Uint16) IsExcluded(v uint16) bool { return v == Uint16Excluded }

// Normalize rounds half up and leaves both sentinels untouched.
func (Uint16) Normalize(v, norm uint16) uint16 {
	if v >= Uint16Excluded || norm == 0 {
		return v
	}
	return uint16((uint32(v) + uint32(norm)/2) / uint32(norm))
}

func (Uint16) Float64(v uint16) float64 {
	switch v {
	case Uint16Unreached:
		return math.Inf(1)
	case Uint16Excluded:
		return math.NaN()
	}
	return float64(v)
}
