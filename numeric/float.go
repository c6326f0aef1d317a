package numeric

import (
	"math"

	"github.com/katalvlaran/chamferdt/chamfer"
)

// Float is the IEEE representation for float32 and float64 fields.
type Float[T ~float32 | ~float64] struct{}

// Float32 and Float64 are the two stock floating representations.
var (
	Float32 Float[float32]
	Float64 Float[float64]
)

func (Float[T]) Zero() T      { return 0 }
func (Float[T]) Unreached() T { return T(math.Inf(1)) }
func (Float[T]) Excluded() T  { return T(math.NaN()) }

func (Float[T]) Weight(o chamfer.Offset) T { return T(o.Weight) }

// Add relies on +Inf absorbing any finite weight.
func (Float[T]) Add(v, w T) T { return v + w }

func (Float[T]) Less(a, b T) bool { return a < b }

func (Float[T]) IsUnreached(v T) bool { return math.IsInf(float64(v), 1) }

func (Float[T]) IsExcluded(v T) bool { return math.IsNaN(float64(v)) }

// Normalize divides unconditionally: +Inf / norm stays +Inf.
func (Float[T]) Normalize(v, norm T) T { return v / norm }

func (Float[T]) Float64(v T) float64 { return float64(v) }
