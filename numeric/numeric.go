package numeric

import "github.com/katalvlaran/chamferdt/chamfer"

// Numeric is the arithmetic of one distance representation T.
//
// Add must be absorbing on Unreached and must never overflow: a sum that
// leaves the finite range yields Unreached. Less is a strict order on finite
// values and Unreached; it is never asked about Excluded.
type Numeric[T any] interface {
	// Zero is the distance of a marker cell.
	Zero() T
	// Unreached marks a region cell not (yet) reached from any marker.
	Unreached() T
	// Excluded marks background cells; the transforms never overwrite it.
	Excluded() T
	// Weight converts the weight of o into T.
	Weight(o chamfer.Offset) T
	// Add returns v+w, saturating at Unreached.
	Add(v, w T) T
	// Less reports a < b.
	Less(a, b T) bool
	// IsUnreached reports whether v is the unreached sentinel.
	IsUnreached(v T) bool
	// IsExcluded reports whether v is the excluded sentinel.
	IsExcluded(v T) bool
	// Normalize divides a finite v by norm. Unreached is returned unchanged.
	Normalize(v, norm T) T
	// Float64 converts v to float64: +Inf for Unreached, NaN for Excluded.
	Float64(v T) float64
}
