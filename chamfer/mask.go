package chamfer

import (
	"fmt"
	"math"
)

type displacement struct{ dx, dy int }

// NewMask validates offsets and builds an immutable Mask.
//
// The list must be point-symmetric: for every offset (dx,dy) the offset
// (-dx,-dy) must be present with the same Weight and IntWeight. The input
// slice is copied; later changes to it do not affect the mask.
//
// Validation order: ErrNoOffsets → ErrZeroOffset / ErrBadWeight (per offset)
// → ErrDuplicateOffset → ErrAsymmetric.
// Complexity: O(n) time and memory, n = len(offsets).
func NewMask(offsets []Offset) (*Mask, error) {
	if len(offsets) == 0 {
		return nil, ErrNoOffsets
	}

	// 1) Normalize and validate every offset on its own.
	list := make([]Offset, len(offsets))
	for i, o := range offsets {
		if o.DX == 0 && o.DY == 0 {
			return nil, fmt.Errorf("%w: offset #%d", ErrZeroOffset, i)
		}
		if math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) || o.Weight <= 0 {
			return nil, fmt.Errorf("%w: offset %s", ErrBadWeight, o)
		}
		switch {
		case o.IntWeight == 0:
			o.IntWeight = deriveIntWeight(o.Weight)
		case o.IntWeight < 0 || o.IntWeight > MaxIntWeight:
			return nil, fmt.Errorf("%w: integer weight %d of offset (%d,%d)", ErrBadWeight, o.IntWeight, o.DX, o.DY)
		}
		list[i] = o
	}

	// 2) Index by displacement to detect duplicates.
	byDisp := make(map[displacement]Offset, len(list))
	for _, o := range list {
		d := displacement{o.DX, o.DY}
		if _, dup := byDisp[d]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateOffset, o.DX, o.DY)
		}
		byDisp[d] = o
	}

	// 3) Point symmetry: each offset needs an identically weighted twin.
	for _, o := range list {
		twin, ok := byDisp[displacement{-o.DX, -o.DY}]
		if !ok || twin.Weight != o.Weight || twin.IntWeight != o.IntWeight {
			return nil, fmt.Errorf("%w: %s has no matching (%d,%d)", ErrAsymmetric, o, -o.DX, -o.DY)
		}
	}

	// 4) Derive the scan partitions. Backward keeps the order of Forward so
	//    that forward[i] and backward[i] are always twins.
	m := &Mask{offsets: list}
	for _, o := range list {
		if o.IsForward() {
			m.forward = append(m.forward, o)
		}
	}
	m.backward = make([]Offset, len(m.forward))
	for i, o := range m.forward {
		m.backward[i] = o.Neg()
	}
	m.all = make([]Offset, 0, len(m.forward)*2)
	m.all = append(m.all, m.forward...)
	m.all = append(m.all, m.backward...)

	m.norm = pickNormalization(list)
	for _, o := range list {
		m.radius = max(m.radius, abs(o.DX), abs(o.DY))
	}

	return m, nil
}

// deriveIntWeight rounds w to the nearest integer in [1, MaxIntWeight].
func deriveIntWeight(w float64) int {
	r := math.Round(w)
	if r < 1 {
		return 1
	}
	if r > MaxIntWeight {
		return MaxIntWeight
	}
	return int(r)
}

// pickNormalization returns the lightest orthogonal offset, or the lightest
// offset overall when the mask has no orthogonal step.
func pickNormalization(list []Offset) Offset {
	best, found := Offset{}, false
	for _, o := range list {
		if o.IsOrthogonal() && (!found || o.Weight < best.Weight) {
			best, found = o, true
		}
	}
	if found {
		return best
	}
	best = list[0]
	for _, o := range list[1:] {
		if o.Weight < best.Weight {
			best = o
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Offsets returns a copy of the offsets in construction order.
func (m *Mask) Offsets() []Offset { return clone(m.offsets) }

// Forward returns a copy of the offsets pointing to cells visited earlier
// by a row-major raster scan.
func (m *Mask) Forward() []Offset { return clone(m.forward) }

// Backward returns a copy of the negations of Forward, index-aligned with it.
func (m *Mask) Backward() []Offset { return clone(m.backward) }

// All returns Forward followed by Backward.
func (m *Mask) All() []Offset { return clone(m.all) }

// Len is the number of offsets in the mask.
func (m *Mask) Len() int { return len(m.offsets) }

// Radius is the largest |dx| or |dy| of any offset.
func (m *Mask) Radius() int { return m.radius }

// Normalization returns the offset whose weight rescales chamfer distances
// into approximate Euclidean units.
func (m *Mask) Normalization() Offset { return m.norm }

// NormalizationWeight is the floating weight of Normalization().
func (m *Mask) NormalizationWeight() float64 { return m.norm.Weight }

// NormalizationIntWeight is the integer weight of Normalization().
func (m *Mask) NormalizationIntWeight() int { return m.norm.IntWeight }

// String lists the forward half of the mask.
func (m *Mask) String() string {
	return fmt.Sprintf("chamfer.Mask%v", m.forward)
}

func clone(in []Offset) []Offset {
	out := make([]Offset, len(in))
	copy(out, in)
	return out
}
