package chamfer

import (
	"fmt"
	"math"
	"strings"
)

// Preset names one of the classic chamfer masks.
type Preset int

const (
	// Chessboard uses weight 1 for orthogonal and diagonal steps (Chebyshev distance).
	Chessboard Preset = iota
	// CityBlock uses 1 for orthogonal and 2 for diagonal steps (Manhattan distance).
	CityBlock
	// QuasiEuclidean uses {1, √2} as floats and {10, 14} as integers.
	QuasiEuclidean
	// Borgefors uses the {3, 4} weights.
	Borgefors
	// Weights23 uses the {2, 3} weights.
	Weights23
	// Weights57 uses the {5, 7} weights.
	Weights57
	// ChessKnight is the 5x5 mask {5, 7, 11} with knight moves.
	ChessKnight
)

var presetNames = [...]string{
	Chessboard:     "chessboard",
	CityBlock:      "city-block",
	QuasiEuclidean: "quasi-euclidean",
	Borgefors:      "borgefors",
	Weights23:      "weights-23",
	Weights57:      "weights-57",
	ChessKnight:    "chessknight",
}

// Presets lists every known preset in declaration order.
func Presets() []Preset {
	return []Preset{Chessboard, CityBlock, QuasiEuclidean, Borgefors, Weights23, Weights57, ChessKnight}
}

// String returns the canonical lower-case name of p.
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset resolves a preset by name. Matching ignores case, and
// underscores or spaces are accepted in place of hyphens.
func ParsePreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, n := range presetNames {
		if n == key || strings.ReplaceAll(n, "-", "") == key {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Mask builds the mask described by p. It panics on a value outside the
// declared presets; use ParsePreset to validate external input.
func (p Preset) Mask() *Mask {
	switch p {
	case Chessboard:
		return mustMask(square3(1, 1, 1, 1))
	case CityBlock:
		return mustMask(square3(1, 2, 1, 2))
	case QuasiEuclidean:
		return mustMask(square3(1, math.Sqrt2, 10, 14))
	case Borgefors:
		return mustMask(square3(3, 4, 3, 4))
	case Weights23:
		return mustMask(square3(2, 3, 2, 3))
	case Weights57:
		return mustMask(square3(5, 7, 5, 7))
	case ChessKnight:
		return mustMask(chessKnightTable)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownPreset, p))
	}
}

// NewMask3x3 builds a 3x3 mask with orthogonal weight a and diagonal weight b.
// Integer weights are derived by rounding.
func NewMask3x3(a, b float64) (*Mask, error) {
	return NewMask(square3(a, b, 0, 0))
}

// NewMask5x5 builds a 5x5 mask with orthogonal weight a, diagonal weight b
// and knight-move weight c. Integer weights are derived by rounding.
func NewMask5x5(a, b, c float64) (*Mask, error) {
	offsets := square3(a, b, 0, 0)
	for _, d := range [][2]int{{1, -2}, {-1, -2}, {2, -1}, {-2, -1}, {1, 2}, {-1, 2}, {2, 1}, {-2, 1}} {
		offsets = append(offsets, Offset{DX: d[0], DY: d[1], Weight: c})
	}
	return NewMask(offsets)
}

// FromWeights dispatches on the number of weights: two build a 3x3 mask,
// three build a 5x5 mask.
func FromWeights(weights ...float64) (*Mask, error) {
	switch len(weights) {
	case 2:
		return NewMask3x3(weights[0], weights[1])
	case 3:
		return NewMask5x5(weights[0], weights[1], weights[2])
	default:
		return nil, fmt.Errorf("%w: got %d", ErrWeightCount, len(weights))
	}
}

// square3 lists the eight neighbors of a 3x3 mask.
func square3(a, b float64, ia, ib int) []Offset {
	return []Offset{
		{DX: -1, DY: -1, Weight: b, IntWeight: ib},
		{DX: 0, DY: -1, Weight: a, IntWeight: ia},
		{DX: 1, DY: -1, Weight: b, IntWeight: ib},
		{DX: -1, DY: 0, Weight: a, IntWeight: ia},
		{DX: 1, DY: 0, Weight: a, IntWeight: ia},
		{DX: -1, DY: 1, Weight: b, IntWeight: ib},
		{DX: 0, DY: 1, Weight: a, IntWeight: ia},
		{DX: 1, DY: 1, Weight: b, IntWeight: ib},
	}
}

// chessKnightTable is the hand-written 5x5 knight mask. It is kept apart from
// NewMask5x5 on purpose; both must describe the same offset set.
var chessKnightTable = []Offset{
	{DX: -1, DY: -2, Weight: 11, IntWeight: 11},
	{DX: 1, DY: -2, Weight: 11, IntWeight: 11},
	{DX: -2, DY: -1, Weight: 11, IntWeight: 11},
	{DX: -1, DY: -1, Weight: 7, IntWeight: 7},
	{DX: 0, DY: -1, Weight: 5, IntWeight: 5},
	{DX: 1, DY: -1, Weight: 7, IntWeight: 7},
	{DX: 2, DY: -1, Weight: 11, IntWeight: 11},
	{DX: -1, DY: 0, Weight: 5, IntWeight: 5},
	{DX: 1, DY: 0, Weight: 5, IntWeight: 5},
	{DX: -2, DY: 1, Weight: 11, IntWeight: 11},
	{DX: -1, DY: 1, Weight: 7, IntWeight: 7},
	{DX: 0, DY: 1, Weight: 5, IntWeight: 5},
	{DX: 1, DY: 1, Weight: 7, IntWeight: 7},
	{DX: 2, DY: 1, Weight: 11, IntWeight: 11},
	{DX: -1, DY: 2, Weight: 11, IntWeight: 11},
	{DX: 1, DY: 2, Weight: 11, IntWeight: 11},
}

// mustMask is only used with the package's own literal tables.
func mustMask(offsets []Offset) *Mask {
	m, err := NewMask(offsets)
	if err != nil {
		panic(err)
	}
	return m
}
