package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LabelsFromDense reads a label map from a gonum matrix (row = y, column = x).
// Every entry must be a non-negative whole number.
func LabelsFromDense(m mat.Matrix) (*Labels, error) {
	rows, cols := m.Dims()
	l, err := NewLabels(cols, rows)
	if err != nil {
		return nil, err
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := m.At(y, x)
			if v != math.Trunc(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %g at (%d,%d)", ErrNonIntegralLabel, v, x, y)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: %g at (%d,%d)", ErrNegativeLabel, v, x, y)
			}
			l.data[l.Index(x, y)] = int(v)
		}
	}
	return l, nil
}

// MarkerFromDense marks every non-zero entry of m.
func MarkerFromDense(m mat.Matrix) (*Marker, error) {
	rows, cols := m.Dims()
	mk, err := NewMarker(cols, rows)
	if err != nil {
		return nil, err
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mk.data[mk.Index(x, y)] = m.At(y, x) != 0
		}
	}
	return mk, nil
}

// BinaryFromDense includes every entry of m strictly above threshold.
func BinaryFromDense(m mat.Matrix, threshold float64) (*Binary, error) {
	rows, cols := m.Dims()
	b, err := NewBinary(cols, rows)
	if err != nil {
		return nil, err
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b.data[b.Index(x, y)] = m.At(y, x) > threshold
		}
	}
	return b, nil
}

// ToDense converts f into a gonum matrix using conv for each cell.
// Pair it with a numeric representation's Float64 method so that sentinels
// come out as +Inf (unreached) and NaN (excluded).
func ToDense[T any](f *Field[T], conv func(T) float64) *mat.Dense {
	out := mat.NewDense(f.Height, f.Width, nil)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out.Set(y, x, conv(f.data[f.Index(x, y)]))
		}
	}
	return out
}
