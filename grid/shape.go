package grid

// Shape is the extent of a row-major grid.
type Shape struct {
	Width, Height int
}

// newShape returns ErrEmptyGrid unless both dimensions are positive.
func newShape(w, h int) (Shape, error) {
	if w <= 0 || h <= 0 {
		return Shape{}, ErrEmptyGrid
	}
	return Shape{Width: w, Height: h}, nil
}

// shapeOf validates a 2-D slice and returns its extent.
func shapeOf[T any](values [][]T) (Shape, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Shape{}, ErrEmptyGrid
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return Shape{}, ErrNonRectangular
		}
	}
	return Shape{Width: w, Height: len(values)}, nil
}

// Size returns (Width, Height).
func (s Shape) Size() (w, h int) { return s.Width, s.Height }

// Len is the number of cells.
func (s Shape) Len() int { return s.Width * s.Height }

// InBounds reports whether (x,y) lies inside the grid.
// Complexity: O(1).
func (s Shape) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Index maps (x,y) to the row-major index y*Width + x.
func (s Shape) Index(x, y int) int { return y*s.Width + x }

// Coordinate converts a row-major index back to (x,y).
func (s Shape) Coordinate(i int) (x, y int) { return i % s.Width, i / s.Width }

// SameSize reports whether s spans exactly w×h cells.
func (s Shape) SameSize(w, h int) bool { return s.Width == w && s.Height == h }
