package grid

// Field is a dense row-major grid of values of any representation.
type Field[T any] struct {
	Shape
	data []T
}

// NewField returns a zero-valued w×h field.
func NewField[T any](w, h int) (*Field[T], error) {
	s, err := newShape(w, h)
	if err != nil {
		return nil, err
	}
	return &Field[T]{Shape: s, data: make([]T, s.Len())}, nil
}

// At returns the value at (x,y).
func (f *Field[T]) At(x, y int) T { return f.data[f.Index(x, y)] }

// Set stores v at (x,y).
func (f *Field[T]) Set(x, y int, v T) { f.data[f.Index(x, y)] = v }

// Values exposes the row-major backing slice. Writes go straight to the field.
func (f *Field[T]) Values() []T { return f.data }

// Fill sets every cell to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clone returns a deep copy of f.
func (f *Field[T]) Clone() *Field[T] {
	out := &Field[T]{Shape: f.Shape, data: make([]T, len(f.data))}
	copy(out.data, f.data)
	return out
}

// Rows copies the field into a fresh [y][x] slice.
func (f *Field[T]) Rows() [][]T {
	rows := make([][]T, f.Height)
	for y := range rows {
		rows[y] = make([]T, f.Width)
		copy(rows[y], f.data[y*f.Width:(y+1)*f.Width])
	}
	return rows
}
