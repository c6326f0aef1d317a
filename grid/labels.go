package grid

import "fmt"

// Regions partitions a grid into disjoint regions. Cell arguments are
// row-major indices.
type Regions interface {
	// Size returns the grid extent.
	Size() (w, h int)
	// Excluded reports whether cell i belongs to no region (background).
	Excluded(i int) bool
	// Same reports whether cells i and j belong to the same region.
	// It is only asked about cells that are not excluded.
	Same(i, j int) bool
}

// Markers flags seed cells.
type Markers interface {
	Size() (w, h int)
	Marked(i int) bool
}

// Labels is a dense map of non-negative region labels; 0 is background.
type Labels struct {
	Shape
	data []int
}

// NewLabels returns an all-background w×h label map.
func NewLabels(w, h int) (*Labels, error) {
	s, err := newShape(w, h)
	if err != nil {
		return nil, err
	}
	return &Labels{Shape: s, data: make([]int, s.Len())}, nil
}

// LabelsFrom2D copies a rectangular [y][x] slice into a label map.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeLabel.
// Complexity: O(W×H) time and memory.
func LabelsFrom2D(values [][]int) (*Labels, error) {
	s, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	l := &Labels{Shape: s, data: make([]int, s.Len())}
	for y, row := range values {
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeLabel, v, x, y)
			}
			l.data[s.Index(x, y)] = v
		}
	}
	return l, nil
}

// Size returns the extent; a nil *Labels reports 0×0 so that a typed nil
// passed as Regions is rejected as an empty grid instead of panicking.
func (l *Labels) Size() (w, h int) {
	if l == nil {
		return 0, 0
	}
	return l.Width, l.Height
}

// At returns the label of (x,y). Out-of-range coordinates panic like slice indexing.
func (l *Labels) At(x, y int) int { return l.data[l.Index(x, y)] }

// Set assigns label v to (x,y). Negative labels are stored as background.
func (l *Labels) Set(x, y, v int) {
	if v < 0 {
		v = 0
	}
	l.data[l.Index(x, y)] = v
}

// Label returns the label of cell i.
func (l *Labels) Label(i int) int { return l.data[i] }

// Excluded reports whether cell i is background.
func (l *Labels) Excluded(i int) bool { return l.data[i] == 0 }

// Same reports whether cells i and j carry the same label.
func (l *Labels) Same(i, j int) bool { return l.data[i] == l.data[j] }

// Max returns the largest label present (0 for an all-background map).
func (l *Labels) Max() int {
	m := 0
	for _, v := range l.data {
		m = max(m, v)
	}
	return m
}

// Rows copies the labels into a fresh [y][x] slice.
func (l *Labels) Rows() [][]int {
	rows := make([][]int, l.Height)
	for y := range rows {
		rows[y] = append([]int(nil), l.data[y*l.Width:(y+1)*l.Width]...)
	}
	return rows
}

// Binary is a single-region mask: every true cell belongs to the region.
type Binary struct {
	Shape
	data []bool
}

// NewBinary returns an all-false w×h mask.
func NewBinary(w, h int) (*Binary, error) {
	s, err := newShape(w, h)
	if err != nil {
		return nil, err
	}
	return &Binary{Shape: s, data: make([]bool, s.Len())}, nil
}

// BinaryFrom2D copies a rectangular [y][x] slice into a mask.
func BinaryFrom2D(values [][]bool) (*Binary, error) {
	s, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	b := &Binary{Shape: s, data: make([]bool, s.Len())}
	for y, row := range values {
		copy(b.data[y*s.Width:(y+1)*s.Width], row)
	}
	return b, nil
}

// Size returns the extent; a nil *Binary reports 0×0.
func (b *Binary) Size() (w, h int) {
	if b == nil {
		return 0, 0
	}
	return b.Width, b.Height
}

// At reports whether (x,y) is inside the region.
func (b *Binary) At(x, y int) bool { return b.data[b.Index(x, y)] }

// Set includes or excludes (x,y).
func (b *Binary) Set(x, y int, v bool) { b.data[b.Index(x, y)] = v }

// Excluded reports whether cell i lies outside the region.
func (b *Binary) Excluded(i int) bool { return !b.data[i] }

// Same reports whether both cells lie inside the region.
func (b *Binary) Same(i, j int) bool { return b.data[i] && b.data[j] }

// Marker is a dense field of seed flags.
type Marker struct {
	Shape
	data []bool
}

// NewMarker returns an unmarked w×h field.
func NewMarker(w, h int) (*Marker, error) {
	s, err := newShape(w, h)
	if err != nil {
		return nil, err
	}
	return &Marker{Shape: s, data: make([]bool, s.Len())}, nil
}

// MarkerFrom2D copies a rectangular [y][x] slice into a marker field.
func MarkerFrom2D(values [][]bool) (*Marker, error) {
	s, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	m := &Marker{Shape: s, data: make([]bool, s.Len())}
	for y, row := range values {
		copy(m.data[y*s.Width:(y+1)*s.Width], row)
	}
	return m, nil
}

// Size returns the extent; a nil *Marker reports 0×0.
func (m *Marker) Size() (w, h int) {
	if m == nil {
		return 0, 0
	}
	return m.Width, m.Height
}

// At reports whether (x,y) is marked.
func (m *Marker) At(x, y int) bool { return m.data[m.Index(x, y)] }

// Set marks or unmarks (x,y).
func (m *Marker) Set(x, y int, v bool) { m.data[m.Index(x, y)] = v }

// Marked reports whether cell i is marked.
func (m *Marker) Marked(i int) bool { return m.data[i] }

// Count returns the number of marked cells.
func (m *Marker) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}
