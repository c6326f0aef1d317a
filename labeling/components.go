package labeling

import "github.com/katalvlaran/chamferdt/grid"

// ConnectedComponents labels every connected component of r and returns the
// label map together with the number of components.
//
// A *grid.Binary yields its foreground islands; a *grid.Labels is split
// wherever one label covers several disconnected patches.
func ConnectedComponents(r grid.Regions, conn Connectivity) (*grid.Labels, int, error) {
	w, h := r.Size()
	out, err := grid.NewLabels(w, h)
	if err != nil {
		return nil, 0, err
	}
	offsets := conn.offsets()
	n := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i0 := out.Index(x, y)
			if r.Excluded(i0) || out.Label(i0) != 0 {
				continue
			}
			// BFS to flood the component
			n++
			out.Set(x, y, n)
			queue := []int{i0}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := out.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !out.InBounds(vx, vy) {
						continue
					}
					vi := out.Index(vx, vy)
					if out.Label(vi) != 0 || r.Excluded(vi) || !r.Same(u, vi) {
						continue
					}
					out.Set(vx, vy, n)
					queue = append(queue, vi)
				}
			}
		}
	}
	return out, n, nil
}

// Sizes returns the cell count of each component of l, indexed by label.
// Index 0 counts background cells.
func Sizes(l *grid.Labels) []int {
	sizes := make([]int, l.Max()+1)
	for i := 0; i < l.Len(); i++ {
		sizes[l.Label(i)]++
	}
	return sizes
}
