package geodesic

import (
	"github.com/katalvlaran/chamferdt/chamfer"
	"github.com/katalvlaran/chamferdt/grid"
	"github.com/katalvlaran/chamferdt/numeric"
)

// step is a mask offset resolved for one grid: its row-major index delta and
// its weight in the target representation.
type step[T any] struct {
	dx, dy int
	delta  int
	w      T
}

// runner holds the mutable state of a single transform.
type runner[T any] struct {
	w, h     int
	regions  grid.Regions
	num      numeric.Numeric[T]
	dist     []T
	forward  []step[T]
	backward []step[T]
	all      []step[T]
	norm     T
	queue    worklist
}

func newRunner[T any](dist []T, w, h int, regions grid.Regions, mask *chamfer.Mask, num numeric.Numeric[T], queueCap int) *runner[T] {
	r := &runner[T]{
		w:       w,
		h:       h,
		regions: regions,
		num:     num,
		dist:    dist,
		norm:    num.Weight(mask.Normalization()),
		queue:   newWorklist(queueCap),
	}
	r.forward = r.steps(mask.Forward())
	r.backward = r.steps(mask.Backward())
	r.all = r.steps(mask.All())
	return r
}

func (r *runner[T]) steps(offsets []chamfer.Offset) []step[T] {
	out := make([]step[T], len(offsets))
	for i, o := range offsets {
		out[i] = step[T]{dx: o.DX, dy: o.DY, delta: o.DY*r.w + o.DX, w: r.num.Weight(o)}
	}
	return out
}

// neighbor returns the index of (x,y)+s when it lies inside the grid and in
// the same region as c. Every relaxation goes through here, so excluded
// cells are never read as distances.
func (r *runner[T]) neighbor(x, y, c int, s step[T]) (int, bool) {
	nx, ny := x+s.dx, y+s.dy
	if nx < 0 || nx >= r.w || ny < 0 || ny >= r.h {
		return 0, false
	}
	n := c + s.delta
	if r.regions.Excluded(n) || !r.regions.Same(c, n) {
		return 0, false
	}
	return n, true
}

// initialize writes the starting value of every cell and returns the number
// of seeded markers. Markers on excluded cells are ignored.
func (r *runner[T]) initialize(markers grid.Markers) int {
	seeds := 0
	for i := range r.dist {
		switch {
		case r.regions.Excluded(i):
			r.dist[i] = r.num.Excluded()
		case markers.Marked(i):
			r.dist[i] = r.num.Zero()
			seeds++
		default:
			r.dist[i] = r.num.Unreached()
		}
	}
	return seeds
}

// relax returns the smallest of d and dist(n)+w over the given steps.
func (r *runner[T]) relax(x, y, c int, d T, steps []step[T]) T {
	for _, s := range steps {
		n, ok := r.neighbor(x, y, c, s)
		if !ok {
			continue
		}
		if cand := r.num.Add(r.dist[n], s.w); r.num.Less(cand, d) {
			d = cand
		}
	}
	return d
}

// forwardPass sweeps rows top to bottom, cells left to right, relaxing each
// cell from its already-visited Forward neighbors. Returns the update count.
func (r *runner[T]) forwardPass() int {
	updates := 0
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			c := y*r.w + x
			if r.regions.Excluded(c) {
				continue
			}
			if d := r.relax(x, y, c, r.dist[c], r.forward); r.num.Less(d, r.dist[c]) {
				r.dist[c] = d
				updates++
			}
		}
	}
	return updates
}

// backwardPass mirrors forwardPass from the last cell to the first. A cell
// that improves also pushes its new value into its Backward neighbors: those
// were swept earlier in this pass and would otherwise miss the improvement.
// Each neighbor improved this way is queued for the worklist phase.
// Returns the update and push counts.
func (r *runner[T]) backwardPass() (updates, pushes int) {
	for y := r.h - 1; y >= 0; y-- {
		for x := r.w - 1; x >= 0; x-- {
			c := y*r.w + x
			if r.regions.Excluded(c) {
				continue
			}
			d := r.relax(x, y, c, r.dist[c], r.backward)
			if !r.num.Less(d, r.dist[c]) {
				continue
			}
			r.dist[c] = d
			updates++

			for _, s := range r.backward {
				n, ok := r.neighbor(x, y, c, s)
				if !ok {
					continue
				}
				if cand := r.num.Add(d, s.w); r.num.Less(cand, r.dist[n]) {
					r.dist[n] = cand
					r.queue.push(n)
					pushes++
				}
			}
		}
	}
	return updates, pushes
}

// propagate drains the worklist with the full offset set. A neighbor is
// re-queued only after a strict decrease, which bounds the loop.
// Returns the number of updates (each one is also a push).
func (r *runner[T]) propagate() int {
	updates := 0
	for r.queue.len() > 0 {
		c := r.queue.pop()
		x, y := c%r.w, c/r.w
		d := r.dist[c]
		for _, s := range r.all {
			n, ok := r.neighbor(x, y, c, s)
			if !ok {
				continue
			}
			if cand := r.num.Add(d, s.w); r.num.Less(cand, r.dist[n]) {
				r.dist[n] = cand
				r.queue.push(n)
				updates++
			}
		}
	}
	return updates
}

// normalize divides every region cell by the normalization weight. The
// representation decides how sentinels survive: +Inf stays +Inf for floats,
// integer sentinels are returned untouched.
func (r *runner[T]) normalize() int {
	updates := 0
	for i, v := range r.dist {
		if r.regions.Excluded(i) || r.num.IsUnreached(v) {
			continue
		}
		r.dist[i] = r.num.Normalize(v, r.norm)
		updates++
	}
	return updates
}
