package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/chamferdt/chamfer"
	"github.com/katalvlaran/chamferdt/grid"
)

// Distances computes, for every cell, the minimum-weight path length to the
// nearest marker of its region, moving along offsets of mask.
//
// Returns:
//
//   - dist: row-major distances; NaN for excluded cells, +Inf for unreached.
//   - prev: if ReturnPath=true, prev[i] is the cell preceding i on one
//     shortest path, NoPredecessor for markers and unreached cells.
//     Nil otherwise.
//   - err:  one of the sentinel errors, or nil on success.
//
// Markers on excluded cells are ignored.
func Distances(regions grid.Regions, markers grid.Markers, mask *chamfer.Mask, opts ...Option) ([]float64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if regions == nil || markers == nil {
		return nil, nil, ErrNilInput
	}
	if mask == nil {
		return nil, nil, ErrNilMask
	}
	w, h := regions.Size()
	if w <= 0 || h <= 0 {
		return nil, nil, grid.ErrEmptyGrid
	}
	if mw, mh := markers.Size(); mw != w || mh != h {
		return nil, nil, fmt.Errorf("%w: regions %dx%d, markers %dx%d", ErrSizeMismatch, w, h, mw, mh)
	}

	// 3) Prepare state.
	n := w * h
	r := &runner{
		w:       w,
		h:       h,
		regions: regions,
		offsets: mask.Offsets(),
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 4) Seed and run.
	r.init(markers)
	r.process()

	return r.dist, r.prev, nil
}

// Path walks prev back from cell i and returns the cells from the marker to
// i inclusive. It returns nil when i was not reached or prev is nil.
func Path(prev []int, dist []float64, i int) []int {
	if prev == nil || i < 0 || i >= len(dist) || math.IsNaN(dist[i]) || math.IsInf(dist[i], 1) {
		return nil
	}
	var path []int
	for c := i; c != NoPredecessor; c = prev[c] {
		path = append(path, c)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// runner holds the mutable state for a single execution.
type runner struct {
	w, h    int
	regions grid.Regions
	offsets []chamfer.Offset
	options Options
	dist    []float64 // best distance so far
	prev    []int     // predecessor, nil unless ReturnPath
	visited []bool    // finalized cells
	pq      nodePQ
}

// init writes NaN to excluded cells, +Inf to region cells and pushes every
// marker with distance 0.
func (r *runner) init(markers grid.Markers) {
	heap.Init(&r.pq)
	for i := range r.dist {
		if r.prev != nil {
			r.prev[i] = NoPredecessor
		}
		switch {
		case r.regions.Excluded(i):
			r.dist[i] = math.NaN()
		case markers.Marked(i):
			r.dist[i] = 0
			heap.Push(&r.pq, &nodeItem{id: i, dist: 0})
		default:
			r.dist[i] = math.Inf(1)
		}
	}
}

// process pops cells in increasing distance until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves every same-region neighbor of the finalized cell u.
func (r *runner) relax(u int) {
	x, y := u%r.w, u/r.w
	for _, o := range r.offsets {
		nx, ny := x+o.DX, y+o.DY
		if nx < 0 || nx >= r.w || ny < 0 || ny >= r.h {
			continue
		}
		v := ny*r.w + nx
		if r.regions.Excluded(v) || !r.regions.Same(u, v) {
			continue
		}

		newDist := r.dist[u] + o.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy decrease-key: the outdated entry is skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a cell and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by cell
// index so runs are reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
