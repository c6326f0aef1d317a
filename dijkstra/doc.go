// Package dijkstra computes exact multi-source shortest distances over the
// stencil graph of a chamfer mask.
//
// Every region cell is a vertex; cell c is joined to c+o for each mask
// offset o when both cells lie inside the grid and in the same region, with
// edge weight o.Weight. All marker cells start at distance 0.
//
// The result is the fixed point the chamfer sweeps converge to, computed by
// an independent method. It serves as a reference for geodesic transforms
// and as a standalone solver when predecessors are needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = region cells, E ≤ V·k for a k-offset mask.
//   - Space: O(V + E) under lazy decrease-key.
//
// Output convention (float64, row-major):
//
//   - NaN:  excluded cell.
//   - +Inf: region cell with no marker reachable (or beyond MaxDistance).
//
// Errors (sentinel):
//
//   - ErrNilInput:       nil regions or markers.
//   - ErrNilMask:        nil chamfer mask.
//   - ErrSizeMismatch:   regions and markers differ in extent.
//   - ErrBadMaxDistance: raised via panic by WithMaxDistance.
//   - grid.ErrEmptyGrid: zero-sized input.
package dijkstra
