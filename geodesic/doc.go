// Package geodesic computes label-constrained chamfer geodesic distance
// transforms.
//
// Given a grid split into labeled regions, a set of marker cells and a
// chamfer mask, every non-background cell receives the minimum-weight path
// distance to the nearest marker of its own region. Paths move only along
// mask offsets and never leave the region.
//
// Pipeline (each phase runs exactly once, in this order):
//
//  1. Init       excluded cells get the excluded sentinel, markers 0, every
//     other region cell the unreached sentinel.
//  2. Forward    row-major sweep relaxing each cell from its Forward offsets.
//  3. Backward   reverse sweep relaxing from Backward offsets; when a cell
//     improves, the improvement is pushed into its already-swept Backward
//     neighbors and every improved neighbor is queued.
//  4. Worklist   FIFO label-correcting relaxation with All offsets until the
//     queue is empty.
//  5. Normalize  optional division by the mask's normalization weight.
//
// Two raster sweeps alone are exact only for paths that agree with the scan
// order; regions with bends (spirals, U shapes) need the worklist. Every push
// follows a strict decrease of a value bounded below by zero and drawn from a
// finite set of sums, so the worklist always drains. On return no cell c and
// offset o inside one region satisfy dist(c+o) > dist(c) + weight(o).
//
// Representations are pluggable through numeric.Numeric: float32/float64
// (+Inf unreached, NaN excluded), uint16 (saturating) and 26.6 fixed point.
//
// Complexity:
//
//   - Time:   O(W·H·k) for the sweeps, k = mask size, plus the worklist,
//     bounded by O(W·H·k) relaxations per distinct improvement.
//   - Memory: one value per cell plus the FIFO queue.
//
// Errors:
//
//   - ErrNilInput:        a nil regions, markers, numeric or output argument.
//   - ErrNilMask:         a nil chamfer mask.
//   - ErrSizeMismatch:    regions, markers and output differ in extent.
//   - ErrOptionViolation: an invalid Option value.
//   - grid.ErrEmptyGrid:  a zero-sized input.
//
// Logging goes through log/slog and is silent by default; see SetLogger.
package geodesic
