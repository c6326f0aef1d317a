// Package chamferdt computes label-constrained chamfer geodesic distance
// transforms on 2-D grids.
//
// 🚀 What is chamferdt?
//
//	Given a grid split into labeled regions, a set of marker cells and a
//	chamfer mask, every region cell receives the length of the shortest
//	mask-step path to the nearest marker of its own region:
//		• Masks: chessboard, city-block, quasi-Euclidean, 3-4, 2-3, 5-7, 5-7-11
//		  or any point-symmetric offset table
//		• Regions: label maps, binary masks or your own grid.Regions
//		• Values: float32, float64, saturating uint16, 26.6 fixed point
//		• Exact on bent regions (U shapes, spirals) via a worklist pass
//
// Under the hood the module is organized as:
//
//	chamfer/   offsets, masks, presets and their scan partitions
//	grid/      row-major Labels, Binary, Marker and Field[T] containers, gonum bridges
//	numeric/   per-representation arithmetic and sentinels
//	geodesic/  the transform pipeline (init, forward, backward, worklist, normalize)
//	labeling/  connected-component labeling feeding the transform
//	dijkstra/  exact stencil-graph Dijkstra, used as a reference solver
//
// Quick example:
//
//	labels, _ := grid.LabelsFrom2D(rows)
//	markers, _ := grid.MarkerFrom2D(seeds)
//	dist, err := geodesic.Float32(labels, markers, chamfer.QuasiEuclidean.Mask())
//
// See the package docs for complexity, sentinels and options.
package chamferdt
