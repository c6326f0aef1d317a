// Package chamfer describes chamfer masks: small sets of weighted grid
// offsets that approximate Euclidean distance through local steps.
//
// What:
//
//   - Offset pairs a displacement (DX, DY) with a floating weight and an
//     integer weight. Floating distance maps use Weight, integer maps use
//     IntWeight (e.g. the quasi-Euclidean mask is {1, √2} as floats but
//     {10, 14} as integers).
//   - Mask is an immutable, point-symmetric offset set. At construction it is
//     split once into Forward offsets (cells already visited by a row-major
//     raster scan), Backward offsets (their negations) and All offsets.
//   - Presets cover the classic masks: Chessboard, CityBlock, QuasiEuclidean,
//     Borgefors, Weights23, Weights57 and ChessKnight.
//
// Raster order:
//
//	A forward scan visits rows with increasing y, and inside a row cells with
//	increasing x. An offset (dx, dy) is Forward when the cell it reaches was
//	visited strictly earlier: dy < 0, or dy == 0 and dx < 0.
//
//	    (-1,-1) (0,-1) (1,-1)      F F F
//	    (-1, 0)    c   (1, 0)  →   F c B
//	    (-1, 1) (0, 1) (1, 1)      B B B
//
// Errors:
//
//   - ErrNoOffsets: the offset list is empty.
//   - ErrZeroOffset: an offset has displacement (0,0).
//   - ErrDuplicateOffset: a displacement appears twice.
//   - ErrBadWeight: a weight is not strictly positive and finite, or an
//     explicit integer weight is outside [1, 65535].
//   - ErrAsymmetric: an offset has no negated twin with identical weights.
//   - ErrWeightCount: FromWeights received neither 2 nor 3 weights.
//   - ErrUnknownPreset: ParsePreset received an unknown name (Preset.Mask
//     panics with it on an out-of-range Preset).
package chamfer
