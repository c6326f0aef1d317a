// Package grid holds the dense row-major containers used by the distance
// transforms: label maps, marker fields, binary regions and generic value
// fields.
//
// What:
//
//   - Shape carries Width/Height and the index helpers shared by every grid
//     (InBounds, Index, Coordinate).
//   - Labels is a read-only-by-convention map of non-negative region labels;
//     0 is background.
//   - Binary is a single-region mask: true cells form one region.
//   - Marker flags seed cells.
//   - Field[T] stores one value of any representation per cell.
//
// Regions and Markers are the small interfaces the algorithms consume, so
// the relaxation core never depends on how labels are stored.
//
// Interop: LabelsFromDense, MarkerFromDense, BinaryFromDense and ToDense
// convert from and to gonum *mat.Dense matrices (rows = y, columns = x).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNegativeLabel: a label below zero.
//   - ErrNonIntegralLabel: a dense value that is not a whole number.
package grid
