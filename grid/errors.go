package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeLabel indicates a label below zero.
	ErrNegativeLabel = errors.New("grid: labels must be non-negative")
	// ErrNonIntegralLabel indicates a dense value that is not a whole number.
	ErrNonIntegralLabel = errors.New("grid: labels must be whole numbers")
)
