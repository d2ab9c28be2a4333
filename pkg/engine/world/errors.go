package world

import "errors"

var (
	// ErrInvalidDimension is returned for even, non-positive or too small
	// grid dimensions.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidEndpoints is returned when start and end coincide or either
	// cannot be carved.
	ErrInvalidEndpoints = errors.New("invalid start/end endpoints")
)
