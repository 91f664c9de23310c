package model

import "github.com/pkg/errors"

var (
	// ErrInvalidBounds is returned when the bottom-right corner lies above or left of the top-left one.
	ErrInvalidBounds = errors.New("model: bottom-right corner must not precede top-left corner")
	// ErrOutOfBounds is returned when a live cell falls outside the grid under RejectOutOfBounds.
	ErrOutOfBounds = errors.New("model: coordinate outside grid")
	// ErrInvalidIterationCount is returned for a negative number of generations.
	ErrInvalidIterationCount = errors.New("model: iteration count must be non-negative")
	// ErrInvalidDimensions is returned when a grid would have no rows or no columns.
	ErrInvalidDimensions = errors.New("model: grid dimensions must be positive")
)
