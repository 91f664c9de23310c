package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// CellState is the state of a single cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]", c.Row, c.Col)
}

// Bounds is an inclusive rectangle; only its size matters to the grid.
type Bounds struct {
	TopLeft     Coordinate
	BottomRight Coordinate
}

// Rows returns the number of rows spanned by the bounds
func (b Bounds) Rows() int {
	return b.BottomRight.Row - b.TopLeft.Row + 1
}

// Columns returns the number of columns spanned by the bounds
func (b Bounds) Columns() int {
	return b.BottomRight.Col - b.TopLeft.Col + 1
}

// Validate reports ErrInvalidBounds when the rectangle is inverted on either axis.
func (b Bounds) Validate() error {
	if b.BottomRight.Row < b.TopLeft.Row || b.BottomRight.Col < b.TopLeft.Col {
		return errors.Wrapf(ErrInvalidBounds, "[Bounds.Validate] top-left %s, bottom-right %s", b.TopLeft, b.BottomRight)
	}
	return nil
}

// OutOfBoundsPolicy selects how live cells outside the grid are treated.
type OutOfBoundsPolicy int

const (
	// ClipOutOfBounds drops coordinates outside the grid.
	ClipOutOfBounds OutOfBoundsPolicy = iota
	// RejectOutOfBounds fails with ErrOutOfBounds.
	RejectOutOfBounds
)
