package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a fixed rows x columns board of cell states
type Grid struct {
	rows    int
	columns int
	cells   [][]CellState
}

// NewGrid creates a new grid with every cell dead
func NewGrid(rows, columns int) *Grid {
	cells := make([][]CellState, rows)
	for i := range cells {
		cells[i] = make([]CellState, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// NewGridChecked is NewGrid with ErrInvalidDimensions for non-positive sizes
func NewGridChecked(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGridChecked] rows: %d, columns: %d", rows, columns)
	}
	return NewGrid(rows, columns), nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns of the grid
func (g *Grid) Columns() int {
	return g.columns
}

// Reset resets the grid to new dimensions, all cells dead
func (g *Grid) Reset(rows, columns int) {
	g.rows = rows
	g.columns = columns

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]CellState, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != columns {
			g.cells[i] = make([]CellState, columns)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
}

// InBounds reports whether c addresses a cell of the grid
func (g *Grid) InBounds(c Coordinate) bool {
	return inBounds(g.rows, g.columns, c)
}

func inBounds(rows, columns int, c Coordinate) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < columns
}

// Get returns the state of a cell; cells outside the grid are dead
func (g *Grid) Get(c Coordinate) CellState {
	if !g.InBounds(c) {
		return Dead
	}
	return g.cells[c.Row][c.Col]
}

// IsAlive is shorthand for Get(c) == Alive
func (g *Grid) IsAlive(c Coordinate) bool {
	return g.Get(c) == Alive
}

// WithLiveCells returns a copy of the grid with every listed cell alive.
// The receiver is left untouched.
func (g *Grid) WithLiveCells(cells []Coordinate, policy OutOfBoundsPolicy) (*Grid, error) {
	next := g.Clone()
	for _, c := range cells {
		if !next.InBounds(c) {
			if policy == RejectOutOfBounds {
				return nil, errors.Wrapf(ErrOutOfBounds, "[WithLiveCells] cell %s on %dx%d grid", c, g.rows, g.columns)
			}
			continue
		}
		next.cells[c.Row][c.Col] = Alive
	}
	return next, nil
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.rows, g.columns)
	for r := range g.rows {
		copy(next.cells[r], g.cells[r])
	}
	return next
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.columns)
	for r := range g.rows {
		for c := range g.columns {
			h.Write([]byte{byte(g.cells[r][c])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
