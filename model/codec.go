package model

import "github.com/pkg/errors"

// ToSparse lists the living cells of g in row-major order
func ToSparse(g *Grid) []Coordinate {
	live := make([]Coordinate, 0, g.CountLivingCells())
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] == Alive {
				live = append(live, Coordinate{Row: r, Col: c})
			}
		}
	}
	return live
}

// FromSparse builds a rows x columns grid with the listed cells alive.
// Duplicate coordinates are harmless.
func FromSparse(rows, columns int, cells []Coordinate, policy OutOfBoundsPolicy) (*Grid, error) {
	empty, err := NewGridChecked(rows, columns)
	if err != nil {
		return nil, errors.Wrap(err, "[FromSparse] failed to create grid")
	}
	return empty.WithLiveCells(cells, policy)
}
