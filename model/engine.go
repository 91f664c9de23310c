package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/bounded-life/rules"
)

// Engine advances grids generation by generation. The zero value steps
// sequentially, allocates a fresh grid per step and clips out-of-bounds cells.
type Engine struct {
	Parallel bool
	Pool     *GridPool
	Policy   OutOfBoundsPolicy
}

// Step computes the next generation of g into a new grid. g is not modified.
func Step(g *Grid) *Grid {
	next := NewGrid(g.rows, g.columns)
	g.stepRows(next, 0, g.rows)
	return next
}

// StepParallel is Step with row bands computed concurrently; the result is identical.
func StepParallel(g *Grid) *Grid {
	return g.nextGenerationParallel(NewGrid(g.rows, g.columns))
}

// stepRows writes the next state of rows [startRow, endRow) of g into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := range g.columns {
			cell := Coordinate{Row: r, Col: c}
			alive := rules.ApplyConwayRules(g.CountAliveNeighbors(cell), g.cells[r][c] == Alive)
			if alive {
				next.cells[r][c] = Alive
			} else {
				next.cells[r][c] = Dead
			}
		}
	}
}

// nextGenerationParallel splits the rows of g across one worker per CPU
func (g *Grid) nextGenerationParallel(next *Grid) *Grid {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait() // workers never fail

	return next
}

// Step computes the next generation of g according to the engine settings
func (e *Engine) Step(g *Grid) *Grid {
	var next *Grid
	if e.Pool != nil {
		next = e.Pool.Get(g.rows, g.columns)
	} else {
		next = NewGrid(g.rows, g.columns)
	}

	if e.Parallel {
		return g.nextGenerationParallel(next)
	}
	g.stepRows(next, 0, g.rows)
	return next
}

// Run builds the initial grid from cells and advances it iterations times.
// Zero iterations returns the initial grid.
func (e *Engine) Run(rows, columns int, cells []Coordinate, iterations int) (*Grid, error) {
	if iterations < 0 {
		return nil, errors.Wrapf(ErrInvalidIterationCount, "[Engine.Run] iterations: %d", iterations)
	}

	grid, err := FromSparse(rows, columns, cells, e.Policy)
	if err != nil {
		return nil, errors.Wrap(err, "[Engine.Run] failed to build initial grid")
	}

	for range iterations {
		next := e.Step(grid)
		GridToPool(grid, e.Pool)
		grid = next
	}
	return grid, nil
}

// Run is Engine.Run with the zero-value engine
func Run(rows, columns int, cells []Coordinate, iterations int) (*Grid, error) {
	var e Engine
	return e.Run(rows, columns, cells, iterations)
}
