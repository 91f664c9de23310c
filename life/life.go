// Package life computes generations of a bounded Game of Life from sparse
// lists of live cells.
package life

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

// Simulator runs generations with a configurable engine
type Simulator struct {
	engine *model.Engine
}

// Option configures a Simulator
type Option func(*model.Engine)

// WithParallel computes each generation with one worker per CPU
func WithParallel() Option {
	return func(e *model.Engine) { e.Parallel = true }
}

// WithPool recycles intermediate grids through pool
func WithPool(pool *model.GridPool) Option {
	return func(e *model.Engine) { e.Pool = pool }
}

// WithStrictBounds rejects live cells outside the bounds instead of dropping them
func WithStrictBounds() Option {
	return func(e *model.Engine) { e.Policy = model.RejectOutOfBounds }
}

// NewSimulator returns a simulator; with no options it steps sequentially and
// drops live cells that fall outside the bounds.
func NewSimulator(opts ...Option) *Simulator {
	e := &model.Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return &Simulator{engine: e}
}

// Grid runs iterations generations and returns the resulting board
func (s *Simulator) Grid(current []model.Coordinate, bounds model.Bounds, iterations int) (*model.Grid, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return s.engine.Run(bounds.Rows(), bounds.Columns(), current, iterations)
}

// NextGenerations returns the live cells after iterations generations, in row-major order
func (s *Simulator) NextGenerations(current []model.Coordinate, bounds model.Bounds, iterations int) ([]model.Coordinate, error) {
	grid, err := s.Grid(current, bounds, iterations)
	if err != nil {
		return nil, errors.Wrap(err, "[NextGenerations] failed to run")
	}
	return model.ToSparse(grid), nil
}

// NextGeneration returns the live cells one generation after current
func (s *Simulator) NextGeneration(current []model.Coordinate, bounds model.Bounds) ([]model.Coordinate, error) {
	return s.NextGenerations(current, bounds, 1)
}

var defaultSimulator = NewSimulator()

// NextGeneration returns the live cells one generation after current.
// Coordinates are grid-local: [0,0] is the top-left cell whatever bounds.TopLeft is,
// and cells outside the bounds are dropped.
func NextGeneration(current []model.Coordinate, bounds model.Bounds) ([]model.Coordinate, error) {
	return defaultSimulator.NextGeneration(current, bounds)
}

// NextGenerations is NextGeneration over iterations generations
func NextGenerations(current []model.Coordinate, bounds model.Bounds, iterations int) ([]model.Coordinate, error) {
	return defaultSimulator.NextGenerations(current, bounds, iterations)
}
