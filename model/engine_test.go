package model

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBoard(rows, columns int) []Coordinate {
	cells := make([]Coordinate, 0, rows*columns)
	for r := range rows {
		for c := range columns {
			cells = append(cells, Coordinate{r, c})
		}
	}
	return cells
}

func TestRunAllAliveDiesOut(t *testing.T) {
	g, err := Run(3, 3, fullBoard(3, 3), 3)
	require.NoError(t, err)
	assert.Equal(t, [][]CellState{{D, D, D}, {D, D, D}, {D, D, D}}, states(g))
}

func TestRunAllDeadStaysDead(t *testing.T) {
	for _, iterations := range []int{0, 1, 6} {
		g, err := Run(3, 3, nil, iterations)
		require.NoError(t, err)
		assert.Equal(t, 0, g.CountLivingCells(), "iterations=%d", iterations)
	}
}

func TestRunMixedBoard(t *testing.T) {
	live := []Coordinate{{2, 2}, {1, 0}, {3, 4}, {3, 3}, {3, 1}, {0, 0}, {2, 0}}
	g, err := Run(5, 5, live, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]CellState{
		{D, D, D, D, D},
		{D, D, D, D, D},
		{A, A, A, D, D},
		{A, A, D, D, D},
		{D, D, A, D, D},
	}, states(g))
}

func TestRunZeroIterations(t *testing.T) {
	live := []Coordinate{{0, 2}, {1, 1}, {3, 0}}
	initial, err := FromSparse(4, 3, live, ClipOutOfBounds)
	require.NoError(t, err)

	g, err := Run(4, 3, live, 0)
	require.NoError(t, err)
	assert.True(t, initial.Equal(g))
}

func TestRunErrors(t *testing.T) {
	_, err := Run(3, 3, nil, -1)
	assert.True(t, errors.Is(err, ErrInvalidIterationCount))

	_, err = Run(0, 3, nil, 1)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))

	e := Engine{Policy: RejectOutOfBounds}
	g, err := e.Run(3, 3, []Coordinate{{0, 1}, {0, 3}}, 1)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g, err := FromSparse(4, 4, []Coordinate{{0, 1}, {1, 1}, {2, 1}}, RejectOutOfBounds)
	require.NoError(t, err)
	before := g.Clone()

	next := Step(g)
	assert.True(t, before.Equal(g))
	assert.Equal(t, []Coordinate{{1, 0}, {1, 1}, {1, 2}}, ToSparse(next))
}

func TestBlinkerOscillation(t *testing.T) {
	g, err := FromSparse(5, 5, []Coordinate{{1, 2}, {2, 2}, {3, 2}}, RejectOutOfBounds)
	require.NoError(t, err)

	g = Step(g)
	assert.Equal(t, []Coordinate{{2, 1}, {2, 2}, {2, 3}}, ToSparse(g))

	g = Step(g)
	assert.Equal(t, []Coordinate{{1, 2}, {2, 2}, {3, 2}}, ToSparse(g))
}

func TestGliderOnBoundedBoard(t *testing.T) {
	glider := []Coordinate{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	g, err := Run(6, 6, glider, 4)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}, ToSparse(g))
}

func TestEngineVariantsAgree(t *testing.T) {
	live := []Coordinate{
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
		{7, 7}, {7, 8}, {8, 7}, {8, 8},
		{12, 3}, {12, 4}, {12, 5},
		{15, 15}, {14, 15}, {15, 14}, {3, 12},
	}
	want, err := Run(17, 19, live, 12)
	require.NoError(t, err)

	engines := map[string]*Engine{
		"parallel":        {Parallel: true},
		"pooled":          {Pool: NewGridPool()},
		"parallel pooled": {Parallel: true, Pool: NewGridPool()},
	}
	for name, e := range engines {
		t.Run(name, func(t *testing.T) {
			got, err := e.Run(17, 19, live, 12)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "expected %v, got %v", ToSparse(want), ToSparse(got))
		})
	}

	g, err := FromSparse(17, 19, live, RejectOutOfBounds)
	require.NoError(t, err)
	assert.True(t, Step(g).Equal(StepParallel(g)))
}

func TestRunDeterministic(t *testing.T) {
	live := []Coordinate{{0, 0}, {0, 1}, {1, 1}, {2, 3}, {3, 3}, {3, 2}}
	first, err := Run(5, 6, live, 7)
	require.NoError(t, err)
	for range 5 {
		again, err := Run(5, 6, live, 7)
		require.NoError(t, err)
		assert.Equal(t, ToSparse(first), ToSparse(again))
	}
}

func TestHistory(t *testing.T) {
	var h History
	block, err := FromSparse(4, 4, []Coordinate{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, RejectOutOfBounds)
	require.NoError(t, err)

	for range 3 {
		assert.False(t, h.IsStagnant(block))
		h.Update(block)
	}
	assert.True(t, h.IsStagnant(Step(block)))

	h.Reset()
	assert.False(t, h.IsStagnant(block))

	blinker, err := FromSparse(5, 5, []Coordinate{{1, 2}, {2, 2}, {3, 2}}, RejectOutOfBounds)
	require.NoError(t, err)
	h.Update(blinker)
	g := Step(blinker)
	h.Update(g)
	g = Step(g)
	h.Update(g)
	assert.True(t, h.IsStagnant(Step(g)))

	glider, err := FromSparse(10, 10, []Coordinate{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}, RejectOutOfBounds)
	require.NoError(t, err)
	h.Reset()
	g = glider
	for range 4 {
		h.Update(g)
		g = Step(g)
	}
	assert.False(t, h.IsStagnant(g))
}

func BenchmarkStep(b *testing.B) {
	for _, size := range []int{64, 256} {
		g, err := FromSparse(size, size, fullBoard(size/2, size/3), ClipOutOfBounds)
		require.NoError(b, err)
		for name, step := range map[string]func(*Grid) *Grid{"sequential": Step, "parallel": StepParallel} {
			b.Run(fmt.Sprintf("%dx%d-%s", size, size, name), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					step(g)
				}
			})
		}
	}
}
