package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
	"github.com/sheikhrachel/bounded-life/utils"
)

// initializeRun builds the engine and generation 0 from the config
func initializeRun(config utils.Config) (*model.Engine, *model.Grid, *utils.Stats, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, nil, err
	}

	engine := config.Engine()
	bounds := config.ModelBounds()
	grid, err := engine.Run(bounds.Rows(), bounds.Columns(), config.Cells(), 0)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeRun] failed to build initial grid")
	}

	return engine, grid, utils.NewStats(), nil
}

// displayRunInfo shows the run settings
func displayRunInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(w, "Features: Memory Pool: %v, Parallel: %v, Strict bounds: %v\n",
		config.UseMemoryPool, config.UseParallel, config.StrictBounds)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d | Generations: %d\n",
		grid.Rows(), grid.Columns(), grid.CountLivingCells(), config.Generations)
}

// generationStatus returns living cells, density and a status label for grid
func generationStatus(grid *model.Grid, stagnant bool) (int, float64, string) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Rows()*grid.Columns()) * 100

	status := "Active"
	if stagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return livingCells, density, status
}

// displayGenerationStatus shows the status line of one generation
func displayGenerationStatus(w io.Writer, generation, livingCells int, density float64, status string, stats *utils.Stats) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Avg Pop: %.1f\n",
		generation, livingCells, density, status, stats.AveragePopulation)
}

// checkStopConditions determines if the run should end before the last generation
func checkStopConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if !config.StopWhenStagnant {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
