package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
	"github.com/sheikhrachel/bounded-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON run configuration")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	if _, err := run(os.Stdout, config); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run advances the configured board, prints a status line per generation and
// the final live cells as JSON, and returns those cells
func run(w io.Writer, config utils.Config) ([]model.Coordinate, error) {
	engine, grid, stats, err := initializeRun(config)
	if err != nil {
		return nil, err
	}
	displayRunInfo(w, config, grid)

	var (
		history       model.History
		stagnantCount = 0
		lastFrameTime = time.Now()
	)
	history.Update(grid)

	for generation := 1; generation <= config.Generations; generation++ {
		frameStart := time.Now()

		next := engine.Step(grid)
		model.GridToPool(grid, engine.Pool)
		grid = next

		if history.IsStagnant(grid) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		history.Update(grid)

		livingCells, density, status := generationStatus(grid, stagnantCount > 0)
		stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart
		displayGenerationStatus(w, generation, livingCells, density, status, stats)

		if stop, reason := checkStopConditions(livingCells, stagnantCount, config); stop {
			fmt.Fprintf(w, "Stopping after generation %d due to %s\n", generation, reason)
			break
		}
	}

	live := model.ToSparse(grid)
	out, err := json.Marshal(utils.CoordinatesToPairs(live))
	if err != nil {
		return nil, errors.Wrap(err, "[run] failed to encode live cells")
	}
	fmt.Fprintf(w, "%s\n", out)
	return live, nil
}
