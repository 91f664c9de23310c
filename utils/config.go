package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

// BoundsConfig is the JSON form of model.Bounds
type BoundsConfig struct {
	TopLeft     [2]int `json:"top_left"`
	BottomRight [2]int `json:"bottom_right"`
}

// Config holds the configuration for a run
type Config struct {
	LiveCells           [][2]int     `json:"live_cells"`
	Bounds              BoundsConfig `json:"bounds"`
	Generations         int          `json:"generations"`
	UseParallel         bool         `json:"use_parallel"`
	UseMemoryPool       bool         `json:"use_memory_pool"`
	StrictBounds        bool         `json:"strict_bounds"`
	StopWhenStagnant    bool         `json:"stop_when_stagnant"`
	StagnationThreshold int          `json:"stagnation_threshold"`
}

// DefaultConfig returns a blinker on a 4x4 board
func DefaultConfig() Config {
	return Config{
		LiveCells:           [][2]int{{0, 1}, {1, 1}, {2, 1}},
		Bounds:              BoundsConfig{TopLeft: [2]int{0, 0}, BottomRight: [2]int{3, 3}},
		Generations:         1,
		UseParallel:         false,
		UseMemoryPool:       true,
		StrictBounds:        false,
		StopWhenStagnant:    false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the config before any generation is computed
func (c Config) Validate() error {
	if err := c.ModelBounds().Validate(); err != nil {
		return errors.Wrap(err, "[Config.Validate] invalid bounds")
	}
	if c.Generations < 0 {
		return errors.Wrapf(model.ErrInvalidIterationCount, "[Config.Validate] generations: %d", c.Generations)
	}
	if c.StopWhenStagnant && c.StagnationThreshold <= 0 {
		return errors.Errorf("[Config.Validate] stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}

// ModelBounds converts the configured bounds
func (c Config) ModelBounds() model.Bounds {
	return model.Bounds{
		TopLeft:     model.Coordinate{Row: c.Bounds.TopLeft[0], Col: c.Bounds.TopLeft[1]},
		BottomRight: model.Coordinate{Row: c.Bounds.BottomRight[0], Col: c.Bounds.BottomRight[1]},
	}
}

// Cells converts the configured live cells
func (c Config) Cells() []model.Coordinate {
	return PairsToCoordinates(c.LiveCells)
}

// PairsToCoordinates converts [row, col] pairs to coordinates
func PairsToCoordinates(pairs [][2]int) []model.Coordinate {
	cells := make([]model.Coordinate, len(pairs))
	for i, p := range pairs {
		cells[i] = model.Coordinate{Row: p[0], Col: p[1]}
	}
	return cells
}

// CoordinatesToPairs converts coordinates to [row, col] pairs
func CoordinatesToPairs(cells []model.Coordinate) [][2]int {
	pairs := make([][2]int, len(cells))
	for i, c := range cells {
		pairs[i] = [2]int{c.Row, c.Col}
	}
	return pairs
}

// Engine builds the generation engine described by the config
func (c Config) Engine() *model.Engine {
	e := &model.Engine{Parallel: c.UseParallel}
	if c.UseMemoryPool {
		e.Pool = model.NewGridPool()
	}
	if c.StrictBounds {
		e.Policy = model.RejectOutOfBounds
	}
	return e
}
