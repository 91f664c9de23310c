package rules

// Outcome is the kind of transition a cell undergoes for a given neighbour count.
type Outcome int

const (
	// Unchanged keeps the current state of the cell.
	Unchanged Outcome = iota
	// ForcedAlive sets the cell alive whatever its current state.
	ForcedAlive
	// ForcedDead kills the cell whatever its current state.
	ForcedDead
)

func (o Outcome) String() string {
	switch o {
	case ForcedAlive:
		return "forced-alive"
	case ForcedDead:
		return "forced-dead"
	default:
		return "unchanged"
	}
}

/*
Classify decides which transition applies for the given count of alive neighbours.

	neighbors == 3            -> ForcedAlive
	neighbors < 2 || > 3      -> ForcedDead
	neighbors == 2            -> Unchanged

A dead cell with two neighbours stays dead and a live one stays alive; three
neighbours always yield a live cell.
*/
func Classify(neighbors int) Outcome {
	switch {
	case neighbors == 3:
		return ForcedAlive
	case neighbors < 2 || neighbors > 3:
		return ForcedDead
	default:
		return Unchanged
	}
}

// ApplyConwayRules returns whether a cell is alive in the next generation.
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch Classify(neighbors) {
	case ForcedAlive:
		return true
	case ForcedDead:
		return false
	default:
		return alive
	}
}
