package model

// historySize is how many recent generations are remembered for cycle detection
const historySize = 5

// History remembers hashes of recent generations to spot still lifes and
// short oscillators.
type History struct {
	hashes []string
}

// Update adds g to the history, keeping only the most recent entries
func (h *History) Update(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded
// generations, i.e. it is static or cycles with period 2 or 3.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
