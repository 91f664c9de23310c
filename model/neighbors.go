package model

// neighborOffsets lists the eight relative positions in the order neighbours are reported.
var neighborOffsets = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborsOf returns the in-bounds neighbours of cell on a rows x columns grid.
// Corner cells have 3 neighbours, other edge cells 5 and interior cells 8.
func NeighborsOf(rows, columns int, cell Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Coordinate{Row: cell.Row + off.Row, Col: cell.Col + off.Col}
		if inBounds(rows, columns, n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CountAliveNeighbors counts living cells among the neighbours of c
func (g *Grid) CountAliveNeighbors(c Coordinate) (count int) {
	for _, n := range NeighborsOf(g.rows, g.columns, c) {
		if g.cells[n.Row][n.Col] == Alive {
			count++
		}
	}
	return
}
