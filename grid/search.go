package grid

// Next scans the matrix in row-major order (rows top to bottom, columns
// left to right) and returns the first cell whose tile equals pat and whose
// visited flag is clear. Returns None when every matching cell has been
// visited or no cell matches.
//
// Alternating Next and Walk enumerates components one by one: walk the
// component found, call Next again, stop at None.
//
// Complexity: O(W×H).
func (g *Grid) Next(pat byte) Cell {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if g.tileAt(c) == pat && !g.visitedAt(c) {
				return c
			}
		}
	}

	return None
}

// Stat counts every cell whose tile equals pat, regardless of visited state.
// Complexity: O(W×H).
func (g *Grid) Stat(pat byte) int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tileAt(Cell{X: x, Y: y}) == pat {
				count++
			}
		}
	}

	return count
}
