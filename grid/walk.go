package grid

// Cond judges whether Walk may step into a cell. It must be a stable
// predicate for the duration of one traversal pass: a cell rejected once is
// only reconsidered if reached again before being visited elsewhere.
type Cond func(Cell) bool

// Then is Walk's post-order callback: it fires on a cell only after all of
// the cell's traversal descendants have been fully processed.
type Then func(Cell)

// frame is one suspended traversal level: a visited cell plus the
// neighbors not yet explored from it.
type frame struct {
	cell Cell
	next []Cell
}

// Walk runs a depth-first, visited-guarded traversal from start.
//
// Behavior, matching a recursive formulation exactly:
//  1. An out-of-bounds start is a no-op.
//  2. An already-visited cell is skipped.
//  3. cond is evaluated before marking; a rejected cell stays unvisited and
//     remains reachable from elsewhere. A nil cond admits every cell.
//  4. Admitted cells are marked visited permanently until the next Refresh.
//  5. Neighbors are explored in the fixed order +y, +x, −x, −y, each
//     subtree fully before the next sibling is considered.
//  6. then fires post-order; a nil then is skipped.
//
// The traversal uses an explicit frame stack, so call-stack depth stays
// O(1) no matter how large the reachable component is.
//
// Complexity: O(A·4) time, O(A) memory, A = cells reached.
func (g *Grid) Walk(start Cell, cond Cond, then Then) {
	// 1. Gate the root exactly as a recursive call would
	if !g.InBounds(start) || g.visitedAt(start) {
		return
	}
	if cond != nil && !cond(start) {
		return
	}
	g.markVisited(start)

	// 2. Depth-first descent over explicit frames
	stack := []frame{{cell: start, next: g.Neighbors(start)}}
	var top *frame
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		if len(top.next) == 0 {
			// Subtree complete: fire post-order and pop
			if then != nil {
				then(top.cell)
			}
			stack = stack[:len(stack)-1]

			continue
		}
		n := top.next[0]
		top.next = top.next[1:]
		// Neighbors are pre-filtered to in-bounds; gate on visited and cond
		if g.visitedAt(n) {
			continue
		}
		if cond != nil && !cond(n) {
			continue
		}
		g.markVisited(n)
		stack = append(stack, frame{cell: n, next: g.Neighbors(n)})
	}
}

// ConnArea counts the cells of the maximal 4-connected region that shares
// start's current tile value, walking with cond = same-tile and counting in
// the post-order callback. Requires a Refresh beforehand for an accurate
// unvisited baseline; ConnArea does not refresh itself, so successive calls
// across distinct components within one pass do not recount cells.
// An out-of-bounds start returns 0.
//
// Complexity: O(A·4) time, O(A) memory.
func (g *Grid) ConnArea(start Cell) int {
	if !g.InBounds(start) {
		return 0
	}
	t := g.tileAt(start)
	area := 0
	g.Walk(start,
		func(c Cell) bool { return g.tileAt(c) == t },
		func(Cell) { area++ },
	)

	return area
}
