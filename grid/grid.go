package grid

// Grid is a width×height character matrix with a parallel visited-flag
// array, both backed by fixed storage allocated at construction.
// Tiles and flags are indexed row-major: y*width + x.
//
// A Grid is shared mutable state for every Cell handle pointing into it;
// it is not safe for concurrent use.
type Grid struct {
	width, height int
	capacity      int // backing-store size in cells, fixed after New
	tiles         []byte
	visited       []bool
}

// New constructs a Grid with the given logical dimensions.
// Returns ErrDimensions for non-positive width or height, and
// ErrCapacityExceeded when WithCapacity reserves less than width×height
// (an explicit capacity below the initial dimensions is rejected rather
// than silently widened).
//
// Complexity: O(capacity) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrDimensions
	}
	o := gridOptions{}
	for _, fn := range opts {
		fn(&o)
	}
	capacity := width * height
	if o.capacity > capacity {
		capacity = o.capacity
	} else if o.capacity != 0 && o.capacity < width*height {
		return nil, ErrCapacityExceeded
	}

	return &Grid{
		width:    width,
		height:   height,
		capacity: capacity,
		tiles:    make([]byte, capacity),
		visited:  make([]bool, capacity),
	}, nil
}

// Width returns the current logical width.
func (g *Grid) Width() int { return g.width }

// Height returns the current logical height.
func (g *Grid) Height() int { return g.height }

// Capacity returns the fixed backing-store size in cells.
func (g *Grid) Capacity() int { return g.capacity }

// Resize changes the logical bounds used by all subsequent validity checks.
// Tile contents and visited flags are left untouched; their row-major
// interpretation shifts with the new width, so callers normally Load fresh
// contents afterwards. The backing storage is never reallocated:
// ErrCapacityExceeded is returned when width×height exceeds Capacity.
//
// Complexity: O(1).
func (g *Grid) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrDimensions
	}
	if width*height > g.capacity {
		return ErrCapacityExceeded
	}
	g.width = width
	g.height = height

	return nil
}

// InBounds reports whether c lies within the grid's logical bounds.
// None fails this check on every grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to its row-major position: y*width + x.
// Callers must have bounds-checked c already.
func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// Tile returns the character stored at c.
// Returns ErrInvalidCoordinate for out-of-bounds handles; an invalid
// coordinate is never dereferenced.
// Complexity: O(1).
func (g *Grid) Tile(c Cell) (byte, error) {
	if !g.InBounds(c) {
		return 0, ErrInvalidCoordinate
	}

	return g.tiles[g.index(c)], nil
}

// SetTile stores t at c.
// Returns ErrInvalidCoordinate for out-of-bounds handles.
// Complexity: O(1).
func (g *Grid) SetTile(c Cell, t byte) error {
	if !g.InBounds(c) {
		return ErrInvalidCoordinate
	}
	g.tiles[g.index(c)] = t

	return nil
}

// Visited reports whether c has been visited since the last Refresh.
// Returns ErrInvalidCoordinate for out-of-bounds handles.
// Complexity: O(1).
func (g *Grid) Visited(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return false, ErrInvalidCoordinate
	}

	return g.visited[g.index(c)], nil
}

// tileAt reads the tile without a bounds check; for internal use on
// handles already known to be in bounds.
func (g *Grid) tileAt(c Cell) byte {
	return g.tiles[g.index(c)]
}

// visitedAt reads the flag without a bounds check.
func (g *Grid) visitedAt(c Cell) bool {
	return g.visited[g.index(c)]
}

// markVisited sets the flag without a bounds check.
func (g *Grid) markVisited(c Cell) {
	g.visited[g.index(c)] = true
}

// Refresh clears every visited flag, restoring the unvisited baseline for a
// fresh traversal pass. Tile contents are untouched. Idempotent.
// Complexity: O(capacity).
func (g *Grid) Refresh() {
	clear(g.visited)
}

// Neighbors returns the orthogonally adjacent handles of c in the fixed
// order +y, +x, −x, −y, filtered to those in bounds. Grid edges are
// silently omitted, never returned as sentinels.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	res := make([]Cell, 0, 4)
	for _, n := range [4]Cell{c.Dy(1), c.Dx(1), c.Dx(-1), c.Dy(-1)} {
		if g.InBounds(n) {
			res = append(res, n)
		}
	}

	return res
}
