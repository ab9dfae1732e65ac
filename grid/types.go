// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/lazuli.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = errors.New("grid: width and height must be positive")
	// ErrCapacityExceeded indicates requested dimensions beyond the fixed capacity.
	ErrCapacityExceeded = errors.New("grid: dimensions exceed grid capacity")
	// ErrInvalidCoordinate indicates cell access through an out-of-bounds coordinate.
	ErrInvalidCoordinate = errors.New("grid: coordinate out of bounds")
	// ErrShortInput indicates Load ran out of input before the matrix was full.
	ErrShortInput = errors.New("grid: input ended before matrix was filled")
)

// Cell is a coordinate handle into a Grid: a plain (x,y) pair, not an owner
// of any data. The zero Cell addresses the top-left corner; None is the
// canonical invalid sentinel.
type Cell struct {
	X, Y int
}

// None is the always-invalid sentinel cell, returned by searches that find
// nothing. It fails InBounds on every grid.
var None = Cell{X: -1, Y: -1}

// Dx returns a new handle translated by d along the x axis.
// No bounds clamping: check Grid.InBounds on the result before use.
// Complexity: O(1).
func (c Cell) Dx(d int) Cell {
	return Cell{X: c.X + d, Y: c.Y}
}

// Dy returns a new handle translated by d along the y axis.
// No bounds clamping: check Grid.InBounds on the result before use.
// Complexity: O(1).
func (c Cell) Dy(d int) Cell {
	return Cell{X: c.X, Y: c.Y + d}
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Option configures optional Grid construction behavior.
// Use with New(width, height, opts...).
type Option func(*gridOptions)

// gridOptions holds configurable construction parameters.
type gridOptions struct {
	// capacity is the backing-store size in cells; 0 means width×height.
	capacity int
}

// WithCapacity returns an Option that pre-allocates backing storage for the
// given number of cells, allowing later Resize calls to grow the logical
// dimensions without reallocation. New rejects capacities below its
// width×height with ErrCapacityExceeded.
func WithCapacity(cells int) Option {
	return func(o *gridOptions) {
		o.capacity = cells
	}
}
