// Package grid provides a fixed-capacity 2-D character matrix with per-cell
// visited flags, flood-fill traversal, connected-component sizing, and
// pattern search.
//
// What:
//
//   - Grid owns a width×height byte matrix plus a parallel visited-flag array.
//   - Cell is a lightweight (x,y) coordinate handle; None is the canonical
//     invalid sentinel (-1,-1). A Cell never owns data.
//   - Walk performs a visited-guarded depth-first traversal with a post-order
//     callback, implemented with an explicit frame stack so recursion depth
//     never tracks component size.
//   - ConnArea sizes the maximal 4-connected region sharing the start cell's
//     tile. Next locates the first unvisited cell matching a pattern in
//     row-major order; Stat counts all matches regardless of visited state.
//   - Load/Write round-trip the matrix through its text form: height lines of
//     exactly width characters each. Debug emits a framed human-readable dump.
//
// Why:
//
//   - Puzzle & map analysis: count islands, lakes, and regions.
//   - Batch/judge programs: terse grid parsing plus deterministic traversal.
//   - Multi-component enumeration: alternate Next and Walk until Next
//     returns None.
//
// Complexity:
//
//   - Walk/ConnArea: O(A·4) time, O(A) stack memory     (A = reachable area).
//   - Next/Stat:     O(W×H) time, O(1) memory.
//   - Load/Write:    O(W×H) time.
//
// Determinism:
//
//   - Neighbors are enumerated in the fixed order +y, +x, −x, −y; Walk's
//     visitation and post-order callback traces are reproducible run to run.
//
// Errors:
//
//   - ErrDimensions: non-positive width or height.
//   - ErrCapacityExceeded: width×height beyond the grid's fixed capacity.
//   - ErrInvalidCoordinate: tile or flag access through an out-of-bounds Cell.
//   - ErrShortInput: Load exhausted its reader before filling the matrix.
//
// Not thread-safe: a Grid is shared mutable state. Give each concurrent task
// its own instance, or guard one behind an external lock.
package grid
