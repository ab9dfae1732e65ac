package seq

import "iter"

// Range returns a lazy sequence of the integers in the half-open interval
// [left, right), ascending by 1. When left >= right the sequence is empty.
// The right bound itself is never yielded.
//
// The returned sequence is restartable: ranging over it a second time
// replays the same values.
//
// Complexity: O(right−left) time, O(1) memory.
func Range(left, right int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := left; i < right; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// N returns Range(0, n): the integers 0, 1, …, n−1.
// Complexity: O(n).
func N(n int) iter.Seq[int] {
	return Range(0, n)
}

// Len reports how many values Range(left, right) yields: max(0, right−left).
// Complexity: O(1).
func Len(left, right int) int {
	if right <= left {
		return 0
	}

	return right - left
}
