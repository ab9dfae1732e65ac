package seq

import "iter"

// Permut enumerates arrangements of a fixed element slice. Enumeration is
// index-based: it steps the index sequence 0..n−1 through its lexicographic
// successors, so duplicate-valued elements yield duplicate-valued
// arrangements rather than a deduplicated set.
//
// Permut is immutable once built; each call to All starts a fresh
// enumeration with its own working state.
type Permut[T any] struct {
	elements []T
}

// NewPermut constructs a Permut over a copy of elements, so later mutation
// of the caller's slice does not affect enumeration.
// Complexity: O(n).
func NewPermut[T any](elements []T) *Permut[T] {
	el := make([]T, len(elements))
	copy(el, elements)

	return &Permut[T]{elements: el}
}

// Count reports how many arrangements All yields: len(elements)!.
// Overflow past the host int width is unchecked; 21! already exceeds int64.
// Complexity: O(n).
func (p *Permut[T]) Count() int {
	return Factorial(len(p.elements))
}

// All returns the lazy arrangement sequence. The first arrangement is the
// identity order of the stored elements; each subsequent one corresponds to
// the next lexicographically greater index permutation. Exactly n!
// arrangements are yielded, one (empty) arrangement for n == 0.
//
// Every yielded slice is an owned snapshot: callers may retain or mutate it
// without affecting later arrangements.
//
// Complexity: O(n!·n) time total, O(n) working memory.
func (p *Permut[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(p.elements)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		for {
			buf := make([]T, n)
			for i, j := range idx {
				buf[i] = p.elements[j]
			}
			if !yield(buf) {
				return
			}
			if !nextPermutation(idx) {
				return
			}
		}
	}
}

// nextPermutation advances idx to its next lexicographically greater
// permutation in place, returning false when idx is already the greatest
// (fully non-increasing) arrangement.
//
// Standard successor step:
//  1. Find the pivot: the last i with idx[i] < idx[i+1].
//  2. Swap the pivot with the smallest suffix element greater than it.
//  3. Reverse the suffix to make it ascending.
//
// Complexity: O(n) worst case, amortized O(1) over a full enumeration.
func nextPermutation(idx []int) bool {
	// 1. Pivot search
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// 2. Successor swap
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	// 3. Suffix reversal
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}

	return true
}

// Factorial computes n! iteratively on the host int width.
// Negative n and overflow are unchecked contract preconditions.
// Complexity: O(n).
func Factorial(n int) int {
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}

	return res
}
