package seq

import "iter"

// BaseN decomposes a non-negative integer into its base-N digits.
// It is immutable once built; All may be ranged repeatedly.
//
// Digits come out least-significant first: the last written digit is the
// first yielded. Callers wanting conventional left-to-right order must
// reverse the produced sequence themselves.
type BaseN struct {
	base int
	num  int
}

// NewBaseN constructs a BaseN decomposer for num in the given base.
// Returns ErrInvalidBase when base < 2 and ErrNegativeNumber when num < 0.
// Complexity: O(1).
func NewBaseN(base, num int) (*BaseN, error) {
	if base < 2 {
		return nil, ErrInvalidBase
	}
	if num < 0 {
		return nil, ErrNegativeNumber
	}

	return &BaseN{base: base, num: num}, nil
}

// Base returns the decomposition base.
func (b *BaseN) Base() int { return b.base }

// Num returns the number being decomposed.
func (b *BaseN) Num() int { return b.num }

// All returns the lazy digit sequence, least-significant digit first.
// Zero yields exactly one digit (0); every other num yields
// floor(log_base(num))+1 digits.
//
// Complexity: O(log_base(num)) time, O(1) memory.
func (b *BaseN) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		curr := b.num
		for {
			if !yield(curr % b.base) {
				return
			}
			curr /= b.base
			if curr == 0 {
				return
			}
		}
	}
}

// Digits materializes the digit sequence eagerly, in the same
// least-significant-first order as All.
// Complexity: O(log_base(num)) time and memory.
func (b *BaseN) Digits() []int {
	res := make([]int, 0, 8)
	for d := range b.All() {
		res = append(res, d)
	}

	return res
}

// FromDigits reassembles an integer from base-N digits given
// least-significant first, i.e. the order produced by BaseN.
// Returns ErrInvalidBase when base < 2 and ErrDigitRange when any digit
// falls outside [0, base). An empty digit slice reassembles to 0.
//
// Complexity: O(len(digits)).
func FromDigits(base int, digits []int) (int, error) {
	if base < 2 {
		return 0, ErrInvalidBase
	}
	num := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d < 0 || d >= base {
			return 0, ErrDigitRange
		}
		num = num*base + d
	}

	return num, nil
}
