// Package seq provides lazy integer-sequence generators: half-open ranges,
// base-N digit decomposition, and permutation enumeration.
//
// What:
//
//   - Range(left, right) yields the integers of [left, right) in ascending order.
//   - BaseN decomposes a non-negative integer into base-N digits,
//     least-significant digit first.
//   - Permut enumerates all n! arrangements of a fixed element slice in
//     lexicographic-successor order over the index sequence 0..n-1.
//   - Factorial(n) computes n! on the host int width.
//
// Why:
//
//   - Loop scaffolding: `for i := range seq.Range(0, n)`-style iteration.
//   - Digit tricks: digit sums, base conversions, radix DP states.
//   - Brute force: exhaustive arrangement search over small element sets.
//
// Complexity:
//
//   - Range:  O(right−left) time, O(1) memory.
//   - BaseN:  O(log_base(num)) time, O(1) memory (lazy) or O(digits) (eager).
//   - Permut: O(n!·n) time total, O(n) working memory; each yielded
//     arrangement is an owned snapshot, safe to retain.
//
// Errors:
//
//   - ErrInvalidBase: BaseN constructed with base < 2.
//   - ErrNegativeNumber: BaseN constructed with num < 0.
//   - ErrDigitRange: FromDigits given a digit outside [0, base).
//
// All sequences are iter.Seq values: range over them directly, and break
// early without cost. A Range or BaseN sequence may be ranged repeatedly;
// each pass restarts from the beginning.
package seq
