// Package seq defines sentinel errors shared by the sequence generators.
package seq

import "errors"

// Sentinel errors for seq operations.
var (
	// ErrInvalidBase indicates a numeric base below 2.
	ErrInvalidBase = errors.New("seq: base must be at least 2")
	// ErrNegativeNumber indicates a negative number where a non-negative one is required.
	ErrNegativeNumber = errors.New("seq: number must be non-negative")
	// ErrDigitRange indicates a digit outside [0, base).
	ErrDigitRange = errors.New("seq: digit out of range for base")
)
