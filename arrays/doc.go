// Package arrays holds small statistics and in-place transforms over integer
// slices: products, distinctness checks, dot products, occurrence counts and
// element-wise maps.
//
// Integer arithmetic follows Go semantics and wraps on overflow, so Product,
// Dot and SquareInPlace never panic on large inputs.
//
// Errors:
//
//	ErrLengthMismatch - Dot was given slices of different lengths.
//
// Dot reports a length mismatch as an error by default. The older convention
// of returning 0 is available only on request via WithZeroOnMismatch, since a
// zero result is otherwise indistinguishable from a legitimate zero product.
package arrays
