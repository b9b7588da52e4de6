package arrays

import "golang.org/x/exp/constraints"

// Product returns the product of all elements, wrapping on overflow.
// The product of an empty slice is 1.
func Product[T constraints.Integer](s []T) T {
	var acc T = 1
	for _, v := range s {
		acc *= v
	}
	return acc
}

// Total returns the sum of all elements, wrapping on overflow.
// The total of an empty slice is 0.
func Total[T constraints.Integer](s []T) T {
	var acc T
	for _, v := range s {
		acc += v
	}
	return acc
}

// AllDistinct reports whether no value occurs twice in s.
// An empty slice is distinct.
func AllDistinct[T comparable](s []T) bool {
	seen := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// AllDistinctExceptZero is AllDistinct with zero values ignored: any number
// of zeros may appear, every other value at most once.
func AllDistinctExceptZero[T comparable](s []T) bool {
	var zero T
	seen := make(map[T]struct{})
	for _, v := range s {
		if v == zero {
			continue
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Dot returns Σ a[i]*b[i], wrapping on overflow. Empty inputs yield 0.
//
// Errors:
//   - ErrLengthMismatch (wrapped) if len(a) != len(b), unless
//     WithZeroOnMismatch is given, in which case the result is (0, nil).
func Dot[T constraints.Integer](a, b []T, opts ...Option) (T, error) {
	if len(a) != len(b) {
		if gatherOptions(opts...).zeroOnMismatch {
			return 0, nil
		}
		return 0, arraysErrorf(opDot, ErrLengthMismatch)
	}

	var acc T
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc, nil
}

// Count returns how many elements of s equal x.
func Count[T comparable](x T, s []T) int {
	n := 0
	for _, v := range s {
		if v == x {
			n++
		}
	}
	return n
}

// CountBools returns the number of true and false values in s.
func CountBools(s []bool) (trues, falses int) {
	for _, b := range s {
		if b {
			trues++
		} else {
			falses++
		}
	}
	return trues, falses
}
