package arrays

import "golang.org/x/exp/constraints"

const panicNilMapFunc = "arrays: MapInPlace: f must not be nil"

// SquareInPlace replaces every element with its square, wrapping on overflow.
func SquareInPlace[T constraints.Integer](s []T) {
	for i := range s {
		s[i] *= s[i]
	}
}

// Increment adds one to every element, wrapping on overflow.
func Increment[T constraints.Integer](s []T) {
	for i := range s {
		s[i]++
	}
}

// MapInPlace replaces every element v with f(v), left to right.
// Panics if f is nil.
func MapInPlace[T any](s []T, f func(T) T) {
	if f == nil {
		panic(panicNilMapFunc)
	}
	for i := range s {
		s[i] = f(s[i])
	}
}

// PairSums returns p[0]+p[1] for every pair, in input order.
// The result is never nil.
func PairSums[T constraints.Integer](pairs [][2]T) []T {
	out := make([]T, len(pairs))
	for i, p := range pairs {
		out[i] = p[0] + p[1]
	}
	return out
}
