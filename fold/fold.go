// Package fold collects filter and fold helpers over plain slices, plus a few
// small queries built on top of them.
//
// Optional values are modelled as pointers: a nil *T is "none".
//
// Errors:
//
//	ErrEmptyInput - a query that needs at least one element got none.
package fold

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrEmptyInput indicates an operation that requires a non-empty input got none.
var ErrEmptyInput = errors.New("fold: empty input")

const opSmallestWord = "SmallestWord"

func foldErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Pair associates a key with a value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Filter returns the elements of s for which keep returns true, in order.
// The result is never nil.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Fold reduces s from left to right: f(...f(f(init, s[0]), s[1])..., s[n-1]).
func Fold[T, A any](s []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// SmallerThan keeps the elements strictly below limit.
func SmallerThan[T constraints.Ordered](limit T, s []T) []T {
	return Filter(s, func(v T) bool { return v < limit })
}

// ValuesFor returns the values of every pair whose key equals id, in order.
func ValuesFor[K comparable, V any](id K, pairs []Pair[K, V]) []V {
	return Fold(pairs, make([]V, 0), func(acc []V, p Pair[K, V]) []V {
		if p.Key == id {
			acc = append(acc, p.Value)
		}
		return acc
	})
}

// OnlySome drops nil entries and dereferences the rest.
func OnlySome[T any](s []*T) []T {
	return Fold(s, make([]T, 0, len(s)), func(acc []T, p *T) []T {
		if p != nil {
			acc = append(acc, *p)
		}
		return acc
	})
}

// FirstSome returns the first non-nil entry, or nil.
func FirstSome[T any](s []*T) *T {
	return Fold(s, (*T)(nil), func(acc, p *T) *T {
		if acc != nil {
			return acc
		}
		return p
	})
}

// SmallestWord returns the shortest word by byte length. On ties the earliest
// word wins. An empty input yields ErrEmptyInput.
func SmallestWord(words []string) (string, error) {
	if len(words) == 0 {
		return "", foldErrorf(opSmallestWord, ErrEmptyInput)
	}
	return Fold(words[1:], words[0], func(best, w string) string {
		if len(w) < len(best) {
			return w
		}
		return best
	}), nil
}

// AnySmaller reports whether some pair has both components below limit.
func AnySmaller[T constraints.Ordered](limit T, pairs [][2]T) bool {
	return Fold(pairs, false, func(found bool, p [2]T) bool {
		return found || (p[0] < limit && p[1] < limit)
	})
}
