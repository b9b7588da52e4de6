package vector

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// Additive is satisfied by component types that support the + operator.
type Additive interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Subtractive is satisfied by component types that support the - operator.
type Subtractive interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Number is satisfied by real numeric component types (integers and floats).
// It gates multiplicative helpers such as Scale, Dot and Hadamard.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector2 is a two-component value of type T.
//
// Vector2 is immutable by operation: functions in this package take vectors
// by value and return fresh results. Assigning to X or Y on a local copy is
// allowed and never affects other copies.
type Vector2[T any] struct {
	X T
	Y T
}

// New builds a Vector2 from its two components. No validation is performed.
func New[T any](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Zero returns the vector whose components are T's zero value.
// For Additive types this is the identity of Add.
func Zero[T any]() Vector2[T] {
	return Vector2[T]{}
}

// Components returns X and Y.
func (v Vector2[T]) Components() (T, T) {
	return v.X, v.Y
}

// Equal reports whether v and o have equal components.
//
// The comparison is structural (go-cmp), so it also works when T is not
// comparable with ==, e.g. slices or maps. Options are forwarded to
// cmp.Equal, which makes approximate float comparison possible:
//
//	v.Equal(o, cmpopts.EquateApprox(0, 1e-9))
//
// cmp.Equal panics if T holds unexported fields and no option handles them.
func (v Vector2[T]) Equal(o Vector2[T], opts ...cmp.Option) bool {
	return cmp.Equal(v, o, opts...)
}
