package vector

// Add returns the component-wise sum (a.X+b.X, a.Y+b.Y).
// Neither operand is modified.
//
// Add is the only place where vector addition is defined; Sum and every
// other additive helper delegate here.
func Add[T Additive](a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the component-wise difference (a.X-b.X, a.Y-b.Y).
// Neither operand is modified.
func Sub[T Subtractive](a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Sum folds Add over vs from left to right, starting at Zero.
// Sum() is the zero vector and Sum(a, b) equals Add(a, b).
func Sum[T Additive](vs ...Vector2[T]) Vector2[T] {
	acc := Zero[T]()
	for _, v := range vs {
		acc = Add(acc, v)
	}
	return acc
}

// Neg returns (-v.X, -v.Y), computed as Zero minus v.
// Unsigned components wrap around.
func Neg[T Subtractive](v Vector2[T]) Vector2[T] {
	return Sub(Zero[T](), v)
}

// Scale multiplies both components by s.
func Scale[T Number](s T, v Vector2[T]) Vector2[T] {
	return Vector2[T]{X: s * v.X, Y: s * v.Y}
}

// Dot returns a.X*b.X + a.Y*b.Y.
func Dot[T Number](a, b Vector2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Hadamard returns the element-wise product (a.X*b.X, a.Y*b.Y).
func Hadamard[T Number](a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{X: a.X * b.X, Y: a.Y * b.Y}
}
