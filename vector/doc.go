// Package vector provides Vector2, a generic two-component value type with
// component-wise arithmetic whose availability depends on the component type.
//
// 🚀 What is Vector2?
//
//	A pair (X, Y) of the same component type T. The type itself has no
//	constraint: any Vector2[T] can be built, compared and rendered. Arithmetic
//	lives in constrained generic functions, so the compiler decides which
//	operations exist for a given T:
//	  • Add / Sum      - T must be Additive (integers, floats, complex, strings)
//	  • Sub / Neg      - T must be Subtractive (integers, floats, complex)
//	  • Scale / Dot /
//	    Hadamard       - T must be a real Number (integers, floats)
//
// ✨ Key properties:
//   - value semantics: every operation returns a new Vector2, operands are never mutated
//   - Add and Sub are the single source of truth; Sum folds Add over its arguments
//   - Render / String produce "⟨x, y⟩" using each component's canonical fmt form
//   - Format renders with functional options (precision, delimiters, separator)
//   - Equal compares structurally via go-cmp and accepts cmp.Option values
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/drills/vector"
//
//	a := vector.New(10, 3)
//	b := vector.New(1, 2)
//
//	fmt.Println(vector.Add(a, b))      // ⟨11, 5⟩
//	fmt.Println(vector.Sub(a, b))      // ⟨9, 1⟩
//	fmt.Println(vector.Sum(a, b, b))   // ⟨12, 7⟩
//
//	f := vector.New(1.0/3, 2.0/3)
//	fmt.Println(vector.Format(f, vector.WithPrecision(2))) // ⟨0.33, 0.67⟩
//
// Go has no operator overloading, so "a + b" is spelled vector.Add(a, b).
// Neither operation can fail; there are no error values in this package.
package vector
