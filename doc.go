// Package drills is a set of small, independent numeric exercises built
// around a generic 2D vector.
//
// 🚀 What is in drills?
//
//	Pure, stateless helpers with no shared pipeline:
//		• vector  - generic Vector2[T]: render, add, sub, sum, scale, dot
//		• arrays  - products, distinctness, dot products, in-place maps
//		• fold    - filter / fold over slices and optional values
//		• coins   - coin valuation and denomination breakdown
//
// ✨ Why generic?
//
//   - One Vector2 definition serves integer and floating-point coordinates.
//   - Arithmetic is available only when the component type supports it:
//     vector.Sub on a Vector2[string] does not compile.
//   - Every operation returns a new value; nothing is mutated behind your back.
//
// Quick example:
//
//	a := vector.New(10, 3)
//	b := vector.New(1, 2)
//	fmt.Println(vector.Add(a, b)) // ⟨11, 5⟩
//
// The cmd/drills binary runs a short demo of each package:
//
//	go run ./cmd/drills -demo all -log-level debug
package drills
