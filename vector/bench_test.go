package vector_test

import (
	"testing"

	"github.com/katalvlaran/drills/vector"
)

var (
	sinkVec vector.Vector2[float64]
	sinkStr string
)

// BenchmarkAdd measures the value-semantics add path.
func BenchmarkAdd(b *testing.B) {
	a, c := vector.New(1.5, -2.0), vector.New(0.5, 10.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec = vector.Add(a, c)
	}
}

// BenchmarkSum folds a 64-element path.
func BenchmarkSum(b *testing.B) {
	path := make([]vector.Vector2[float64], 64)
	for i := range path {
		path[i] = vector.New(float64(i), float64(-i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec = vector.Sum(path...)
	}
}

// BenchmarkRender measures the default formatting path.
func BenchmarkRender(b *testing.B) {
	v := vector.New(1.25, -7.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkStr = v.Render()
	}
}
