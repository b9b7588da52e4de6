package arrays_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/arrays"
)

// TestProduct covers the empty identity, single values and wrapping.
func TestProduct(t *testing.T) {
	assert.Equal(t, uint32(1), arrays.Product([]uint32{}))
	assert.Equal(t, uint32(1), arrays.Product[uint32](nil))
	assert.Equal(t, uint32(5), arrays.Product([]uint32{5}))
	assert.Equal(t, uint32(24), arrays.Product([]uint32{2, 3, 4}))
	assert.Equal(t, -24, arrays.Product([]int{-2, 3, 4}))

	// MaxUint32 * 2 wraps to MaxUint32 - 1.
	assert.NotPanics(t, func() {
		assert.Equal(t, uint32(math.MaxUint32-1), arrays.Product([]uint32{math.MaxUint32, 2}))
	})
}

// TestTotal covers sums including the empty slice.
func TestTotal(t *testing.T) {
	assert.Equal(t, uint32(10), arrays.Total([]uint32{1, 2, 3, 4}))
	assert.Equal(t, uint32(0), arrays.Total([]uint32{}))
	assert.Equal(t, uint8(4), arrays.Total([]uint8{255, 5}), "wraps")
}

// TestAllDistinct covers duplicates and the empty slice.
func TestAllDistinct(t *testing.T) {
	assert.True(t, arrays.AllDistinct([]uint32{}))
	assert.True(t, arrays.AllDistinct([]uint32{1, 2, 3, 4}))
	assert.False(t, arrays.AllDistinct([]uint32{1, 2, 1}))
	assert.False(t, arrays.AllDistinct([]uint32{0, 0}), "zeros count as duplicates here")
	assert.True(t, arrays.AllDistinct([]string{"a", "b"}))
}

// TestAllDistinctExceptZero ignores any number of zeros.
func TestAllDistinctExceptZero(t *testing.T) {
	tests := []struct {
		name string
		in   []uint32
		want bool
	}{
		{"empty", nil, true},
		{"only zeros", []uint32{0, 0, 0}, true},
		{"zeros between distinct", []uint32{0, 1, 0, 2, 3}, true},
		{"duplicate non-zero", []uint32{0, 1, 2, 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, arrays.AllDistinctExceptZero(tc.in))
		})
	}
}

// TestDot_EqualLengths covers the well-formed path.
func TestDot_EqualLengths(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint32
		want uint32
	}{
		{"empty", []uint32{}, []uint32{}, 0},
		{"three", []uint32{1, 2, 3}, []uint32{4, 5, 6}, 32},
		{"single", []uint32{10}, []uint32{20}, 200},
		{"wraps", []uint32{math.MaxUint32, 1}, []uint32{2, 3}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := arrays.Dot(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestDot_LengthMismatch checks the default error and the opt-in zero policy.
func TestDot_LengthMismatch(t *testing.T) {
	got, err := arrays.Dot([]uint32{1, 2}, []uint32{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrays.ErrLengthMismatch))
	assert.Contains(t, err.Error(), "Dot")
	assert.Equal(t, uint32(0), got)

	got, err = arrays.Dot([]uint32{1, 2}, []uint32{1}, arrays.WithZeroOnMismatch())
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got)

	_, err = arrays.Dot([]uint32{1, 2}, []uint32{1}, arrays.WithZeroOnMismatch(), arrays.WithErrorOnMismatch())
	assert.ErrorIs(t, err, arrays.ErrLengthMismatch, "last option wins")
}

// TestCount counts rune occurrences.
func TestCount(t *testing.T) {
	a := []rune{'a', 'b', 'a', 'c', 'a'}
	assert.Equal(t, 3, arrays.Count('a', a))
	assert.Equal(t, 1, arrays.Count('b', a))
	assert.Equal(t, 0, arrays.Count('z', a))
	assert.Equal(t, 0, arrays.Count('x', []rune{}))
}

// TestCountBools splits a boolean slice into its two counts.
func TestCountBools(t *testing.T) {
	tests := []struct {
		name          string
		in            []bool
		trues, falses int
	}{
		{"mixed", []bool{true, false, true, true, false}, 3, 2},
		{"all true", []bool{true, true, true, true, true}, 5, 0},
		{"all false", []bool{false, false, false, false}, 0, 4},
		{"empty", nil, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, fa := arrays.CountBools(tc.in)
			assert.Equal(t, tc.trues, tr)
			assert.Equal(t, tc.falses, fa)
		})
	}
}
