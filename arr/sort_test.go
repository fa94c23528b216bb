package arr_test

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-seqops/arr"
)

// ─── Aggregation ──────────────────────────────────────────────────────────────

func TestMin(t *testing.T) {
	assert.Equal(t, 1.0, arr.Min([]float64{3, 1, 2}))
	assert.Equal(t, 0.0, arr.Min([]float64{1, 3, 0}))
	assert.True(t, math.IsInf(float64(arr.Min([]float64{})), 1), "Min of empty should be +Inf")
	assert.Equal(t, float32(-2), arr.Min([]float32{4, -2, 9}))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 3.0, arr.Max([]float64{3, 1, 2}))
	assert.Equal(t, 9.0, arr.Max([]float64{3, 1, 9}))
	assert.True(t, math.IsInf(arr.Max[float64](nil), -1), "Max of empty should be -Inf")
}

func TestMinOfMaxOf(t *testing.T) {
	assert.Equal(t, 1, arr.MinOf([]int{3, 1, 2}).OrElse(-1))
	assert.Equal(t, 3, arr.MaxOf([]int{3, 1, 2}).OrElse(-1))
	assert.Equal(t, "apple", arr.MinOf([]string{"pear", "apple", "plum"}).OrElse(""))
	assert.True(t, arr.MinOf([]int{}).IsAbsent())
	assert.True(t, arr.MaxOf([]int{}).IsAbsent())
}

// ─── Sorting ──────────────────────────────────────────────────────────────────

func TestQuicksort(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"unsorted", []int{5, 2, 4, 3, 1}, []int{1, 2, 3, 4, 5}},
		{"empty", []int{}, []int{}},
		{"single", []int{1}, []int{1}},
		{"duplicates", []int{3, 1, 3, 2, 1}, []int{1, 1, 2, 3, 3}},
		{"sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"descending", []int{3, 2, 1}, []int{1, 2, 3}},
		{"negative", []int{0, -5, 5}, []int{-5, 0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slices.Clone(tt.in)
			assert.Equal(t, tt.want, arr.Quicksort(tt.in))
			assert.Equal(t, orig, tt.in, "Quicksort must not modify its input")
		})
	}
}

func TestQuicksortStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, arr.Quicksort([]string{"c", "a", "b"}))
}

func TestQuicksortDropsTrailingNaN(t *testing.T) {
	got := arr.Quicksort([]float64{2, math.NaN(), 1})
	assert.Equal(t, []float64{1, 2}, got)
}

func TestQuicksortLongSortedInput(t *testing.T) {
	// Sorted input is the worst case for a first-element pivot: every
	// partition is one element shorter than its parent.
	in := make([]int, 5000)
	for i := range in {
		in[i] = i
	}
	assert.Equal(t, in, arr.Quicksort(in))
}

func TestQuicksortFunc(t *testing.T) {
	byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
	got := arr.QuicksortFunc([]string{"ccc", "a", "bb"}, byLen)
	assert.Equal(t, []string{"a", "bb", "ccc"}, got)

	desc := func(a, b int) int { return cmp.Compare(b, a) }
	assert.Equal(t, []int{5, 4, 3, 2, 1}, arr.QuicksortFunc([]int{5, 2, 4, 3, 1}, desc))

	fold := func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }
	assert.Equal(t, []string{"a", "B", "c"}, arr.QuicksortFunc([]string{"c", "B", "a"}, fold))
}
