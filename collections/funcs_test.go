package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-seqops/collections"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), strconv.Itoa).All()
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		return acc + strconv.Itoa(n)
	}, "")
	assert.Equal(t, "123", s)
}

func TestReduceRightFunc(t *testing.T) {
	s := collections.ReduceRight(ints(1, 2, 3), func(acc string, n, i int) string {
		return acc + strconv.Itoa(n) + ":" + strconv.Itoa(i) + " "
	}, "")
	assert.Equal(t, "3:0 2:1 1:2 ", s)
}

func TestQuicksortFunc(t *testing.T) {
	got := collections.Quicksort(ints(5, 2, 4, 3, 1)).All()
	assertSlice(t, got, []int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{}, collections.Quicksort(collections.Empty[int]()).All())
}

func TestMinMaxFunc(t *testing.T) {
	assert.Equal(t, 1, collections.Min(ints(3, 1, 2)).OrElse(-1))
	assert.Equal(t, 3, collections.Max(ints(3, 1, 2)).OrElse(-1))
	assert.True(t, collections.Min(collections.Empty[int]()).IsAbsent())
	assert.True(t, collections.Max(collections.Empty[int]()).IsAbsent())
}
