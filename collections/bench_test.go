package collections_test

import (
	"cmp"
	"testing"

	"github.com/hasbyte1/go-seqops/collections"
)

// makeInts creates a Sequence[int] of size n for benchmarks.
func makeInts(n int) *collections.Sequence[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = (i * 7919) % n
	}
	return collections.From(items)
}

func BenchmarkFilter(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Filter(isEven)
	}
}

func BenchmarkMapFunc(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(s, func(n int) int { return n * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(s, func(acc, n, _ int) int { return acc + n }, 0)
	}
}

func BenchmarkSort(b *testing.B) {
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Sort(cmp.Compare[int])
	}
}

func BenchmarkRunPipeline(b *testing.B) {
	collections.RegisterPipeline("bench",
		func(v any) any { return v.(*collections.Sequence[int]).Filter(isEven) },
		func(v any) any { return collections.Quicksort(v.(*collections.Sequence[int])) },
	)
	defer collections.FlushPipelines()
	s := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.RunPipeline("bench", s)
	}
}
