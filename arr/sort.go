package arr

import (
	"cmp"
	"math"
)

// Float is the set of element types [Min] and [Max] accept. Both need an
// infinity to return for an empty slice.
type Float interface {
	~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest element of items, or +Inf when items is empty.
//
//	Min([]float64{3, 1, 2}) // → 1
func Min[F Float](items []F) F {
	result := F(math.Inf(1))
	for _, item := range items {
		if item < result {
			result = item
		}
	}
	return result
}

// Max returns the largest element of items, or -Inf when items is empty.
//
//	Max([]float64{3, 1, 2}) // → 3
func Max[F Float](items []F) F {
	result := F(math.Inf(-1))
	for _, item := range items {
		if item > result {
			result = item
		}
	}
	return result
}

// MinOf returns the smallest element of items, or an absent Optional when
// items is empty. Use it for element types that have no infinity.
func MinOf[T cmp.Ordered](items []T) Optional[T] {
	if len(items) == 0 {
		return None[T]()
	}
	result := items[0]
	for _, item := range items[1:] {
		if item < result {
			result = item
		}
	}
	return Some(result)
}

// MaxOf returns the largest element of items, or an absent Optional when
// items is empty.
func MaxOf[T cmp.Ordered](items []T) Optional[T] {
	if len(items) == 0 {
		return None[T]()
	}
	result := items[0]
	for _, item := range items[1:] {
		if item > result {
			result = item
		}
	}
	return Some(result)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Quicksort returns an ascending copy of items. The first element is the
// pivot; the remaining elements less than or equal to it form the left
// partition and those strictly greater form the right one. The result is
// Concat(Quicksort(left), [pivot], Quicksort(right)).
//
// Floating-point NaN values that follow a pivot compare neither <= nor > and
// are therefore left out of the result.
//
//	Quicksort([]int{5, 2, 4, 3, 1}) // → [1 2 3 4 5]
func Quicksort[T cmp.Ordered](items []T) []T {
	return quicksort(items,
		func(x, pivot T) bool { return x <= pivot },
		func(x, pivot T) bool { return x > pivot },
	)
}

// QuicksortFunc is [Quicksort] ordered by compare, which returns a negative
// number when a < b, zero when equal and a positive number when a > b.
func QuicksortFunc[T any](items []T, compare func(a, b T) int) []T {
	return quicksort(items,
		func(x, pivot T) bool { return compare(x, pivot) <= 0 },
		func(x, pivot T) bool { return compare(x, pivot) > 0 },
	)
}

// quicksort keeps the partitions still to be sorted on an explicit stack.
// Each entry is either a partition or a pivot ready to be emitted. The left
// partition is pushed last so it is emitted before its pivot.
func quicksort[T any](items []T, left, right func(x, pivot T) bool) []T {
	type work struct {
		part  []T
		pivot Optional[T]
	}
	out := make([]T, 0, len(items))
	stack := []work{{part: items}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p, ok := w.pivot.Get(); ok {
			out = append(out, p)
			continue
		}
		if len(w.part) == 0 {
			continue
		}
		pivot := w.part[0]
		rest := w.part[1:]
		stack = append(stack,
			work{part: Filter(rest, func(x T) bool { return right(x, pivot) })},
			work{pivot: Some(pivot)},
			work{part: Filter(rest, func(x T) bool { return left(x, pivot) })},
		)
	}
	return out
}
