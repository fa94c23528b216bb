package arr

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element of items, or an absent Optional when items
// is empty.
//
//	Head([]int{3, 2, 1}) // → Some(3)
func Head[T any](items []T) Optional[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Some(items[0])
}

// Tail returns all but the first element. The result is empty when items has
// fewer than two elements.
//
//	Tail([]int{3, 2, 1}) // → [2 1]
func Tail[T any](items []T) []T {
	if len(items) < 2 {
		return []T{}
	}
	return Copy(items[1:])
}

// Length returns the number of elements in items. A nil slice has length 0.
func Length[T any](items []T) int {
	return len(items)
}

// Copy returns a new slice with the same elements in the same order. The
// result never shares a backing array with items.
func Copy[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// At returns the element at index, or an absent Optional when index is
// outside [0, len(items)).
func At[T any](items []T, index int) Optional[T] {
	if index < 0 || index >= len(items) {
		return None[T]()
	}
	return Some(items[index])
}

// Reverse returns a reversed copy of items.
//
//	Reverse([]int{3, 2, 1}) // → [1 2 3]
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// First returns a new slice holding the leading n elements of items. n
// defaults to 1. A non-positive n yields an empty slice and an n larger than
// the slice yields a copy of the whole slice.
//
//	First([]int{1, 2, 3, 4, 5}, 3) // → [1 2 3]
func First[T any](items []T, n ...int) []T {
	count := countArg(n)
	if count <= 0 {
		return []T{}
	}
	if count > len(items) {
		count = len(items)
	}
	return Copy(items[:count])
}

// Last returns a new slice holding the trailing n elements of items, with
// the same defaults and clamping as [First]. It is defined as
// Reverse(First(Reverse(items), n)).
//
//	Last([]int{1, 2, 3, 4, 5}, 3) // → [3 4 5]
func Last[T any](items []T, n ...int) []T {
	return Reverse(First(Reverse(items), n...))
}

func countArg(n []int) int {
	if len(n) == 0 {
		return 1
	}
	return n[0]
}

// InsertAt returns a copy of items with value inserted immediately before
// position index. An index equal to len(items) appends value.
//
// An index below zero or past len(items) leaves the result unchanged: the
// value is silently dropped rather than appended or reported.
//
//	InsertAt([]int{1, 2, 3, 4}, 2, 5) // → [1 2 5 3 4]
func InsertAt[T any](items []T, index int, value T) []T {
	if index < 0 || index > len(items) {
		return Copy(items)
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, value)
	return append(out, items[index:]...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element in order and returns the results.
//
//	Map([]int{1, 2, 3}, func(x int) int { return x * x }) // → [1 4 9]
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapIndexed is [Map] with the element's position passed to fn.
func MapIndexed[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which pred returns true, in order.
//
//	Filter([]int{1, 2, 3}, func(x int) bool { return x%2 == 0 }) // → [2]
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which pred returns false, in order.
// Filter and Reject with the same predicate split items with no overlap and
// no loss.
func Reject[T any](items []T, pred func(T) bool) []T {
	return Filter(items, func(item T) bool { return !pred(item) })
}

// Partition returns (Filter(items, pred), Reject(items, pred)).
//
//	Partition([]int{1, 2, 3}, isEven) // → [2], [1 3]
func Partition[T any](items []T, pred func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if pred(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Swap returns a copy of items with the elements at i and j exchanged.
// When either index is out of range the copy is returned unchanged.
//
//	Swap([]int{1, 2, 3, 4}, 1, 3) // → [1 4 3 2]
func Swap[T any](items []T, i, j int) []T {
	if i < 0 || j < 0 || i >= len(items) || j >= len(items) {
		return Copy(items)
	}
	return MapIndexed(items, func(item T, k int) T {
		switch k {
		case i:
			return items[j]
		case j:
			return items[i]
		}
		return item
	})
}

// Concat joins parts into a single new slice, one level deep.
func Concat[T any](parts ...[]T) []T {
	total := 0
	for _, part := range parts {
		total += len(part)
	}
	out := make([]T, 0, total)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Folds
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds items from left to right. fn receives the running
// accumulator, the current element and its index. An empty slice returns
// initial unchanged.
//
//	Reduce([]int{1, 2, 3}, func(acc, x, _ int) int { return acc + x }, 0) // → 6
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	acc := initial
	for i, item := range items {
		acc = fn(acc, item, i)
	}
	return acc
}

// ReduceRight folds Reverse(items) from left to right. The index passed to
// fn is the element's position in the reversed slice, so the last element of
// items is visited with index 0.
func ReduceRight[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	return Reduce(Reverse(items), fn, initial)
}
