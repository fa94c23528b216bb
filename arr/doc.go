// Package arr provides side-effect-free helper functions for Go slices:
// element access, filtering, folding, flattening and sorting.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values. None of them
// modifies its input; every returned slice is freshly allocated and non-nil,
// so an empty result is []T{} rather than nil:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	top3  := arr.First(arr.Quicksort(scores), 3)
//	sum   := arr.Reduce(prices, func(acc, p float64, _ int) float64 { return acc + p }, 0)
//
// # Absent values
//
// Reads that may find nothing, such as [Head] of an empty slice, return an
// [Optional] instead of a zero value:
//
//	h := arr.Head([]int{})
//	arr.Def(h)     // → false
//	h.OrElse(-1)   // → -1
//
// # Boundaries
//
// Nothing in this package returns an error. Counts passed to [First] and
// [Last] are clamped, [Min] and [Max] return infinities for empty input and
// out-of-range indices leave [Swap] and [InsertAt] results unchanged.
//
// # Stack usage
//
// Traversals are loops and the nested structures walked by [Flatten] and
// [Quicksort] are kept on heap-allocated work stacks, so call depth does not
// grow with the length or nesting of the input.
package arr
