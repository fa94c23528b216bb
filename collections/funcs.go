package collections

import (
	"cmp"

	"github.com/hasbyte1/go-seqops/arr"
)

// This file holds package-level functions for operations that change the
// element type or need a type constraint the Sequence type does not carry.
// Methods cannot introduce their own type parameters.

// Map applies fn to every item and returns a new Sequence[U].
//
//	labels := collections.Map(collections.New(1, 2, 3), strconv.Itoa)
func Map[T, U any](s *Sequence[T], fn func(T) U) *Sequence[U] {
	return wrap(arr.Map(s.items, fn))
}

// Reduce folds the items from left to right. See [arr.Reduce].
func Reduce[T, U any](s *Sequence[T], fn func(U, T, int) U, initial U) U {
	return arr.Reduce(s.items, fn, initial)
}

// ReduceRight folds the reversed items from left to right. See
// [arr.ReduceRight] for the index semantics.
func ReduceRight[T, U any](s *Sequence[T], fn func(U, T, int) U, initial U) U {
	return arr.ReduceRight(s.items, fn, initial)
}

// Quicksort returns the items in ascending order.
func Quicksort[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return wrap(arr.Quicksort(s.items))
}

// Min returns the smallest item, absent when s is empty.
func Min[T cmp.Ordered](s *Sequence[T]) arr.Optional[T] {
	return arr.MinOf(s.items)
}

// Max returns the largest item, absent when s is empty.
func Max[T cmp.Ordered](s *Sequence[T]) arr.Optional[T] {
	return arr.MaxOf(s.items)
}
