package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-seqops/arr"
)

// Sequence is an immutable, chainable wrapper around a slice of T.
//
// Every method that transforms the sequence returns a *new* Sequence and
// leaves the receiver unchanged, so a Sequence may be read from several
// goroutines without locking.
//
//	s := collections.New(5, 2, 4, 3, 1).
//	    Reject(func(n int) bool { return n == 4 }).
//	    Reverse().
//	    First(3)
//	s.All() // → [1 3 2]
//
// Operations that change the element type are package-level functions:
// [Map], [Reduce], [ReduceRight], [Quicksort].
type Sequence[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	return &Sequence[T]{items: arr.Copy(items)}
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: arr.Copy(items)}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

func wrap[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T { return arr.Copy(s.items) }

// Count returns the number of items.
func (s *Sequence[T]) Count() int { return arr.Length(s.items) }

// IsEmpty reports whether the sequence has no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// Head returns the first item, absent when the sequence is empty.
func (s *Sequence[T]) Head() arr.Optional[T] { return arr.Head(s.items) }

// HeadOrFail returns the first item or [ErrEmptySequence].
func (s *Sequence[T]) HeadOrFail() (T, error) {
	v, ok := s.Head().Get()
	if !ok {
		return v, ErrEmptySequence
	}
	return v, nil
}

// At returns the item at index, absent when index is out of range.
func (s *Sequence[T]) At(index int) arr.Optional[T] { return arr.At(s.items, index) }

// AtOrFail returns the item at index or an error wrapping
// [ErrIndexOutOfRange].
func (s *Sequence[T]) AtOrFail(index int) (T, error) {
	v, ok := s.At(index).Get()
	if !ok {
		return v, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return v, nil
}

// Each calls fn(item, index) for every item in order.
func (s *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// MarshalJSON encodes the items as a JSON array.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns a JSON representation of the items, or the %v formatting
// when they cannot be encoded. It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Tail returns all but the first item.
func (s *Sequence[T]) Tail() *Sequence[T] { return wrap(arr.Tail(s.items)) }

// Reverse returns the items in opposite order.
func (s *Sequence[T]) Reverse() *Sequence[T] { return wrap(arr.Reverse(s.items)) }

// First returns the leading n items (default 1), clamped like [arr.First].
func (s *Sequence[T]) First(n ...int) *Sequence[T] { return wrap(arr.First(s.items, n...)) }

// Last returns the trailing n items (default 1), clamped like [arr.Last].
func (s *Sequence[T]) Last(n ...int) *Sequence[T] { return wrap(arr.Last(s.items, n...)) }

// InsertAt returns the sequence with value inserted before index. See
// [arr.InsertAt] for the out-of-range policy.
func (s *Sequence[T]) InsertAt(index int, value T) *Sequence[T] {
	return wrap(arr.InsertAt(s.items, index, value))
}

// Swap exchanges the items at i and j.
func (s *Sequence[T]) Swap(i, j int) *Sequence[T] { return wrap(arr.Swap(s.items, i, j)) }

// Concat appends the items of others after the receiver's items.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	parts := make([][]T, 0, len(others)+1)
	parts = append(parts, s.items)
	for _, o := range others {
		parts = append(parts, o.items)
	}
	return wrap(arr.Concat(parts...))
}

// Sort returns the items ordered by compare using the first-element pivot
// quicksort of [arr.QuicksortFunc].
func (s *Sequence[T]) Sort(compare func(a, b T) int) *Sequence[T] {
	return wrap(arr.QuicksortFunc(s.items, compare))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items for which pred returns true.
func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	return wrap(arr.Filter(s.items, pred))
}

// Reject keeps the items for which pred returns false.
func (s *Sequence[T]) Reject(pred func(T) bool) *Sequence[T] {
	return wrap(arr.Reject(s.items, pred))
}

// Partition splits the items into those satisfying pred and the rest.
func (s *Sequence[T]) Partition(pred func(T) bool) (*Sequence[T], *Sequence[T]) {
	pass, fail := arr.Partition(s.items, pred)
	return wrap(pass), wrap(fail)
}
