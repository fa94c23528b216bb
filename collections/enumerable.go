package collections

import "github.com/hasbyte1/go-seqops/arr"

// Enumerable is the read-only surface of [Sequence][T].
//
// Accept Enumerable in your own functions so callers can pass alternative
// implementations without depending on the concrete *Sequence type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// Head returns the first item, absent when there are none.
	Head() arr.Optional[T]

	// At returns the item at index, absent when index is out of range.
	At(index int) arr.Optional[T]

	// IsEmpty reports whether there are no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Sequence[int])(nil)
