package arr

import "fmt"

// Optional holds a value that may be absent, such as the head of an empty
// slice. The zero Optional is absent. Zero values of T (0, "", nil) are
// valid present values and are never used as the absence signal.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a defined Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsDefined reports whether o holds a value.
func (o Optional[T]) IsDefined() bool { return o.ok }

// IsAbsent reports whether o holds no value.
func (o Optional[T]) IsAbsent() bool { return !o.ok }

// Get returns the held value and true, or the zero value and false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or fallback when o is absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// String implements [fmt.Stringer]: "Some(v)" or "None".
func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Def reports whether o holds a value.
//
//	Def(Head([]int{0}))  // → true
//	Def(Head([]int{}))   // → false
func Def[T any](o Optional[T]) bool { return o.IsDefined() }

// Undef is the negation of [Def].
func Undef[T any](o Optional[T]) bool { return !Def(o) }
