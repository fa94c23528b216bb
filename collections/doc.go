// Package collections provides a fluent, immutable [Sequence][T] type built
// on the helpers in package arr.
//
// # Overview
//
//	result := collections.New(5, 2, 4, 3, 1).
//	    Filter(func(n int) bool { return n > 1 }).
//	    Sort(cmp.Compare[int]).
//	    Last(2)
//	result.All() // → [4 5]
//
// # Immutability
//
// All transformation methods return a *new* Sequence, leaving the original
// unchanged.
//
// # Errors
//
// The arr helpers express missing values as absent [arr.Optional] results.
// Sequence adds "OrFail" accessors for callers that prefer an error:
//
//	v, err := collections.Empty[int]().HeadOrFail()
//	errors.Is(err, collections.ErrEmptySequence) // → true
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or need cmp.Ordered, are
// package-level functions: [Map], [Reduce], [ReduceRight], [Quicksort],
// [Min], [Max].
//
// # Named pipelines
//
// Compositions of steps can be registered at runtime with
// [RegisterPipeline] and run by name through [RunPipeline] or
// [Sequence.Pipe]:
//
//	collections.RegisterPipeline("top2",
//	    func(v any) any { return collections.Quicksort(v.(*collections.Sequence[int])) },
//	    func(v any) any { return v.(*collections.Sequence[int]).Last(2) },
//	)
//	out, _ := collections.New(3, 9, 1, 7).Pipe("top2") // *Sequence[int]{7, 9}
package collections
