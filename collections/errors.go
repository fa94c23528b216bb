package collections

import "errors"

// Sentinel errors returned by the error-returning Sequence accessors and the
// pipeline registry.
var (
	// ErrEmptySequence is returned when an operation needs at least one
	// item but the sequence is empty.
	ErrEmptySequence = errors.New("collections: operation on empty sequence")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()).
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrPipelineNotFound is returned when an unregistered pipeline name is
	// run.
	ErrPipelineNotFound = errors.New("collections: pipeline not found")
)
