package golinq

import "errors"

// ErrIndexOutOfRange is returned when an index or count does not fit into a sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmptySequence is returned when an operation needs at least one element but the sequence has none.
var ErrEmptySequence = errors.New("empty sequence")

// A DuplicateKeyError is returned by ToMapNoDuplicateKeys to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
