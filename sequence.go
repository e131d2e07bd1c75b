package golinq

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Sequence is an ordered, immutable collection of elements of type T.
//
// A Sequence owns its elements. Every operation that would change it returns a new Sequence
// with its own buffer, so a Sequence may be read from multiple goroutines without locking.
// The zero value is an empty Sequence.
type Sequence[T any] struct {
	elems []T
}

// wrap returns a Sequence that takes ownership of elems.
// Callers must not retain elems.
func wrap[T any](elems []T) *Sequence[T] {
	return &Sequence[T]{elems: elems}
}

// clone returns a copy of the elements of s that the caller may modify.
func (s *Sequence[T]) clone() []T {
	out := slices.Clone(s.elems)
	if out == nil {
		out = []T{}
	}

	return out
}

// Count returns the number of elements in s.
func (s *Sequence[T]) Count() int {
	return len(s.elems)
}

// CountFunc returns the number of elements for which pred returns true.
func (s *Sequence[T]) CountFunc(pred PredicateFunc[T]) int {
	count := 0

	for _, elem := range s.elems {
		if pred(elem) {
			count++
		}
	}

	return count
}

// CountOf returns the number of elements of s equal to value.
func CountOf[T comparable](s *Sequence[T], value T) int {
	return s.CountFunc(equalTo(value))
}

// Empty returns true if s has no elements.
func (s *Sequence[T]) Empty() bool {
	return s.Count() == 0
}

// String implements fmt.Stringer.
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.elems)
}
