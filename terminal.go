package golinq

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// Each calls each for each element of s, in order.
func (s *Sequence[T]) Each(each ConsumerFunc[T]) {
	for _, elem := range s.elems {
		each(elem)
	}
}

// Reduce calls reduce for each element of s, in order, folding it into accumulator acc,
// and returns the final accumulator.
func Reduce[T any, A any](s *Sequence[T], acc A, reduce AccumulatorFunc[T, A]) A {
	s.Each(func(elem T) {
		acc = reduce(acc, elem)
	})

	return acc
}

// Aggregate folds the elements of s, in order, into seed using combine.
func Aggregate[T Number](s *Sequence[T], seed T, combine AccumulatorFunc[T, T]) T {
	return Reduce(s, seed, combine)
}

// AggregateSelect folds the elements of s, in order, into seed using combine,
// and returns the result of calling selector with the final value.
func AggregateSelect[T Number, S any](s *Sequence[T], seed T, combine AccumulatorFunc[T, T], selector MapperFunc[T, S]) S {
	return selector(Aggregate(s, seed, combine))
}

// First returns the first element of s.
// It returns ErrEmptySequence if s has no elements.
func (s *Sequence[T]) First() (T, error) {
	if len(s.elems) == 0 {
		var zero T
		return zero, fmt.Errorf("first: %w", ErrEmptySequence)
	}

	return s.elems[0], nil
}

// Last returns the last element of s.
// It returns ErrEmptySequence if s has no elements.
func (s *Sequence[T]) Last() (T, error) {
	if len(s.elems) == 0 {
		var zero T
		return zero, fmt.Errorf("last: %w", ErrEmptySequence)
	}

	return s.elems[len(s.elems)-1], nil
}

// FirstFunc returns the first element of s for which pred returns true.
// It returns ErrEmptySequence if there is no such element.
func (s *Sequence[T]) FirstFunc(pred PredicateFunc[T]) (T, error) {
	return s.Where(pred).First()
}

// LastFunc returns the last element of s for which pred returns true.
// It returns ErrEmptySequence if there is no such element.
func (s *Sequence[T]) LastFunc(pred PredicateFunc[T]) (T, error) {
	return s.Where(pred).Last()
}

// FirstOr returns the first element of s, or def if s has no elements.
func (s *Sequence[T]) FirstOr(def T) T {
	elem, err := s.First()
	if err != nil {
		return def
	}

	return elem
}

// LastOr returns the last element of s, or def if s has no elements.
func (s *Sequence[T]) LastOr(def T) T {
	elem, err := s.Last()
	if err != nil {
		return def
	}

	return elem
}

// At returns the element of s at index.
// It returns ErrIndexOutOfRange unless 0 <= index < s.Count().
func (s *Sequence[T]) At(index int) (T, error) {
	if index < 0 || index >= len(s.elems) {
		var zero T
		return zero, fmt.Errorf("index %d of %d elements: %w", index, len(s.elems), ErrIndexOutOfRange)
	}

	return s.elems[index], nil
}

// All returns true if pred returns true for all elements of s.
// It returns true if s has no elements.
func (s *Sequence[T]) All(pred PredicateFunc[T]) bool {
	for _, elem := range s.elems {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Any returns true as soon as pred returns true for an element of s.
// It returns false if s has no elements.
func (s *Sequence[T]) Any(pred PredicateFunc[T]) bool {
	return slices.IndexFunc(s.elems, pred) >= 0
}

// None returns true if pred returns false for all elements of s.
func (s *Sequence[T]) None(pred PredicateFunc[T]) bool {
	return !s.Any(pred)
}

// AllEqual returns true if all elements of s are equal to value.
func AllEqual[T comparable](s *Sequence[T], value T) bool {
	return s.All(equalTo(value))
}

// AnyEqual returns true if any element of s is equal to value.
func AnyEqual[T comparable](s *Sequence[T], value T) bool {
	return s.Any(equalTo(value))
}

// NoneEqual returns true if no element of s is equal to value.
func NoneEqual[T comparable](s *Sequence[T], value T) bool {
	return s.None(equalTo(value))
}

// SequenceEqual returns true if s and other have the same number of elements
// and their elements are equal, in order.
func SequenceEqual[T comparable](s *Sequence[T], other *Sequence[T]) bool {
	return slices.Equal(s.elems, other.elems)
}

// SequenceEqualFunc returns true if s and other have the same number of elements
// and eq returns true for each pair of elements, in order.
func (s *Sequence[T]) SequenceEqualFunc(other *Sequence[T], eq EqualFunc[T]) bool {
	return slices.EqualFunc(s.elems, other.elems, eq)
}

// Contain returns true if value is an element of s.
func Contain[T comparable](s *Sequence[T], value T) bool {
	return slices.Contains(s.elems, value)
}

// Include is an alias for Contain.
func Include[T comparable](s *Sequence[T], value T) bool {
	return Contain(s, value)
}

// ContainAll returns true if every element of other is an element of s.
// Duplicates in other are not counted against duplicates in s.
func ContainAll[T comparable](s *Sequence[T], other *Sequence[T]) bool {
	return other.All(func(elem T) bool {
		return Contain(s, elem)
	})
}

// IncludeAll is an alias for ContainAll.
func IncludeAll[T comparable](s *Sequence[T], other *Sequence[T]) bool {
	return ContainAll(s, other)
}
