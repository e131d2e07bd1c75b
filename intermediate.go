package golinq

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// IndexedPredicateFunc returns true if elem matches a predicate.
// The index is the 0-based position of elem in the sequence.
type IndexedPredicateFunc[T any] func(elem T, index int) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// EqualFunc returns true if elements a and b are equal.
type EqualFunc[T any] func(a T, b T) bool

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}

// Where returns a sequence of the elements for which pred returns true, in order.
func (s *Sequence[T]) Where(pred PredicateFunc[T]) *Sequence[T] {
	return s.WhereIndexed(func(elem T, _ int) bool {
		return pred(elem)
	})
}

// WhereIndexed returns a sequence of the elements for which pred returns true, in order.
func (s *Sequence[T]) WhereIndexed(pred IndexedPredicateFunc[T]) *Sequence[T] {
	elems := make([]T, 0, len(s.elems))

	for i, elem := range s.elems {
		if pred(elem, i) {
			elems = append(elems, elem)
		}
	}

	return wrap(slices.Clip(elems))
}

// EqualTo returns a sequence of the elements of s equal to value.
func EqualTo[T comparable](s *Sequence[T], value T) *Sequence[T] {
	return s.Where(equalTo(value))
}

// NotEqualTo returns a sequence of the elements of s not equal to value.
func NotEqualTo[T comparable](s *Sequence[T], value T) *Sequence[T] {
	return s.Where(func(elem T) bool {
		return elem != value
	})
}

// LessThan returns a sequence of the elements of s less than value.
func LessThan[T constraints.Ordered](s *Sequence[T], value T) *Sequence[T] {
	return s.Where(func(elem T) bool {
		return elem < value
	})
}

// LessThanOrEqualTo returns a sequence of the elements of s less than or equal to value.
func LessThanOrEqualTo[T constraints.Ordered](s *Sequence[T], value T) *Sequence[T] {
	return s.Where(func(elem T) bool {
		return elem <= value
	})
}

// GreaterThan returns a sequence of the elements of s greater than value.
func GreaterThan[T constraints.Ordered](s *Sequence[T], value T) *Sequence[T] {
	return s.Where(func(elem T) bool {
		return elem > value
	})
}

// GreaterThanOrEqualTo returns a sequence of the elements of s greater than or equal to value.
func GreaterThanOrEqualTo[T constraints.Ordered](s *Sequence[T], value T) *Sequence[T] {
	return s.Where(func(elem T) bool {
		return elem >= value
	})
}

// Skip returns a sequence of the elements of s, in order, skipping the first num elements.
// It returns ErrIndexOutOfRange if num is negative or greater than the number of elements.
func (s *Sequence[T]) Skip(num int) (*Sequence[T], error) {
	if num < 0 || num > len(s.elems) {
		return nil, fmt.Errorf("skip %d of %d elements: %w", num, len(s.elems), ErrIndexOutOfRange)
	}

	return From(s.elems[num:]), nil
}

// SkipWhile returns a sequence of the elements of s, in order, skipping the longest prefix of
// elements for which pred returns true.
func (s *Sequence[T]) SkipWhile(pred PredicateFunc[T]) *Sequence[T] {
	num := 0
	for num < len(s.elems) && pred(s.elems[num]) {
		num++
	}

	return From(s.elems[num:])
}

// Take returns a sequence of the first num elements of s, in order.
// If s has fewer than num elements, all of them are returned.
func (s *Sequence[T]) Take(num int) *Sequence[T] {
	if num < 0 {
		num = 0
	}

	if num > len(s.elems) {
		num = len(s.elems)
	}

	return From(s.elems[:num])
}

// TakeWhile returns a sequence of the longest prefix of elements of s for which pred returns true.
func (s *Sequence[T]) TakeWhile(pred PredicateFunc[T]) *Sequence[T] {
	num := 0
	for num < len(s.elems) && pred(s.elems[num]) {
		num++
	}

	return From(s.elems[:num])
}

// Reverse returns a sequence of the elements of s in reverse order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	size := len(s.elems)

	elems := make([]T, size)
	for i, elem := range s.elems {
		elems[size-1-i] = elem
	}

	return wrap(elems)
}

// Rotate returns a sequence of the elements of s rotated left by num positions,
// that is, the elements from index num to the end, followed by the first num elements.
// num is taken modulo the number of elements; a negative num rotates right.
func (s *Sequence[T]) Rotate(num int) *Sequence[T] {
	size := len(s.elems)
	if size == 0 {
		return wrap([]T{})
	}

	num %= size
	if num < 0 {
		num += size
	}

	return From(s.elems[num:], s.elems[:num])
}

// OrderBy returns a sequence of the elements of s in ascending order.
// The sort is not stable: the order of equal elements is unspecified.
func OrderBy[T constraints.Ordered](s *Sequence[T]) *Sequence[T] {
	elems := s.clone()
	slices.Sort(elems)

	return wrap(elems)
}

// OrderByDescending returns a sequence of the elements of s in descending order.
// The sort is not stable: the order of equal elements is unspecified.
func OrderByDescending[T constraints.Ordered](s *Sequence[T]) *Sequence[T] {
	return s.OrderByFunc(func(a T, b T) bool {
		return a > b
	})
}

// OrderByFunc returns a sequence of the elements of s sorted using less.
// The sort is not stable: the order of elements that are neither less nor greater than each other
// is unspecified. Use OrderByStableFunc if that order matters.
func (s *Sequence[T]) OrderByFunc(less LessFunc[T]) *Sequence[T] {
	elems := s.clone()
	slices.SortFunc(elems, less)

	return wrap(elems)
}

// OrderByStableFunc returns a sequence of the elements of s sorted using less,
// keeping equal elements in their original order.
func (s *Sequence[T]) OrderByStableFunc(less LessFunc[T]) *Sequence[T] {
	elems := s.clone()
	slices.SortStableFunc(elems, less)

	return wrap(elems)
}

// Select returns a sequence of the results of calling mapp for each element of s, in order.
// Use the package-level Select to map to a different element type.
func (s *Sequence[T]) Select(mapp MapperFunc[T, T]) *Sequence[T] {
	return Select(s, mapp)
}

// Select returns a sequence of the results of calling mapp for each element of s, in order,
// mapping each element to type U.
func Select[T any, U any](s *Sequence[T], mapp MapperFunc[T, U]) *Sequence[U] {
	elems := make([]U, len(s.elems))
	for i, elem := range s.elems {
		elems[i] = mapp(elem)
	}

	return wrap(elems)
}

// SelectMany calls mapp for each element of s, mapping it to an intermediate sequence,
// and returns a sequence of the elements of all intermediate sequences, in order.
func SelectMany[T any, U any](s *Sequence[T], mapp MapperFunc[T, *Sequence[U]]) *Sequence[U] {
	return Join(Select(s, mapp).elems...)
}

// Cast returns a sequence of the elements of s converted to type S.
// The conversion follows Go's rules for numeric conversions, so it may truncate or overflow.
func Cast[S Number, T Number](s *Sequence[T]) *Sequence[S] {
	return Select(s, func(elem T) S {
		return S(elem)
	})
}

// Square returns a sequence of the squares of the elements of s.
func Square[T Number](s *Sequence[T]) *Sequence[T] {
	return s.Select(Power2[T])
}

// Peek calls peek for each element of s, in order, and returns s.
func (s *Sequence[T]) Peek(peek ConsumerFunc[T]) *Sequence[T] {
	s.Each(peek)
	return s
}

func equalTo[T comparable](value T) PredicateFunc[T] {
	return func(elem T) bool {
		return elem == value
	}
}
