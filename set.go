package golinq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// The set operations Except, Union and Intersect sort both operands first and then walk them
// in a single merge pass. With duplicate elements they behave like multisets: for an element
// occurring m times in s and n times in other, Union keeps max(m, n) copies, Intersect keeps
// min(m, n) and Except keeps max(m-n, 0).

// Distinct returns a sequence of the elements of s with runs of adjacent equal elements
// collapsed into one. Equal elements that are not adjacent are all kept;
// sort s first to remove every duplicate.
func Distinct[T comparable](s *Sequence[T]) *Sequence[T] {
	return wrap(slices.Compact(s.clone()))
}

// DistinctFunc is like Distinct but uses eq to compare adjacent elements.
func (s *Sequence[T]) DistinctFunc(eq EqualFunc[T]) *Sequence[T] {
	return wrap(slices.CompactFunc(s.clone(), eq))
}

// Concat returns a sequence of the elements of s followed by the elements of other.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	return Join(s, other)
}

// Except returns the sorted elements of s that are not in other.
func Except[T constraints.Ordered](s *Sequence[T], other *Sequence[T]) *Sequence[T] {
	return s.ExceptFunc(other, less[T])
}

// Differ is an alias for Except.
func Differ[T constraints.Ordered](s *Sequence[T], other *Sequence[T]) *Sequence[T] {
	return Except(s, other)
}

// Union returns the sorted elements that are in s, in other, or in both.
// Elements in both are returned once.
func Union[T constraints.Ordered](s *Sequence[T], other *Sequence[T]) *Sequence[T] {
	return s.UnionFunc(other, less[T])
}

// Intersect returns the sorted elements that are in both s and other.
func Intersect[T constraints.Ordered](s *Sequence[T], other *Sequence[T]) *Sequence[T] {
	return s.IntersectFunc(other, less[T])
}

// ExceptFunc is like Except but orders and compares elements using less.
// Two elements are equal if neither is less than the other.
func (s *Sequence[T]) ExceptFunc(other *Sequence[T], less LessFunc[T]) *Sequence[T] {
	a, b := s.OrderByFunc(less).elems, other.OrderByFunc(less).elems

	elems := make([]T, 0, len(a))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			elems = append(elems, a[i])
			i++

		case less(b[j], a[i]):
			j++

		default:
			i++
			j++
		}
	}

	elems = append(elems, a[i:]...)

	return wrap(slices.Clip(elems))
}

// DifferFunc is an alias for ExceptFunc.
func (s *Sequence[T]) DifferFunc(other *Sequence[T], less LessFunc[T]) *Sequence[T] {
	return s.ExceptFunc(other, less)
}

// UnionFunc is like Union but orders and compares elements using less.
// Two elements are equal if neither is less than the other; the element from s is kept.
func (s *Sequence[T]) UnionFunc(other *Sequence[T], less LessFunc[T]) *Sequence[T] {
	a, b := s.OrderByFunc(less).elems, other.OrderByFunc(less).elems

	elems := make([]T, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			elems = append(elems, a[i])
			i++

		case less(b[j], a[i]):
			elems = append(elems, b[j])
			j++

		default:
			elems = append(elems, a[i])
			i++
			j++
		}
	}

	elems = append(elems, a[i:]...)
	elems = append(elems, b[j:]...)

	return wrap(slices.Clip(elems))
}

// IntersectFunc is like Intersect but orders and compares elements using less.
// Two elements are equal if neither is less than the other; the element from s is kept.
func (s *Sequence[T]) IntersectFunc(other *Sequence[T], less LessFunc[T]) *Sequence[T] {
	a, b := s.OrderByFunc(less).elems, other.OrderByFunc(less).elems

	elems := make([]T, 0, len(a))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			i++

		case less(b[j], a[i]):
			j++

		default:
			elems = append(elems, a[i])
			i++
			j++
		}
	}

	return wrap(slices.Clip(elems))
}

func less[T constraints.Ordered](a T, b T) bool {
	return a < b
}
