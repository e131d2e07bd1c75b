package golinq

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sum returns the sum of the elements of s, or 0 if s has no elements.
func Sum[T Number](s *Sequence[T]) T {
	return Aggregate(s, 0, func(acc T, elem T) T {
		return acc + elem
	})
}

// Average returns the arithmetic mean of the elements of s, computed in T.
// For integer types the result is truncated. Use AverageAs to average in another type.
// It returns ErrEmptySequence if s has no elements.
func Average[T Number](s *Sequence[T]) (T, error) {
	if s.Empty() {
		return 0, fmt.Errorf("average: %w", ErrEmptySequence)
	}

	return Sum(s) / T(s.Count()), nil
}

// AverageAs converts the elements of s to type S and returns their arithmetic mean, computed in S.
func AverageAs[S Number, T Number](s *Sequence[T]) (S, error) {
	return Average(Cast[S](s))
}

// Mean is an alias for Average.
func Mean[T Number](s *Sequence[T]) (T, error) {
	return Average(s)
}

// MeanAs is an alias for AverageAs.
func MeanAs[S Number, T Number](s *Sequence[T]) (S, error) {
	return AverageAs[S](s)
}

// Minimum returns the smallest element of s.
// It returns ErrEmptySequence if s has no elements.
func Minimum[T constraints.Ordered](s *Sequence[T]) (T, error) {
	return extreme(s, "minimum", func(a T, b T) bool {
		return a < b
	})
}

// Maximum returns the largest element of s.
// It returns ErrEmptySequence if s has no elements.
func Maximum[T constraints.Ordered](s *Sequence[T]) (T, error) {
	return extreme(s, "maximum", func(a T, b T) bool {
		return a > b
	})
}

// Median returns the middle element of the sorted elements of s.
// If s has an even number of elements, it returns the mean of the two middle elements, computed in T.
// It returns ErrEmptySequence if s has no elements.
func Median[T Number](s *Sequence[T]) (T, error) {
	if s.Empty() {
		return 0, fmt.Errorf("median: %w", ErrEmptySequence)
	}

	sorted := OrderBy(s).elems
	half := len(sorted) / 2

	if len(sorted)%2 == 0 {
		return (sorted[half-1] + sorted[half]) / 2, nil
	}

	return sorted[half], nil
}

// Variance returns the population variance of the elements of s, that is,
// the mean of the squared deviations from Average, computed in T.
// It returns ErrEmptySequence if s has no elements.
func Variance[T Number](s *Sequence[T]) (T, error) {
	avg, err := Average(s)
	if err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}

	count := T(s.Count())

	return AggregateSelect(s, 0,
		func(acc T, elem T) T {
			return acc + Power2(elem-avg)
		},
		func(acc T) T {
			return acc / count
		}), nil
}

// StandardDeviation returns the square root of Variance, truncated for integer types.
// It returns ErrEmptySequence if s has no elements.
func StandardDeviation[T Number](s *Sequence[T]) (T, error) {
	variance, err := Variance(s)
	if err != nil {
		return 0, fmt.Errorf("standard deviation: %w", err)
	}

	return Sqrt(variance), nil
}

// extreme returns the element of s that no other element is better than.
// Ties keep the earliest element.
func extreme[T any](s *Sequence[T], op string, better LessFunc[T]) (T, error) {
	result, err := s.First()
	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	for _, elem := range s.elems[1:] {
		if better(elem, result) {
			result = elem
		}
	}

	return result, nil
}
