package golinq

import "golang.org/x/exp/constraints"

// From returns a sequence of the elements of the given slices, in order.
// The elements are copied: later changes to the slices do not affect the sequence.
func From[T any](slices ...[]T) *Sequence[T] {
	size := 0
	for _, slice := range slices {
		size += len(slice)
	}

	elems := make([]T, 0, size)
	for _, slice := range slices {
		elems = append(elems, slice...)
	}

	return wrap(elems)
}

// Of returns a sequence of the given elements, in order.
func Of[T any](elems ...T) *Sequence[T] {
	return From(elems)
}

// FromChannel returns a sequence of the elements received through the given channels, in order.
// Each channel is drained until it is closed before the next one is read.
func FromChannel[T any](channels ...<-chan T) *Sequence[T] {
	elems := []T{}

	for _, ch := range channels {
		for elem := range ch {
			elems = append(elems, elem)
		}
	}

	return wrap(elems)
}

// Join returns a sequence of the elements of the given sequences, in order.
func Join[T any](seqs ...*Sequence[T]) *Sequence[T] {
	slices := make([][]T, len(seqs))
	for i, seq := range seqs {
		slices[i] = seq.elems
	}

	return From(slices...)
}

// Range returns the sequence of integers from from to to, both inclusive.
// The sequence has to-from+1 elements, or none if to is less than from.
func Range[T constraints.Integer](from T, to T) *Sequence[T] {
	if to < from {
		return wrap([]T{})
	}

	size := int(to-from) + 1
	if size < 0 {
		// to-from overflowed T
		size = 0
	}

	elems := make([]T, 0, size)

	for i := from; ; i++ {
		elems = append(elems, i)

		if i == to {
			break
		}
	}

	return wrap(elems)
}

// Repeat returns a sequence of count copies of value.
// A count less than one results in an empty sequence.
func Repeat[T any](value T, count int) *Sequence[T] {
	if count < 0 {
		count = 0
	}

	elems := make([]T, count)
	for i := range elems {
		elems[i] = value
	}

	return wrap(elems)
}
