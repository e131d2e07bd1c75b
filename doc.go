// Package golinq provides query and aggregation operations on finite, in-memory sequences of elements.
//
// A Sequence is constructed from a slice, a channel, or a generator such as Range and Repeat.
// Elements may then be filtered, projected, ordered, sliced and combined with other sequences.
// Finally, a chain is terminated by a scalar query (Count, Sum, Median, ...), a predicate check
// (All, Any, Contain, ...), or by exporting the elements into a slice or map.
//
// Sequences are immutable and evaluation is eager: every operation copies the elements it keeps
// into a new Sequence before returning, and the receiver is never changed.
//
// Operations that only need elements of any type are methods, so they can be chained:
//
//	evens := golinq.Range(1, 10).Where(func(elem int) bool { return elem%2 == 0 }).Reverse()
//
// Operations that need comparable, ordered or numeric elements, and operations that change the
// element type, are package-level functions, so that using them with an unsuitable element type
// fails to compile:
//
//	sum := golinq.Sum(evens)
//	strs := golinq.Select(evens, strconv.Itoa)
//
// Operations that can fail return ErrIndexOutOfRange or ErrEmptySequence, wrapped with details.
//
// Sorting, used by the OrderBy functions, Median and the set operations, is not stable.
package golinq
