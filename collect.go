package golinq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(acc []T, elem T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the existing entry is kept and the element is dropped.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(acc map[K]V, elem T) map[K]V {
		key := key(elem)

		if _, ok := acc[key]; !ok {
			acc[key] = value(elem)
		}

		return acc
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements are mapped using key and value, respectively.
// Values with the same key are appended to the key's slice, in order.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(acc map[K][]V, elem T) map[K][]V {
		key := key(elem)
		acc[key] = append(acc[key], value(elem))

		return acc
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value MapperFunc[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(MapperFunc[T, bool](pred), value)
}

// ToSlice returns a new slice of the elements of s, in order.
func (s *Sequence[T]) ToSlice() []T {
	return s.clone()
}

// ToSliceSelect returns a new slice of the results of calling value for each element of s, in order.
func ToSliceSelect[T any, U any](s *Sequence[T], value MapperFunc[T, U]) []U {
	return Select(s, value).elems
}

// ToMap returns a map of the elements of s, keyed by key.
// If more than one element has the same key, the first one is kept.
func ToMap[T any, K comparable](s *Sequence[T], key MapperFunc[T, K]) map[K]T {
	return ToMapSelect(s, key, Identity[T]())
}

// ToMapSelect returns a map of the results of calling value for each element of s, keyed by key.
// If more than one element has the same key, the first one is kept.
func ToMapSelect[T any, K comparable, V any](s *Sequence[T], key MapperFunc[T, K], value MapperFunc[T, V]) map[K]V {
	return Reduce(s, make(map[K]V, s.Count()), CollectMap(key, value))
}

// ToMapNoDuplicateKeys is like ToMapSelect, but returns a *DuplicateKeyError
// as soon as more than one element has the same key.
func ToMapNoDuplicateKeys[T any, K comparable, V any](s *Sequence[T], key MapperFunc[T, K], value MapperFunc[T, V]) (map[K]V, error) {
	result := make(map[K]V, s.Count())

	for _, elem := range s.elems {
		key := key(elem)

		if _, ok := result[key]; ok {
			return nil, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     key,
			}
		}

		result[key] = value(elem)
	}

	return result, nil
}

// ToMultiMap returns a map of the elements of s grouped by key.
// All elements are kept, in order.
func ToMultiMap[T any, K comparable](s *Sequence[T], key MapperFunc[T, K]) map[K][]T {
	return ToMultiMapSelect(s, key, Identity[T]())
}

// ToMultiMapSelect returns a map of the results of calling value for each element of s, grouped by key.
// All values are kept, in order.
func ToMultiMapSelect[T any, K comparable, V any](s *Sequence[T], key MapperFunc[T, K], value MapperFunc[T, V]) map[K][]V {
	return Reduce(s, map[K][]V{}, CollectGroup(key, value))
}

// Partition returns a map of the elements of s for which pred returns true (key true)
// and false (key false), in order.
func Partition[T any](s *Sequence[T], pred PredicateFunc[T]) map[bool][]T {
	return Reduce(s, map[bool][]T{}, CollectPartition(pred, Identity[T]()))
}

// SortedKeys returns the keys of m in ascending order.
// Use it to iterate over a map exported by ToMap or ToMultiMap in key order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)

	return keys
}
