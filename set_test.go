package golinq

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestDistinct(t *testing.T) {
	is := is.New(t)

	is.Equal(Distinct(Of(1, 1, 2, 2, 2, 3, 1, 1)).ToSlice(), []int{1, 2, 3, 1})
	is.Equal(Distinct(sample()).ToSlice(), []int{0, 13, 40, 12, 50, 12, 60})
	is.Equal(Distinct(OrderBy(sample())).ToSlice(), []int{0, 12, 13, 40, 50, 60})
	is.Equal(Distinct(Of[int]()).ToSlice(), []int{})
}

func TestDistinctFunc(t *testing.T) {
	is := is.New(t)

	strs := Of("a", "A", "b", "B", "b", "a").DistinctFunc(strings.EqualFold)

	is.Equal(strs.ToSlice(), []string{"a", "b", "a"})
}

func TestConcat(t *testing.T) {
	is := is.New(t)

	ints1 := Of(3, 1, 2)
	ints2 := Of(9, 7)

	ints := ints1.Concat(ints2)

	is.Equal(ints.ToSlice(), []int{3, 1, 2, 9, 7})
	is.Equal(ints1.ToSlice(), []int{3, 1, 2})
	is.Equal(ints2.ToSlice(), []int{9, 7})
}

func TestExcept(t *testing.T) {
	is := is.New(t)

	ints := Except(sample(), Of(60, 0, 99, 13))

	is.Equal(ints.ToSlice(), []int{12, 12, 40, 50})
	is.Equal(Differ(sample(), Of(60, 0, 99, 13)).ToSlice(), []int{12, 12, 40, 50})
	is.Equal(Except(sample(), Of(12)).ToSlice(), []int{0, 12, 13, 40, 50, 60})
	is.Equal(Except(Of[int](), sample()).ToSlice(), []int{})
}

func TestUnion(t *testing.T) {
	is := is.New(t)

	ints := Union(Of(5, 1, 3), Of(4, 3, 2))

	is.Equal(ints.ToSlice(), []int{1, 2, 3, 4, 5})
	is.Equal(Union(sample(), Of(70, 12)).ToSlice(), []int{0, 12, 12, 13, 40, 50, 60, 70})
	is.Equal(Union(Of[int](), Of(2, 1)).ToSlice(), []int{1, 2})
}

func TestIntersect(t *testing.T) {
	is := is.New(t)

	ints := Intersect(sample(), Of(60, 1, 12, 40))

	is.Equal(ints.ToSlice(), []int{12, 40, 60})
	is.Equal(Intersect(sample(), Of(12, 12, 12)).ToSlice(), []int{12, 12})
	is.Equal(Intersect(sample(), Of(1, 2)).ToSlice(), []int{})
}

func TestSetFunc(t *testing.T) {
	is := is.New(t)

	byLength := func(a string, b string) bool {
		return len(a) < len(b)
	}

	strs := Of("ccc", "a", "bb")
	other := Of("xx", "yyyy")

	is.Equal(strs.ExceptFunc(other, byLength).ToSlice(), []string{"a", "ccc"})
	is.Equal(strs.DifferFunc(other, byLength).ToSlice(), []string{"a", "ccc"})
	is.Equal(strs.UnionFunc(other, byLength).ToSlice(), []string{"a", "bb", "ccc", "yyyy"})
	is.Equal(strs.IntersectFunc(other, byLength).ToSlice(), []string{"bb"})
}
