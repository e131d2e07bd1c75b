package golinq

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestCollectSlice(t *testing.T) {
	is := is.New(t)

	collect := CollectSlice[int]()

	ints := []int{}
	ints = collect(ints, 1)
	ints = collect(ints, 2)
	ints = collect(ints, 3)

	is.Equal(ints, []int{1, 2, 3})
}

func TestCollectMap_DuplicateKey(t *testing.T) {
	is := is.New(t)

	collect := CollectMap(Identity[int](), strconv.Itoa)

	mapp := map[int]string{}
	mapp = collect(mapp, 1)
	mapp = collect(mapp, 2)
	mapp = collect(mapp, 3)
	mapp = collect(mapp, 3)

	is.Equal(mapp, map[int]string{
		1: "1",
		2: "2",
		3: "3",
	})
}

func TestToSlice(t *testing.T) {
	is := is.New(t)

	ints := sample()

	elems := ints.ToSlice()
	elems[0] = 100

	is.Equal(ints.ToSlice(), []int{0, 13, 40, 12, 50, 12, 60})
}

func TestToSliceSelect(t *testing.T) {
	is := is.New(t)

	strs := ToSliceSelect(Of(1, 2, 3), strconv.Itoa)

	is.Equal(strs, []string{"1", "2", "3"})
}

func TestToMap(t *testing.T) {
	is := is.New(t)

	mapp := ToMap(Of("foo", "bar", "fizz", "buzz"), firstLetter)

	is.Equal(mapp, map[string]string{
		"f": "foo",
		"b": "bar",
	})
}

func TestToMapSelect(t *testing.T) {
	is := is.New(t)

	mapp := ToMapSelect(sample(), Identity[int](), func(elem int) int {
		return elem / 10
	})

	is.Equal(mapp, map[int]int{
		0:  0,
		13: 1,
		40: 4,
		12: 1,
		50: 5,
		60: 6,
	})
}

func TestToMapNoDuplicateKeys(t *testing.T) {
	is := is.New(t)

	mapp, err := ToMapNoDuplicateKeys(Of(1, 2, 3), strconv.Itoa, Identity[int]())

	is.NoErr(err)
	is.Equal(mapp, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})

	mapp, err = ToMapNoDuplicateKeys(Of(1, 2, 3, 3, 4), strconv.Itoa, Identity[int]())

	is.True(mapp == nil)

	var cause *DuplicateKeyError[int, string]

	is.True(errors.As(err, &cause))
	is.Equal(cause.Element, 3)
	is.Equal(cause.Key, "3")
}

func TestToMultiMap(t *testing.T) {
	is := is.New(t)

	mapp := ToMultiMap(Of("foo", "bar", "fizz", "buzz", "bar"), firstLetter)

	is.Equal(mapp, map[string][]string{
		"f": {"foo", "fizz"},
		"b": {"bar", "buzz", "bar"},
	})
}

func TestToMultiMapSelect(t *testing.T) {
	is := is.New(t)

	mapp := ToMultiMapSelect(sample(), evenOddStr, strconv.Itoa)

	is.Equal(mapp, map[string][]string{
		"even": {"0", "40", "12", "50", "12", "60"},
		"odd":  {"13"},
	})
}

func TestPartition(t *testing.T) {
	is := is.New(t)

	mapp := Partition(Of(1, 2, 3, 4, 5), even)

	is.Equal(mapp, map[bool][]int{
		false: {1, 3, 5},
		true:  {2, 4},
	})
}

func TestSortedKeys(t *testing.T) {
	is := is.New(t)

	mapp := ToMultiMap(sample(), func(elem int) int {
		return elem % 10
	})

	is.Equal(SortedKeys(mapp), []int{0, 2, 3})
	is.Equal(SortedKeys(map[string]int{}), []string{})
}

func firstLetter(elem string) string {
	return elem[:1]
}

func evenOddStr(elem int) string {
	if elem%2 != 0 {
		return "odd"
	}

	return "even"
}
