package golinq

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestFrom(t *testing.T) {
	is := is.New(t)

	ints := From([]int{1, 2}, []int{3, 4, 5})

	is.Equal(ints.ToSlice(), []int{1, 2, 3, 4, 5})
}

func TestFrom_Snapshot(t *testing.T) {
	is := is.New(t)

	src := []int{1, 2, 3}
	ints := From(src)

	src[0] = 100

	is.Equal(ints.Count(), 3)
	is.Equal(ints.ToSlice(), []int{1, 2, 3})
}

func TestFrom_Empty(t *testing.T) {
	is := is.New(t)

	ints := From[int]()

	is.True(ints.Empty())
	is.Equal(ints.ToSlice(), []int{})
}

func TestOf(t *testing.T) {
	is := is.New(t)

	strs := Of("foo", "bar", "baz")

	is.Equal(strs.ToSlice(), []string{"foo", "bar", "baz"})
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ch1 := make(chan int, 2)
	ch1 <- 1
	ch1 <- 2
	close(ch1)

	ch2 := make(chan int)

	go func() {
		defer close(ch2)

		for _, i := range []int{3, 4, 5} {
			ch2 <- i
		}
	}()

	ints := FromChannel(ch1, ch2)

	is.Equal(ints.ToSlice(), []int{1, 2, 3, 4, 5})
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	ints1 := Of(1, 2)
	ints2 := Of(3, 4, 5)

	ints := Join(ints1, Of[int](), ints2)

	is.Equal(ints.ToSlice(), []int{1, 2, 3, 4, 5})
	is.Equal(ints1.ToSlice(), []int{1, 2})
	is.Equal(ints2.ToSlice(), []int{3, 4, 5})
}

func TestRange(t *testing.T) {
	tests := []struct {
		givenFrom int
		givenTo   int
		want      []int
	}{
		{
			givenFrom: 1,
			givenTo:   5,
			want:      []int{1, 2, 3, 4, 5},
		},
		{
			givenFrom: -2,
			givenTo:   1,
			want:      []int{-2, -1, 0, 1},
		},
		{
			givenFrom: 3,
			givenTo:   3,
			want:      []int{3},
		},
		{
			givenFrom: 5,
			givenTo:   4,
			want:      []int{},
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			ints := Range(test.givenFrom, test.givenTo)

			is.Equal(ints.ToSlice(), test.want)
		})
	}
}

func TestRange_Sum(t *testing.T) {
	is := is.New(t)

	for _, bounds := range [][2]int{{1, 100}, {-50, 50}, {7, 7}, {10, 1000}} {
		from, to := bounds[0], bounds[1]
		num := to - from + 1

		ints := Range(from, to)

		is.Equal(ints.Count(), num)
		is.Equal(Sum(ints), num*(from+to)/2)
	}
}

func TestRange_TypeBounds(t *testing.T) {
	is := is.New(t)

	bytes := Range[uint8](250, 255)
	is.Equal(bytes.ToSlice(), []uint8{250, 251, 252, 253, 254, 255})

	int8s := Range[int8](-128, 127)
	is.Equal(int8s.Count(), 256)
	is.Equal(int8s.LastOr(0), int8(127))
}

func TestRepeat(t *testing.T) {
	is := is.New(t)

	is.Equal(Repeat("x", 3).ToSlice(), []string{"x", "x", "x"})
	is.Equal(Repeat(1, 0).ToSlice(), []int{})
	is.Equal(Repeat(1, -1).ToSlice(), []int{})
}
