package golinq

import (
	"testing"

	"github.com/matryer/is"
)

func TestPower2(t *testing.T) {
	is := is.New(t)

	is.Equal(Power2(-7), 49)
	is.Equal(Power2(1.5), 2.25)
	is.Equal(Power2(uint8(15)), uint8(225))
}

func TestSqrt(t *testing.T) {
	is := is.New(t)

	is.Equal(Sqrt(452), 21)
	is.Equal(Sqrt(uint64(99)), uint64(9))
	is.Equal(Sqrt(int64(100)), int64(10))
	is.Equal(Sqrt(6.25), 2.5)
	is.Equal(Sqrt(float32(2.25)), float32(1.5))
}
