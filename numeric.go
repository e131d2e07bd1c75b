package golinq

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by every integer and floating-point type.
// Arithmetic operations such as Sum, Average and Variance require it.
type Number interface {
	constraints.Integer | constraints.Float
}

// Power2 returns v*v.
func Power2[T Number](v T) T {
	return v * v
}

// Sqrt returns the square root of v in T.
// For integer types the root is computed in float64 and truncated toward zero.
func Sqrt[T Number](v T) T {
	return T(math.Sqrt(float64(v)))
}
