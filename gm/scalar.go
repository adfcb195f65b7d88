package gm

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar lists the element types a vector can hold.
//
// Integer types are accepted, but Length, Unit and Normalize truncate
// towards zero for them.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the subset of Scalar that normalizes without truncation.
type Float interface {
	~float32 | ~float64
}

func sqrt[S Scalar](value S) S {
	if f, ok := any(value).(float32); ok {
		return S(math32.Sqrt(f))
	}

	return S(math.Sqrt(float64(value)))
}

// norm returns the euclidean norm of the given components. For floating
// point types the components are scaled by the largest magnitude first,
// so the squares neither overflow nor underflow.
func norm[S Scalar](components ...S) S {
	if !isFloat[S]() {
		var sum S
		for _, c := range components {
			sum += c * c
		}

		return sqrt(sum)
	}

	var scale S
	for _, c := range components {
		scale = max(scale, abs(c))
	}

	if scale == 0 || math.IsInf(float64(scale), 0) || math.IsNaN(float64(scale)) {
		return scale
	}

	var sum S
	for _, c := range components {
		c /= scale
		sum += c * c
	}

	return scale * sqrt(sum)
}

// isFloat reports whether S is a floating point type. Integer
// division truncates one half to zero.
func isFloat[S Scalar]() bool {
	one := S(1)
	return one/2 != 0
}

func abs[S Scalar](value S) S {
	if value < 0 {
		return -value
	}

	return value
}
