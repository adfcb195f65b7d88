package assert

import (
	"fmt"
)

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

// InDelta panics if actual differs from expected by more than delta.
func InDelta(expected, actual, delta float64, msg string) {
	diff := expected - actual
	if diff < -delta || diff > delta {
		panic(fmt.Sprintf("%s: expected %v, got %v (delta %v)", msg, expected, actual, delta))
	}
}
