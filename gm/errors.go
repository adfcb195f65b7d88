package gm

import (
	"errors"
	"fmt"
)

// ErrDegenerateVector is returned when a zero length vector is normalized.
var ErrDegenerateVector = errors.New("degenerate vector: length is zero")

// ErrTrailingInput is wrapped by a ParseError if the input contains
// more tokens than the parsed type has components.
var ErrTrailingInput = errors.New("unexpected trailing input")

// IndexOutOfRangeError is returned when accessing a component
// outside of [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("component index %d out of range [0, %d)", e.Index, e.Len)
}

// ParseError describes a failure to read a vector from text.
type ParseError struct {
	// Input holds the complete input, if known.
	Input string

	// Token is the offending token. It is empty if the input
	// ended before all components were read.
	Token string

	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Token != "":
		return fmt.Sprintf("parse vector %q: token %q: %s", e.Input, e.Token, e.Err)
	case e.Input != "":
		return fmt.Sprintf("parse vector %q: %s", e.Input, e.Err)
	default:
		return fmt.Sprintf("parse vector: %s", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func indexError(index, n int) error {
	return &IndexOutOfRangeError{Index: index, Len: n}
}
