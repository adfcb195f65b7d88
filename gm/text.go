package gm

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// ParseVec2 parses a vector as written by Vector2.String. Plain
// whitespace separated components like "3 4" are accepted too.
func ParseVec2[S Scalar](input string) (Vector2[S], error) {
	var v Vector2[S]
	if err := parseComponents(input, &v.X, &v.Y); err != nil {
		return Vector2[S]{}, err
	}

	return v, nil
}

// ParseVec3 parses a vector as written by Vector3.String.
func ParseVec3[S Scalar](input string) (Vector3[S], error) {
	var v Vector3[S]
	if err := parseComponents(input, &v.X, &v.Y, &v.Z); err != nil {
		return Vector3[S]{}, err
	}

	return v, nil
}

// ParsePoint parses a point as written by Point3D.String.
func ParsePoint[S Scalar](input string) (Point3D[S], error) {
	var p Point3D[S]
	if err := parseComponents(input, &p.X, &p.Y, &p.Z, &p.W); err != nil {
		return Point3D[S]{}, err
	}

	return p, nil
}

// Scan implements fmt.Scanner. It reads two components
// like ParseVec2 and stops after the second one.
func (v *Vector2[S]) Scan(state fmt.ScanState, verb rune) error {
	return scanComponents(state, &v.X, &v.Y)
}

func (v *Vector3[S]) Scan(state fmt.ScanState, verb rune) error {
	return scanComponents(state, &v.X, &v.Y, &v.Z)
}

func (p *Point3D[S]) Scan(state fmt.ScanState, verb rune) error {
	return scanComponents(state, &p.X, &p.Y, &p.Z, &p.W)
}

func parseComponents[S Scalar](input string, components ...*S) error {
	tokens := strings.FieldsFunc(input, isSeparator)

	if len(tokens) < len(components) {
		return &ParseError{Input: input, Err: io.ErrUnexpectedEOF}
	}

	if len(tokens) > len(components) {
		return &ParseError{Input: input, Token: tokens[len(components)], Err: ErrTrailingInput}
	}

	values := make([]S, len(tokens))
	for idx, token := range tokens {
		value, err := parseScalar[S](token)
		if err != nil {
			return &ParseError{Input: input, Token: token, Err: err}
		}

		values[idx] = value
	}

	for idx, value := range values {
		*components[idx] = value
	}

	return nil
}

func scanComponents[S Scalar](state fmt.ScanState, components ...*S) error {
	values := make([]S, len(components))
	for idx := range components {
		if err := skipSeparators(state); err != nil {
			return &ParseError{Err: err}
		}

		token, err := state.Token(false, isNumeric)
		if err != nil {
			return &ParseError{Err: err}
		}

		if len(token) == 0 {
			return &ParseError{Err: io.ErrUnexpectedEOF}
		}

		value, err := parseScalar[S](string(token))
		if err != nil {
			return &ParseError{Token: string(token), Err: err}
		}

		values[idx] = value
	}

	for idx, value := range values {
		*components[idx] = value
	}

	// consume the closing bracket if it directly follows the last component
	r, _, err := state.ReadRune()
	if err == nil && r != '>' {
		_ = state.UnreadRune()
	}

	return nil
}

func skipSeparators(state fmt.ScanState) error {
	for {
		r, _, err := state.ReadRune()
		switch {
		case errors.Is(err, io.EOF):
			return io.ErrUnexpectedEOF
		case err != nil:
			return err
		}

		if !isSeparator(r) {
			return state.UnreadRune()
		}
	}
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '<' || r == '>'
}

func isNumeric(r rune) bool {
	return r == '+' || r == '-' || r == '.' || unicode.IsDigit(r) || unicode.IsLetter(r)
}

func parseScalar[S Scalar](token string) (S, error) {
	ty := reflect.TypeFor[S]()

	switch ty.Kind() {
	case reflect.Float32, reflect.Float64:
		value, err := strconv.ParseFloat(token, ty.Bits())
		return S(value), err

	default:
		value, err := strconv.ParseInt(token, 10, ty.Bits())
		return S(value), err
	}
}
