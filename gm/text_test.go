package gm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVec2(t *testing.T) {
	tests := []struct {
		input    string
		expected Vec2
	}{
		{"3 4", Vec2{X: 3, Y: 4}},
		{"<3, 4>", Vec2{X: 3, Y: 4}},
		{"  -1.5\t2e3\n", Vec2{X: -1.5, Y: 2000}},
		{"<0,0>", Vec2{}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			v, err := ParseVec2[float64](test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, v)
		})
	}
}

func TestParseVec2_Errors(t *testing.T) {
	_, err := ParseVec2[float64]("3")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ParseVec2[float64]("")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ParseVec2[float64]("1 2 3")
	require.ErrorIs(t, err, ErrTrailingInput)

	_, err = ParseVec2[float64]("1 abc")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "abc", parseErr.Token)
	require.Equal(t, "1 abc", parseErr.Input)

	// the value does not fit into an int8
	_, err = ParseVec2[int8]("1 300")
	require.ErrorIs(t, err, strconv.ErrRange)

	// integer vectors do not accept fractions
	_, err = ParseVec2[int32]("1.5 2")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseVec3(t *testing.T) {
	v, err := ParseVec3[float64]("<1, 2.5, -3>")
	require.NoError(t, err)
	require.Equal(t, Vec3{X: 1, Y: 2.5, Z: -3}, v)

	iv, err := ParseVec3[int32]("7 8 9")
	require.NoError(t, err)
	require.Equal(t, IVec3{X: 7, Y: 8, Z: 9}, iv)

	_, err = ParseVec3[float64]("1 2")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint[float64]("<1, 2, 3, 1>")
	require.NoError(t, err)
	require.Equal(t, Point{X: 1, Y: 2, Z: 3, W: 1}, p)
}

func TestText_RoundTrip(t *testing.T) {
	v2, err := ParseVec2[float64](Vec2Of(3.0, 4.0).String())
	require.NoError(t, err)
	require.Equal(t, Vec2{X: 3, Y: 4}, v2)

	for range 100 {
		expected := RandomVec3[float64]().Mul(1000)
		v3, err := ParseVec3[float64](expected.String())
		require.NoError(t, err)
		require.Equal(t, expected, v3)

		expected32 := RandomVec2[float32]()
		v2f, err := ParseVec2[float32](expected32.String())
		require.NoError(t, err)
		require.Equal(t, expected32, v2f)
	}

	p := PointOf(1.5, -2.0, 3.0, 1.0)
	parsed, err := ParsePoint[float64](p.String())
	require.NoError(t, err)
	require.Equal(t, p, parsed)
}

func TestVector_Scan(t *testing.T) {
	var a, b Vec2
	_, err := fmt.Sscan("<1, 2> 3 4", &a, &b)
	require.NoError(t, err)
	require.Equal(t, Vec2{X: 1, Y: 2}, a)
	require.Equal(t, Vec2{X: 3, Y: 4}, b)

	var v Vec3
	var p Point
	_, err = fmt.Fscan(strings.NewReader("1 2 3\n<4, 5, 6, 1>"), &v, &p)
	require.NoError(t, err)
	require.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, v)
	require.Equal(t, Point{X: 4, Y: 5, Z: 6, W: 1}, p)

	// a stream read stops after the last component
	var c Vec2
	var rest string
	_, err = fmt.Sscan("<5, 6> tail", &c, &rest)
	require.NoError(t, err)
	require.Equal(t, Vec2{X: 5, Y: 6}, c)
	require.Equal(t, "tail", rest)
}

func TestVector_ScanErrors(t *testing.T) {
	var v Vec2

	_, err := fmt.Sscan("1", &v)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = fmt.Sscan("1 x", &v)
	require.ErrorIs(t, err, strconv.ErrSyntax)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "x", parseErr.Token)
}

func TestParse_ErrorReturnsZeroValue(t *testing.T) {
	v2, err := ParseVec2[float64]("1 abc")
	require.Error(t, err)
	require.Equal(t, Vec2{}, v2)

	v3, err := ParseVec3[float64]("<1, 2, x>")
	require.Error(t, err)
	require.Equal(t, Vec3{}, v3)

	p, err := ParsePoint[float64]("1 2 3 4 5")
	require.Error(t, err)
	require.Equal(t, Point{}, p)

	// a failed scan leaves the target untouched
	v := Vec2Of(7.0, 8.0)
	_, err = fmt.Sscan("1 x", &v)
	require.Error(t, err)
	require.Equal(t, Vec2{X: 7, Y: 8}, v)
}
