package gm

import (
	"fmt"

	"github.com/oliverbestmann/geomath/internal/assert"
)

type Vec2 = Vector2[float64]
type Vec2f = Vector2[float32]
type IVec2 = Vector2[int32]

var Vec2Zero = Vec2{}
var Vec2One = Vec2{X: 1, Y: 1}

// Vector2 is a direction or displacement in the plane.
type Vector2[S Scalar] struct {
	X, Y S
}

func Vec2Of[S Scalar](x, y S) Vector2[S] {
	return Vector2[S]{X: x, Y: y}
}

// Vec2Splat returns a vector with both components set to s.
func Vec2Splat[S Scalar](s S) Vector2[S] {
	return Vector2[S]{X: s, Y: s}
}

func Vec2FromArray[S Scalar](values [2]S) Vector2[S] {
	return Vector2[S]{X: values[0], Y: values[1]}
}

func (v Vector2[S]) Equal(other Vector2[S]) bool {
	return v == other
}

// ApproxEqual reports whether each component differs by at most eps.
func (v Vector2[S]) ApproxEqual(other Vector2[S], eps S) bool {
	return abs(v.X-other.X) <= eps && abs(v.Y-other.Y) <= eps
}

// At returns the component at the given index, 0 being X and 1 being Y.
func (v Vector2[S]) At(index int) (S, error) {
	switch index {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	default:
		return 0, indexError(index, 2)
	}
}

// MustAt is like At, but panics if the index is out of range.
func (v Vector2[S]) MustAt(index int) S {
	value, err := v.At(index)
	assert.NoError(err)
	return value
}

// Ptr returns a pointer to the component at the given index.
func (v *Vector2[S]) Ptr(index int) (*S, error) {
	switch index {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	default:
		return nil, indexError(index, 2)
	}
}

func (v *Vector2[S]) Set(index int, value S) error {
	ptr, err := v.Ptr(index)
	if err != nil {
		return err
	}

	*ptr = value
	return nil
}

// Array returns a copy of the components in index order.
func (v Vector2[S]) Array() [2]S {
	return [2]S{v.X, v.Y}
}

// AppendTo appends the components to dst, e.g. to build a flat vertex buffer.
func (v Vector2[S]) AppendTo(dst []S) []S {
	return append(dst, v.X, v.Y)
}

// Extend returns a three dimensional vector using the given z component.
func (v Vector2[S]) Extend(z S) Vector3[S] {
	return Vector3[S]{X: v.X, Y: v.Y, Z: z}
}

func (v Vector2[S]) Neg() Vector2[S] {
	return Vector2[S]{X: -v.X, Y: -v.Y}
}

func (v Vector2[S]) Add(other Vector2[S]) Vector2[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vector2[S]) Sub(other Vector2[S]) Vector2[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vector2[S]) Mul(scalar S) Vector2[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vector2[S]) MulEach(other Vector2[S]) Vector2[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vector2[S]) Div(scalar S) Vector2[S] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

// AddAssign adds other to v in place and returns v to allow chaining.
func (v *Vector2[S]) AddAssign(other Vector2[S]) *Vector2[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v *Vector2[S]) SubAssign(other Vector2[S]) *Vector2[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v *Vector2[S]) MulAssign(scalar S) *Vector2[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v *Vector2[S]) MulEachAssign(other Vector2[S]) *Vector2[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v *Vector2[S]) DivAssign(scalar S) *Vector2[S] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vector2[S]) Length() S {
	return norm(v.X, v.Y)
}

// LengthSq returns the squared length. Prefer it over Length
// when only comparing magnitudes.
func (v Vector2[S]) LengthSq() S {
	return v.X*v.X + v.Y*v.Y
}

// Normalize scales v to unit length. A zero vector is left
// unchanged and ErrDegenerateVector is returned.
func (v *Vector2[S]) Normalize() error {
	length := v.Length()
	if length == 0 {
		return ErrDegenerateVector
	}

	v.X /= length
	v.Y /= length
	return nil
}

// Unit returns a copy of v scaled to unit length.
func (v Vector2[S]) Unit() (Vector2[S], error) {
	err := v.Normalize()
	return v, err
}

func (v Vector2[S]) Dot(other Vector2[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns X*other.Y + other.X*Y.
//
// Note the plus sign: this is not the planar cross product. Use PerpDot
// for the z component of the 3d cross product of both vectors.
func (v Vector2[S]) Cross(other Vector2[S]) S {
	return v.X*other.Y + other.X*v.Y
}

// PerpDot returns the z component of the cross product of v and other,
// both extended into 3d with a z of zero.
func (v Vector2[S]) PerpDot(other Vector2[S]) S {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector2[S]) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

func Dot2[S Scalar](a, b Vector2[S]) S {
	return a.Dot(b)
}

func Cross2[S Scalar](a, b Vector2[S]) S {
	return a.Cross(b)
}
