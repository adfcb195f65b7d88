package gm

import (
	"fmt"

	"github.com/oliverbestmann/geomath/internal/assert"
)

type Vec3 = Vector3[float64]
type Vec3f = Vector3[float32]
type IVec3 = Vector3[int32]

var Vec3Zero = Vec3{}
var Vec3One = Vec3{X: 1, Y: 1, Z: 1}

// Vector3 is a direction or displacement in space.
type Vector3[S Scalar] struct {
	X, Y, Z S
}

func Vec3Of[S Scalar](x, y, z S) Vector3[S] {
	return Vector3[S]{X: x, Y: y, Z: z}
}

// Vec3Splat returns a vector with all components set to s.
func Vec3Splat[S Scalar](s S) Vector3[S] {
	return Vector3[S]{X: s, Y: s, Z: s}
}

func Vec3FromArray[S Scalar](values [3]S) Vector3[S] {
	return Vector3[S]{X: values[0], Y: values[1], Z: values[2]}
}

func (v Vector3[S]) Equal(other Vector3[S]) bool {
	return v == other
}

func (v Vector3[S]) ApproxEqual(other Vector3[S], eps S) bool {
	return abs(v.X-other.X) <= eps &&
		abs(v.Y-other.Y) <= eps &&
		abs(v.Z-other.Z) <= eps
}

// At returns the component at the given index, in the order X, Y, Z.
func (v Vector3[S]) At(index int) (S, error) {
	switch index {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		return 0, indexError(index, 3)
	}
}

func (v Vector3[S]) MustAt(index int) S {
	value, err := v.At(index)
	assert.NoError(err)
	return value
}

func (v *Vector3[S]) Ptr(index int) (*S, error) {
	switch index {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	case 2:
		return &v.Z, nil
	default:
		return nil, indexError(index, 3)
	}
}

func (v *Vector3[S]) Set(index int, value S) error {
	ptr, err := v.Ptr(index)
	if err != nil {
		return err
	}

	*ptr = value
	return nil
}

func (v Vector3[S]) Array() [3]S {
	return [3]S{v.X, v.Y, v.Z}
}

func (v Vector3[S]) AppendTo(dst []S) []S {
	return append(dst, v.X, v.Y, v.Z)
}

// XY drops the z component.
func (v Vector3[S]) XY() Vector2[S] {
	return Vector2[S]{X: v.X, Y: v.Y}
}

func (v Vector3[S]) Neg() Vector3[S] {
	return Vector3[S]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3[S]) Add(other Vector3[S]) Vector3[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vector3[S]) Sub(other Vector3[S]) Vector3[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vector3[S]) Mul(scalar S) Vector3[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vector3[S]) MulEach(other Vector3[S]) Vector3[S] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v Vector3[S]) Div(scalar S) Vector3[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v *Vector3[S]) AddAssign(other Vector3[S]) *Vector3[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v *Vector3[S]) SubAssign(other Vector3[S]) *Vector3[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v *Vector3[S]) MulAssign(scalar S) *Vector3[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v *Vector3[S]) MulEachAssign(other Vector3[S]) *Vector3[S] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v *Vector3[S]) DivAssign(scalar S) *Vector3[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v Vector3[S]) Length() S {
	return norm(v.X, v.Y, v.Z)
}

func (v Vector3[S]) LengthSq() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales v to unit length. A zero vector is left
// unchanged and ErrDegenerateVector is returned.
func (v *Vector3[S]) Normalize() error {
	length := v.Length()
	if length == 0 {
		return ErrDegenerateVector
	}

	v.X /= length
	v.Y /= length
	v.Z /= length
	return nil
}

func (v Vector3[S]) Unit() (Vector3[S], error) {
	err := v.Normalize()
	return v, err
}

func (v Vector3[S]) Dot(other Vector3[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v × other. v is not modified.
func (v Vector3[S]) Cross(other Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// CrossInPlace replaces v with the cross product v × other and returns v.
// All components of the result are computed from the previous value of v.
func (v *Vector3[S]) CrossInPlace(other Vector3[S]) *Vector3[S] {
	*v = v.Cross(other)
	return v
}

func (v Vector3[S]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}

func Dot3[S Scalar](a, b Vector3[S]) S {
	return a.Dot(b)
}

func Cross3[S Scalar](a, b Vector3[S]) Vector3[S] {
	return a.Cross(b)
}
