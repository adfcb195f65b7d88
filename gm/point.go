package gm

import "fmt"

type Point = Point3D[float64]

// Point3D is a position in homogeneous coordinates. W usually stays
// at one and is never changed by translation.
type Point3D[S Scalar] struct {
	X, Y, Z, W S
}

// PointSplat returns a point with all four coordinates set to s.
func PointSplat[S Scalar](s S) Point3D[S] {
	return Point3D[S]{X: s, Y: s, Z: s, W: s}
}

func PointOf[S Scalar](x, y, z, w S) Point3D[S] {
	return Point3D[S]{X: x, Y: y, Z: z, W: w}
}

func PointFromArray[S Scalar](values [4]S) Point3D[S] {
	return Point3D[S]{X: values[0], Y: values[1], Z: values[2], W: values[3]}
}

// Translate returns p moved by the displacement v. The w
// coordinate is copied from p.
func Translate[S Scalar](p Point3D[S], v Vector3[S]) Point3D[S] {
	return Point3D[S]{
		X: p.X + v.X,
		Y: p.Y + v.Y,
		Z: p.Z + v.Z,
		W: p.W,
	}
}

func (p Point3D[S]) Translated(v Vector3[S]) Point3D[S] {
	return Translate(p, v)
}

// Vector returns the displacement of p from the origin, ignoring w.
func (p Point3D[S]) Vector() Vector3[S] {
	return Vector3[S]{X: p.X, Y: p.Y, Z: p.Z}
}

func (p Point3D[S]) Array() [4]S {
	return [4]S{p.X, p.Y, p.Z, p.W}
}

func (p Point3D[S]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", p.X, p.Y, p.Z, p.W)
}
