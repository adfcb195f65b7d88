package gm

import "golang.org/x/image/math/f32"

// The following functions convert between float32 vectors and the array
// types of golang.org/x/image/math/f32, as expected by most graphics APIs.

func Vec2fToF32(v Vec2f) f32.Vec2 {
	return v.Array()
}

func Vec2fFromF32(v f32.Vec2) Vec2f {
	return Vec2FromArray([2]float32(v))
}

func Vec3fToF32(v Vec3f) f32.Vec3 {
	return v.Array()
}

func Vec3fFromF32(v f32.Vec3) Vec3f {
	return Vec3FromArray([3]float32(v))
}

// PointfToF32 returns the homogeneous coordinates of p as a f32.Vec4.
func PointfToF32(p Point3D[float32]) f32.Vec4 {
	return p.Array()
}

func PointfFromF32(v f32.Vec4) Point3D[float32] {
	return PointFromArray([4]float32(v))
}
