// Package gm (stands for geometry math) provides generic vector primitives.
//
// It includes a 2d vector type Vector2, a 3d vector type Vector3 and a
// homogeneous point type Point3D. All of them are plain values, generic
// over the element type and safe to copy.
//
// Operations that can fail on malformed input, like indexed access,
// normalization of a zero vector or parsing, return an error instead of
// producing garbage.
package gm
