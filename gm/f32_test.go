package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestF32(t *testing.T) {
	require.Equal(t, f32.Vec2{1, 2}, Vec2fToF32(Vec2f{X: 1, Y: 2}))
	require.Equal(t, Vec2f{X: 1, Y: 2}, Vec2fFromF32(f32.Vec2{1, 2}))

	require.Equal(t, f32.Vec3{1, 2, 3}, Vec3fToF32(Vec3f{X: 1, Y: 2, Z: 3}))
	require.Equal(t, Vec3f{X: 1, Y: 2, Z: 3}, Vec3fFromF32(f32.Vec3{1, 2, 3}))

	p := PointOf[float32](1, 2, 3, 1)
	require.Equal(t, f32.Vec4{1, 2, 3, 1}, PointfToF32(p))
	require.Equal(t, p, PointfFromF32(PointfToF32(p)))
}
