// Package gmcp converts between gm vectors and the vector type
// of the chipmunk2d physics engine.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/geomath/gm"
)

func ToCp(v gm.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func FromCp(v cp.Vector) gm.Vec2 {
	return gm.Vec2{X: v.X, Y: v.Y}
}

// ToCpVerts converts a polygon outline, e.g. to pass it to cp.NewPolyShape.
func ToCpVerts(points []gm.Vec2) []cp.Vector {
	verts := make([]cp.Vector, 0, len(points))
	for _, point := range points {
		verts = append(verts, ToCp(point))
	}

	return verts
}

func FromCpVerts(verts []cp.Vector) []gm.Vec2 {
	points := make([]gm.Vec2, 0, len(verts))
	for _, vert := range verts {
		points = append(points, FromCp(vert))
	}

	return points
}
