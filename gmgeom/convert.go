// Package gmgeom converts gm vectors and points from and to
// the coordinates of github.com/twpayne/go-geom.
package gmgeom

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/geomath/gm"
	"github.com/twpayne/go-geom"
)

// ErrPointAtInfinity is returned for a homogeneous point with w == 0,
// which has no cartesian representation.
var ErrPointAtInfinity = errors.New("point at infinity")

func Vec2ToCoord(v gm.Vec2) geom.Coord {
	return geom.Coord{v.X, v.Y}
}

func Vec3ToCoord(v gm.Vec3) geom.Coord {
	return geom.Coord{v.X, v.Y, v.Z}
}

// Vec2FromCoord reads the first two values of the coordinate.
func Vec2FromCoord(c geom.Coord) (gm.Vec2, error) {
	if len(c) < 2 {
		return gm.Vec2{}, fmt.Errorf("coordinate %v: %w", c, &gm.IndexOutOfRangeError{Index: len(c), Len: len(c)})
	}

	return gm.Vec2{X: c[0], Y: c[1]}, nil
}

func Vec3FromCoord(c geom.Coord) (gm.Vec3, error) {
	if len(c) < 3 {
		return gm.Vec3{}, fmt.Errorf("coordinate %v: %w", c, &gm.IndexOutOfRangeError{Index: len(c), Len: len(c)})
	}

	return gm.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// ToPoint divides by w and returns the cartesian position
// of p as a geom.Point with layout XYZ.
func ToPoint(p gm.Point) (*geom.Point, error) {
	if p.W == 0 {
		return nil, fmt.Errorf("convert %s: %w", p, ErrPointAtInfinity)
	}

	pos := p.Vector().Div(p.W)
	return geom.NewPointFlat(geom.XYZ, pos.AppendTo(nil)), nil
}

// FromPoint returns the position of a geom.Point with w set to one.
// A missing z coordinate is treated as zero.
func FromPoint(point *geom.Point) gm.Point {
	coords := point.Coords()

	var z float64
	if point.Layout().ZIndex() != -1 {
		z = coords[point.Layout().ZIndex()]
	}

	return gm.PointOf(coords[0], coords[1], z, 1)
}
