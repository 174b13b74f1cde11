// Package geom maps scene coordinates onto the canvas.
//
// Scene files address cells as (row, col) with row 0 at the top. The canvas
// has its origin at the bottom left, so rows are flipped against the grid
// height and both axes are stretched by Scale.
package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Canvas units per grid cell.
const Scale = 5

type Coord struct {
	Row float64
	Col float64
}

func (c Coord) IsFinite() bool {
	return !math.IsInf(c.Row, 0) && !math.IsNaN(c.Row) &&
		!math.IsInf(c.Col, 0) && !math.IsNaN(c.Col)
}

// Project maps a scene coordinate to canvas space using the height of the grid
// the coordinate was read from.
func Project(c Coord, rows int) orb.Point {
	return orb.Point{c.Col * Scale, (float64(rows) - c.Row) * Scale}
}

func ProjectAll(coords []Coord, rows int) []orb.Point {
	points := make([]orb.Point, len(coords))
	for i, c := range coords {
		points[i] = Project(c, rows)
	}
	return points
}

// Bounds of a set of canvas points. The zero bound is returned for no points.
func Bounds(points ...orb.Point) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}
	return orb.MultiPoint(points).Bound()
}

// Area of the closed ring through the given canvas points.
func Area(points []orb.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	ring := make(orb.Ring, 0, len(points)+1)
	ring = append(ring, points...)
	if !ring.Closed() {
		ring = append(ring, points[0])
	}
	return math.Abs(planar.Area(ring))
}
