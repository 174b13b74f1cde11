// Package scene holds the parsed model of one run: obstacle points, the start
// and end of the route, candidate paths and polygonal obstacles.
package scene

import (
	"github.com/arrivability/sceneplot/internal/geom"
)

type Grid struct {
	Rows int
	Cols int
}

// A candidate route, drawn as a polyline through Points. Stray is the text of
// the trailing fragment dropped from the path line, kept for diagnostics.
type Path struct {
	Points []geom.Coord
	Stray  string
}

// Number of segments the polyline is drawn with.
func (p Path) Segments() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

type Polygon struct {
	Sides    int
	Vertices []geom.Coord
}

// Closed returns the vertices with the first one repeated at the end.
func (p Polygon) Closed() []geom.Coord {
	if len(p.Vertices) == 0 {
		return nil
	}
	closed := make([]geom.Coord, 0, len(p.Vertices)+1)
	closed = append(closed, p.Vertices...)
	return append(closed, p.Vertices[0])
}

// Scene is built once from a scene file and an obstacle file. Each file
// declares its own grid; Grid applies to obstacles, endpoints and paths,
// ObstacleGrid to polygons.
type Scene struct {
	Grid         Grid
	ObstacleGrid Grid

	Obstacles []geom.Coord
	Start     geom.Coord
	End       geom.Coord
	Paths     []Path
	Polygons  []Polygon

	SceneFile    string
	ObstacleFile string
}
