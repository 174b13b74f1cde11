package scene

import (
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/arrivability/sceneplot/internal/fault"
	"github.com/arrivability/sceneplot/internal/geom"
	"github.com/arrivability/sceneplot/internal/record"
)

// How the grids of the two input files relate.
type GridPolicy string

const (
	// Both files must declare the same grid.
	GridStrict GridPolicy = "strict"
	// Each file keeps its own grid; a mismatch is only logged.
	GridSeparate GridPolicy = "separate"
)

func ParseGridPolicy(s string) (GridPolicy, error) {
	switch GridPolicy(s) {
	case GridStrict, GridSeparate:
		return GridPolicy(s), nil
	case "":
		return GridStrict, nil
	}
	return "", fault.Configf("grid", "unknown grid policy %q (want %q or %q)", s, GridStrict, GridSeparate)
}

// Points, endpoints and paths of a scene file. Polygons are left empty.
type Points struct {
	Grid      Grid
	Obstacles []geom.Coord
	Start     geom.Coord
	End       geom.Coord
	Paths     []Path
}

// ReadPoints parses a scene file.
func ReadPoints(name string, in io.Reader) (*Points, error) {
	r := record.NewReader(name, in)
	rows, cols, err := r.ReadDims()
	if err != nil {
		return nil, err
	}
	result := &Points{Grid: Grid{Rows: rows, Cols: cols}}

	count, err := r.ReadCount("point count")
	if err != nil {
		return nil, err
	}
	if result.Obstacles, err = r.ReadPointRow(count); err != nil {
		return nil, err
	}
	if result.Start, err = r.ReadSinglePoint("start"); err != nil {
		return nil, err
	}
	if result.End, err = r.ReadSinglePoint("end"); err != nil {
		return nil, err
	}

	pathCount, err := r.ReadCount("path count")
	if err != nil {
		return nil, err
	}
	result.Paths = make([]Path, 0, pathCount)
	for i := 0; i < pathCount; i++ {
		fragments, err := r.ReadPath(i)
		if err != nil {
			return nil, err
		}
		points, stray, err := r.ParsePath(i, fragments)
		if err != nil {
			return nil, err
		}
		result.Paths = append(result.Paths, Path{Points: points, Stray: stray})
	}
	return result, nil
}

// Polygons of an obstacle file.
type Obstacles struct {
	Grid     Grid
	Polygons []Polygon
}

// ReadObstacles parses an obstacle file.
func ReadObstacles(name string, in io.Reader) (*Obstacles, error) {
	r := record.NewReader(name, in)
	rows, cols, err := r.ReadDims()
	if err != nil {
		return nil, err
	}
	result := &Obstacles{Grid: Grid{Rows: rows, Cols: cols}}

	count, err := r.ReadCount("polygon count")
	if err != nil {
		return nil, err
	}
	result.Polygons = make([]Polygon, 0, count)
	for i := 0; i < count; i++ {
		sides, err := r.ReadPolygonSides(i)
		if err != nil {
			return nil, err
		}
		vertices, err := r.ReadPolygon(sides)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon #%d", i)
		}
		result.Polygons = append(result.Polygons, Polygon{Sides: sides, Vertices: vertices})
	}
	return result, nil
}

// Assemble combines both halves of a scene and applies the grid policy.
func Assemble(points *Points, obstacles *Obstacles, policy GridPolicy) (*Scene, error) {
	if points.Grid != obstacles.Grid {
		if policy != GridSeparate {
			return nil, fault.Configf("grid",
				"scene grid %dx%d differs from obstacle grid %dx%d",
				points.Grid.Rows, points.Grid.Cols, obstacles.Grid.Rows, obstacles.Grid.Cols)
		}
		log.Println(aurora.Yellow("⚠️  scene and obstacle grids differ, projecting each with its own rows"))
	}

	for i, polygon := range obstacles.Polygons {
		if geom.Area(geom.ProjectAll(polygon.Vertices, obstacles.Grid.Rows)) == 0 {
			log.Printf("⚠️  polygon #%d has zero area\n", i)
		}
	}

	return &Scene{
		Grid:         points.Grid,
		ObstacleGrid: obstacles.Grid,
		Obstacles:    points.Obstacles,
		Start:        points.Start,
		End:          points.End,
		Paths:        points.Paths,
		Polygons:     obstacles.Polygons,
	}, nil
}

// Load reads the scene file and the obstacle file from disk.
func Load(scenePath, obstaclePath string, policy GridPolicy) (*Scene, error) {
	var points *Points
	err := withFile(scenePath, func(f io.Reader) (err error) {
		points, err = ReadPoints(scenePath, f)
		return err
	})
	if err != nil {
		return nil, err
	}

	var obstacles *Obstacles
	err = withFile(obstaclePath, func(f io.Reader) (err error) {
		obstacles, err = ReadObstacles(obstaclePath, f)
		return err
	})
	if err != nil {
		return nil, err
	}

	s, err := Assemble(points, obstacles, policy)
	if err != nil {
		return nil, err
	}
	s.SceneFile = scenePath
	s.ObstacleFile = obstaclePath
	return s, nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.WithStack(&fault.FileNotFoundError{Path: path, Err: err})
		}
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return fn(f)
}
