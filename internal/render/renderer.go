package render

import (
	"github.com/paulmach/orb"

	"github.com/arrivability/sceneplot/internal/fault"
	"github.com/arrivability/sceneplot/internal/geom"
	"github.com/arrivability/sceneplot/internal/scene"
)

type Renderer struct {
	style Style
}

func New(style Style) (*Renderer, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{style: style}, nil
}

func (r *Renderer) Style() Style { return r.style }

// Render emits the scene to sink in painting order: obstacle points, paths,
// start, end, axis setup, polygons. Nothing is emitted when the palette cannot
// cover every path.
func (r *Renderer) Render(s *scene.Scene, sink Sink) error {
	if len(s.Paths) > len(r.style.Palette) {
		return fault.Configf("style.palette", "%d paths but only %d palette entries", len(s.Paths), len(r.style.Palette))
	}
	rows := s.Grid.Rows

	for _, p := range s.Obstacles {
		sink.Circle(Circle{Center: geom.Project(p, rows), Radius: r.style.ObstacleRadius, Fill: r.style.ObstacleFill})
	}

	for i, path := range s.Paths {
		clr, dashes := r.style.lineFor(i)
		points := geom.ProjectAll(path.Points, rows)
		for j := 0; j+1 < len(points); j++ {
			sink.Segment(Segment{
				From:   points[j],
				To:     points[j+1],
				Color:  clr,
				Width:  r.style.LineWidth,
				Dashes: dashes,
			})
		}
	}

	sink.Circle(Circle{Center: geom.Project(s.Start, rows), Radius: r.style.EndpointRadius, Fill: r.style.StartColor})
	sink.Circle(Circle{Center: geom.Project(s.End, rows), Radius: r.style.EndpointRadius, Fill: r.style.EndColor})

	sink.HideAxes()
	sink.EqualAspect()

	for _, polygon := range s.Polygons {
		if len(polygon.Vertices) == 0 {
			continue
		}
		sink.FilledPath(FilledPath{
			Steps:     polygonSteps(geom.ProjectAll(polygon.Vertices, s.ObstacleGrid.Rows)),
			Fill:      r.style.PolygonFill,
			Outline:   r.style.PolygonOutline,
			LineWidth: r.style.PolygonLineWidth,
		})
	}
	return nil
}

// Move to the first vertex, line to the rest, close back to the first.
func polygonSteps(points []orb.Point) []Step {
	steps := make([]Step, 0, len(points)+1)
	steps = append(steps, Step{Op: MoveTo, At: points[0]})
	for _, p := range points[1:] {
		steps = append(steps, Step{Op: LineTo, At: p})
	}
	return append(steps, Step{Op: ClosePath, At: points[0]})
}
