// Package plotting replays recorded drawing commands into real backends: a
// gonum/plot figure for the exported document and a gg raster for the
// terminal preview.
package plotting

import (
	"github.com/paulmach/orb"

	"github.com/arrivability/sceneplot/internal/render"
)

// Canvas units left around the drawing so outlines and endpoint discs are
// not clipped.
const margin = 2

// extent tracks the canvas area touched by drawing commands.
type extent struct {
	bound orb.Bound
	set   bool
}

func (e *extent) add(points ...orb.Point) {
	for _, p := range points {
		if !e.set {
			e.bound = orb.Bound{Min: p, Max: p}
			e.set = true
			continue
		}
		e.bound = e.bound.Extend(p)
	}
}

func (e *extent) addCircle(c render.Circle) {
	x, y := c.Center.X(), c.Center.Y()
	e.add(orb.Point{x - c.Radius, y - c.Radius}, orb.Point{x + c.Radius, y + c.Radius})
}

func (e *extent) addPath(p render.FilledPath) {
	for _, step := range p.Steps {
		e.add(step.At)
	}
}

// padded returns the touched area with a margin, or a unit square when
// nothing was drawn.
func (e *extent) padded() orb.Bound {
	if !e.set {
		return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
	}
	return e.bound.Pad(margin)
}
