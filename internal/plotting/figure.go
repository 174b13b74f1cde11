package plotting

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arrivability/sceneplot/internal/render"
)

// Page width of exported documents. The height follows the drawing's aspect
// ratio when equal aspect was requested.
const (
	pageWidth  = 8 * vg.Inch
	pageHeight = 6 * vg.Inch
)

// Figure is a render.Sink backed by gonum/plot. It is also the plot.Plotter
// that draws the accumulated commands.
type Figure struct {
	commands []render.Command
	extent   extent
	hideAxes bool
	equal    bool
}

func NewFigure() *Figure {
	return &Figure{}
}

func (f *Figure) Circle(c render.Circle) {
	f.commands = append(f.commands, render.Command{Kind: render.KindCircle, Circle: c})
	f.extent.addCircle(c)
}

func (f *Figure) Segment(s render.Segment) {
	f.commands = append(f.commands, render.Command{Kind: render.KindSegment, Segment: s})
	f.extent.add(s.From, s.To)
}

func (f *Figure) FilledPath(p render.FilledPath) {
	f.commands = append(f.commands, render.Command{Kind: render.KindFilledPath, Path: p})
	f.extent.addPath(p)
}

func (f *Figure) HideAxes()    { f.hideAxes = true }
func (f *Figure) EqualAspect() { f.equal = true }

// DataRange implements plot.DataRanger.
func (f *Figure) DataRange() (xmin, xmax, ymin, ymax float64) {
	b := f.extent.padded()
	return b.Min.X(), b.Max.X(), b.Min.Y(), b.Max.Y()
}

// Plot implements plot.Plotter.
func (f *Figure) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	at := func(x, y float64) vg.Point {
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	for _, cmd := range f.commands {
		switch cmd.Kind {
		case render.KindCircle:
			circle := cmd.Circle
			center := at(circle.Center.X(), circle.Center.Y())
			r := trX(circle.Center.X()+circle.Radius) - center.X
			var disc vg.Path
			disc.Move(vg.Point{X: center.X + r, Y: center.Y})
			disc.Arc(center, r, 0, 2*math.Pi)
			disc.Close()
			c.SetColor(circle.Fill)
			c.Fill(disc)

		case render.KindSegment:
			s := cmd.Segment
			sty := draw.LineStyle{
				Color:  s.Color,
				Width:  vg.Points(s.Width),
				Dashes: lengths(s.Dashes),
			}
			from, to := at(s.From.X(), s.From.Y()), at(s.To.X(), s.To.Y())
			c.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)

		case render.KindFilledPath:
			var outline vg.Path
			for _, step := range cmd.Path.Steps {
				pt := at(step.At.X(), step.At.Y())
				switch step.Op {
				case render.MoveTo:
					outline.Move(pt)
				case render.LineTo:
					outline.Line(pt)
				case render.ClosePath:
					outline.Close()
				}
			}
			c.SetColor(cmd.Path.Fill)
			c.Fill(outline)
			if cmd.Path.LineWidth > 0 {
				c.SetLineStyle(draw.LineStyle{Color: cmd.Path.Outline, Width: vg.Points(cmd.Path.LineWidth)})
				c.Stroke(outline)
			}
		}
	}
}

func lengths(dashes []float64) []vg.Length {
	if len(dashes) == 0 {
		return nil
	}
	out := make([]vg.Length, len(dashes))
	for i, d := range dashes {
		out[i] = vg.Points(d)
	}
	return out
}

func (f *Figure) plot() *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.Transparent
	p.Add(f)

	xmin, xmax, ymin, ymax := f.DataRange()
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	if f.hideAxes {
		p.HideAxes()
		p.X.Padding = 0
		p.Y.Padding = 0
	}
	return p
}

// size of the exported page.
func (f *Figure) size() (vg.Length, vg.Length) {
	if !f.equal {
		return pageWidth, pageHeight
	}
	b := f.extent.padded()
	dx, dy := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	if dx <= 0 || dy <= 0 {
		return pageWidth, pageWidth
	}
	return pageWidth, pageWidth * vg.Length(dy/dx)
}

// Export writes the figure as a vector document. The format follows the
// extension of path, as gonum/plot decides it.
func (f *Figure) Export(path string) error {
	w, h := f.size()
	if err := f.plot().Save(w, h, path); err != nil {
		return errors.Wrapf(err, "exporting %s", path)
	}
	return nil
}
