package plotting

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/arrivability/sceneplot/internal/render"
)

// Pixels of padding around the preview image.
const previewPadding = 20

// Preview is a render.Sink that rasterizes commands with gg so the figure
// can be shown inline in the terminal.
type Preview struct {
	commands []render.Command
	extent   extent
	// Longest side of the drawing, in pixels.
	size float64
}

func NewPreview(size float64) *Preview {
	if size <= 0 {
		size = 800
	}
	return &Preview{size: size}
}

func (p *Preview) Circle(c render.Circle) {
	p.commands = append(p.commands, render.Command{Kind: render.KindCircle, Circle: c})
	p.extent.addCircle(c)
}

func (p *Preview) Segment(s render.Segment) {
	p.commands = append(p.commands, render.Command{Kind: render.KindSegment, Segment: s})
	p.extent.add(s.From, s.To)
}

func (p *Preview) FilledPath(fp render.FilledPath) {
	p.commands = append(p.commands, render.Command{Kind: render.KindFilledPath, Path: fp})
	p.extent.addPath(fp)
}

// The preview never draws axes and always keeps the aspect ratio.
func (p *Preview) HideAxes()    {}
func (p *Preview) EqualAspect() {}

// Image rasterizes the accumulated commands.
func (p *Preview) Image() image.Image {
	b := p.extent.padded()
	minX, minY := b.Min.X(), b.Min.Y()
	dx, dy := b.Max.X()-minX, b.Max.Y()-minY
	scale := p.size / dx
	if dy > dx {
		scale = p.size / dy
	}

	width := int(math.Round(scale*dx)) + previewPadding*2
	height := int(math.Round(scale*dy)) + previewPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(previewPadding, previewPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, cmd := range p.commands {
		switch cmd.Kind {
		case render.KindCircle:
			c.DrawCircle(cmd.Circle.Center.X(), cmd.Circle.Center.Y(), cmd.Circle.Radius)
			c.SetColor(cmd.Circle.Fill)
			c.Fill()

		case render.KindSegment:
			s := cmd.Segment
			c.SetColor(s.Color)
			c.SetLineWidth(s.Width)
			c.SetDash(s.Dashes...)
			c.DrawLine(s.From.X(), s.From.Y(), s.To.X(), s.To.Y())
			c.Stroke()
			c.SetDash()

		case render.KindFilledPath:
			for _, step := range cmd.Path.Steps {
				switch step.Op {
				case render.MoveTo:
					c.MoveTo(step.At.X(), step.At.Y())
				case render.LineTo:
					c.LineTo(step.At.X(), step.At.Y())
				case render.ClosePath:
					c.ClosePath()
				}
			}
			c.SetColor(cmd.Path.Fill)
			if cmd.Path.LineWidth > 0 {
				c.FillPreserve()
				c.SetColor(cmd.Path.Outline)
				c.SetLineWidth(cmd.Path.LineWidth)
				c.Stroke()
			} else {
				c.Fill()
			}
		}
	}
	return c.Image()
}

// Present prints the preview to w using the iTerm inline image protocol.
// Nothing is written to disk.
func (p *Preview) Present(w io.Writer) error {
	return errors.Wrap(imgcat.CatImage(p.Image(), w), "presenting preview")
}
