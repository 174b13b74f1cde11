package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/paulmach/orb"
)

type Kind int

const (
	KindCircle Kind = iota
	KindSegment
	KindFilledPath
	KindHideAxes
	KindEqualAspect
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSegment:
		return "segment"
	case KindFilledPath:
		return "filled-path"
	case KindHideAxes:
		return "hide-axes"
	case KindEqualAspect:
		return "equal-aspect"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A filled disc. Radius is in canvas units.
type Circle struct {
	Center orb.Point
	Radius float64
	Fill   color.Color
}

type Segment struct {
	From  orb.Point
	To    orb.Point
	Color color.Color
	Width float64
	// Alternating on/off lengths in points; empty means solid.
	Dashes []float64
}

type Op int

const (
	MoveTo Op = iota
	LineTo
	ClosePath
)

func (op Op) String() string {
	return [...]string{"move", "line", "close"}[op]
}

// One step of a path. A ClosePath step carries the point it closes back to.
type Step struct {
	Op Op
	At orb.Point
}

type FilledPath struct {
	Steps     []Step
	Fill      color.Color
	Outline   color.Color
	LineWidth float64
}

// Command is one recorded drawing call. Only the field matching Kind is set.
type Command struct {
	Kind    Kind
	Circle  Circle
	Segment Segment
	Path    FilledPath
}

func (c Command) String() string {
	switch c.Kind {
	case KindCircle:
		return fmt.Sprintf("circle at (%g,%g) r=%g", c.Circle.Center.X(), c.Circle.Center.Y(), c.Circle.Radius)
	case KindSegment:
		return fmt.Sprintf("segment (%g,%g) -> (%g,%g)", c.Segment.From.X(), c.Segment.From.Y(), c.Segment.To.X(), c.Segment.To.Y())
	case KindFilledPath:
		s := "filled-path"
		for _, step := range c.Path.Steps {
			s += fmt.Sprintf(" %s(%g,%g)", step.Op, step.At.X(), step.At.Y())
		}
		return s
	}
	return c.Kind.String()
}

// Dump writes one line per command, colored by kind.
func Dump(w io.Writer, commands []Command) error {
	for i, c := range commands {
		var line aurora.Value
		switch c.Kind {
		case KindCircle:
			line = aurora.Cyan(c.String())
		case KindSegment:
			line = aurora.Green(c.String())
		case KindFilledPath:
			line = aurora.Yellow(c.String())
		default:
			line = aurora.Gray(12, c.String())
		}
		if _, err := fmt.Fprintf(w, "%4d %s\n", i, line); err != nil {
			return err
		}
	}
	return nil
}
