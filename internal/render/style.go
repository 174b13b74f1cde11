package render

import (
	"image/color"

	"github.com/arrivability/sceneplot/internal/fault"
)

// Mode picks how paths are told apart.
type Mode string

const (
	// Each path gets the color of its palette entry.
	ModeColor Mode = "color"
	// Each path gets the dash pattern of its palette entry, in DashColor.
	ModeDash Mode = "dash"
)

// Smallest palette a style may carry. Scenes with more paths need a palette
// at least as long as their path list.
const MinPalette = 6

type LineStyle struct {
	Color  color.Color
	Dashes []float64
}

type Style struct {
	Mode Mode
	// Indexed by path position.
	Palette   []LineStyle
	LineWidth float64
	DashColor color.Color

	ObstacleRadius float64
	ObstacleFill   color.Color

	EndpointRadius float64
	StartColor     color.Color
	EndColor       color.Color

	PolygonFill      color.Color
	PolygonOutline   color.Color
	PolygonLineWidth float64
}

func hex(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// DefaultStyle is the look of the published arrivability figures: six
// palette entries, blue/green/red/cyan/magenta/yellow, each paired with a
// dash pattern.
func DefaultStyle() Style {
	colors := []color.NRGBA{
		hex(0x00, 0x00, 0xff),
		hex(0x00, 0x80, 0x00),
		hex(0xff, 0x00, 0x00),
		hex(0x00, 0xbf, 0xbf),
		hex(0xbf, 0x00, 0xbf),
		hex(0xbf, 0xbf, 0x00),
	}
	dashes := [][]float64{
		nil,
		{5, 4},
		{5, 4, 2, 4},
		{5, 4, 2, 4, 2, 4},
		{2, 4},
		{2, 2},
	}
	palette := make([]LineStyle, len(colors))
	for i := range colors {
		palette[i] = LineStyle{Color: colors[i], Dashes: dashes[i]}
	}
	return Style{
		Mode:             ModeColor,
		Palette:          palette,
		LineWidth:        2,
		DashColor:        hex(0x00, 0x00, 0x00),
		ObstacleRadius:   0.1,
		ObstacleFill:     hex(0x1f, 0x77, 0xb4),
		EndpointRadius:   3,
		StartColor:       hex(0xff, 0x00, 0x00),
		EndColor:         hex(0x00, 0x00, 0xff),
		PolygonFill:      hex(0xd2, 0x49, 0x05),
		PolygonOutline:   hex(0x00, 0x00, 0x00),
		PolygonLineWidth: 2,
	}
}

// Validate checks the style on its own, independent of any scene.
func (s Style) Validate() error {
	if s.Mode != ModeColor && s.Mode != ModeDash {
		return fault.Configf("style.mode", "unknown mode %q", s.Mode)
	}
	if len(s.Palette) < MinPalette {
		return fault.Configf("style.palette", "%d palette entries, need at least %d", len(s.Palette), MinPalette)
	}
	for i, entry := range s.Palette {
		if entry.Color == nil {
			return fault.Configf("style.palette", "entry %d has no color", i)
		}
		for _, d := range entry.Dashes {
			if d <= 0 {
				return fault.Configf("style.palette", "entry %d has non-positive dash length %g", i, d)
			}
		}
	}
	if s.ObstacleRadius <= 0 || s.EndpointRadius <= 0 {
		return fault.Configf("style.radius", "radii must be positive")
	}
	if s.LineWidth <= 0 || s.PolygonLineWidth < 0 {
		return fault.Configf("style.width", "line widths must be positive")
	}
	for field, c := range map[string]color.Color{
		"style.dash_color":      s.DashColor,
		"style.obstacle_fill":   s.ObstacleFill,
		"style.start_color":     s.StartColor,
		"style.end_color":       s.EndColor,
		"style.polygon_fill":    s.PolygonFill,
		"style.polygon_outline": s.PolygonOutline,
	} {
		if c == nil {
			return fault.Configf(field, "color is not set")
		}
	}
	return nil
}

// lineFor returns the segment styling of path i. The palette must already be
// known to cover i.
func (s Style) lineFor(i int) (color.Color, []float64) {
	entry := s.Palette[i]
	if s.Mode == ModeDash {
		return s.DashColor, entry.Dashes
	}
	return entry.Color, nil
}
