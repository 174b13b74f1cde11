// Package config holds the settings of a run. Every setting has a default
// matching the fixed input paths and the look of the published figures; a YAML file can
// override any of them.
package config

import (
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/arrivability/sceneplot/internal/fault"
	"github.com/arrivability/sceneplot/internal/render"
	"github.com/arrivability/sceneplot/internal/scene"
)

type Config struct {
	ScenePath    string      `yaml:"scene"`
	ObstaclePath string      `yaml:"obstacles"`
	OutputPath   string      `yaml:"output"`
	Show         bool        `yaml:"show"`
	Grid         string      `yaml:"grid"`
	Style        StyleConfig `yaml:"style"`
}

type LineConfig struct {
	Color  string    `yaml:"color"`
	Dashes []float64 `yaml:"dashes"`
}

// StyleConfig is the serialized form of render.Style; colors are hex strings.
type StyleConfig struct {
	Mode             string       `yaml:"mode"`
	Palette          []LineConfig `yaml:"palette"`
	LineWidth        float64      `yaml:"line_width"`
	DashColor        string       `yaml:"dash_color"`
	ObstacleRadius   float64      `yaml:"obstacle_radius"`
	ObstacleFill     string       `yaml:"obstacle_fill"`
	EndpointRadius   float64      `yaml:"endpoint_radius"`
	StartColor       string       `yaml:"start_color"`
	EndColor         string       `yaml:"end_color"`
	PolygonFill      string       `yaml:"polygon_fill"`
	PolygonOutline   string       `yaml:"polygon_outline"`
	PolygonLineWidth float64      `yaml:"polygon_line_width"`
}

func Default() Config {
	return Config{
		ScenePath:    "demos/demo_4-Arrivability_FixedRadius",
		ObstaclePath: "files/random_map",
		OutputPath:   "4-Arrivability_FixedRadius.pdf",
		Show:         true,
		Grid:         string(scene.GridStrict),
		Style:        FromStyle(render.DefaultStyle()),
	}
}

// Load reads a YAML file over the defaults. Keys the file does not mention
// keep their default; a palette in the file replaces the default palette.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, errors.WithStack(&fault.FileNotFoundError{Path: path, Err: err})
		}
		return cfg, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fault.Configf(path, "%v", err)
	}
	return cfg, nil
}

func (c Config) GridPolicy() (scene.GridPolicy, error) {
	return scene.ParseGridPolicy(c.Grid)
}

// FromStyle serializes a style.
func FromStyle(s render.Style) StyleConfig {
	palette := make([]LineConfig, len(s.Palette))
	for i, entry := range s.Palette {
		palette[i] = LineConfig{Color: toHex(entry.Color), Dashes: entry.Dashes}
	}
	return StyleConfig{
		Mode:             string(s.Mode),
		Palette:          palette,
		LineWidth:        s.LineWidth,
		DashColor:        toHex(s.DashColor),
		ObstacleRadius:   s.ObstacleRadius,
		ObstacleFill:     toHex(s.ObstacleFill),
		EndpointRadius:   s.EndpointRadius,
		StartColor:       toHex(s.StartColor),
		EndColor:         toHex(s.EndColor),
		PolygonFill:      toHex(s.PolygonFill),
		PolygonOutline:   toHex(s.PolygonOutline),
		PolygonLineWidth: s.PolygonLineWidth,
	}
}

// Build parses the colors and validates the resulting style.
func (sc StyleConfig) Build() (render.Style, error) {
	var err error
	parse := func(field, hex string) color.Color {
		if err != nil {
			return nil
		}
		var c color.Color
		c, err = parseColor(field, hex)
		return c
	}

	style := render.Style{
		Mode:             render.Mode(sc.Mode),
		LineWidth:        sc.LineWidth,
		DashColor:        parse("style.dash_color", sc.DashColor),
		ObstacleRadius:   sc.ObstacleRadius,
		ObstacleFill:     parse("style.obstacle_fill", sc.ObstacleFill),
		EndpointRadius:   sc.EndpointRadius,
		StartColor:       parse("style.start_color", sc.StartColor),
		EndColor:         parse("style.end_color", sc.EndColor),
		PolygonFill:      parse("style.polygon_fill", sc.PolygonFill),
		PolygonOutline:   parse("style.polygon_outline", sc.PolygonOutline),
		PolygonLineWidth: sc.PolygonLineWidth,
	}
	for _, entry := range sc.Palette {
		style.Palette = append(style.Palette, render.LineStyle{
			Color:  parse("style.palette", entry.Color),
			Dashes: entry.Dashes,
		})
	}
	if err != nil {
		return render.Style{}, err
	}
	if err := style.Validate(); err != nil {
		return render.Style{}, err
	}
	return style, nil
}

func parseColor(field, hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fault.Configf(field, "bad color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func toHex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
