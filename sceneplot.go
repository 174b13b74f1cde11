// Renders arrivability scenes: obstacle points, a start and end location,
// candidate paths and polygonal obstacles, read from a scene file and an
// obstacle file, into one vector document.
//
// Parsing and drawing are separate stages. Load builds a Scene, Draw turns it
// into an ordered list of drawing commands, and Run replays those commands
// into the exported figure and the terminal preview.
package sceneplot

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/arrivability/sceneplot/internal/config"
	"github.com/arrivability/sceneplot/internal/plotting"
	"github.com/arrivability/sceneplot/internal/render"
	"github.com/arrivability/sceneplot/internal/scene"
)

type Scene = scene.Scene
type Command = render.Command
type Style = render.Style
type Config = config.Config

// Load reads both input files named by cfg.
func Load(cfg Config) (*Scene, error) {
	policy, err := cfg.GridPolicy()
	if err != nil {
		return nil, err
	}
	return scene.Load(cfg.ScenePath, cfg.ObstaclePath, policy)
}

// Draw renders s into drawing commands without touching any backend.
func Draw(s *Scene, style Style) ([]Command, error) {
	renderer, err := render.New(style)
	if err != nil {
		return nil, err
	}
	rec := &render.Recorder{}
	if err := renderer.Render(s, rec); err != nil {
		return nil, err
	}
	return rec.Commands, nil
}

// Run loads, draws, exports and, when cfg.Show is set, presents the figure on
// standard output. The exported document is the only file written.
func Run(cfg Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg Config, out io.Writer) error {
	style, err := cfg.Style.Build()
	if err != nil {
		return err
	}

	s, err := Load(cfg)
	if err != nil {
		return errors.Wrap(err, "loading scene")
	}
	log.Printf("Loaded %d obstacle points, %d paths and %d polygons\n",
		len(s.Obstacles), len(s.Paths), len(s.Polygons))

	commands, err := Draw(s, style)
	if err != nil {
		return errors.Wrap(err, "rendering scene")
	}

	figure := plotting.NewFigure()
	render.Replay(commands, figure)
	if err := figure.Export(cfg.OutputPath); err != nil {
		return err
	}
	log.Printf("Wrote %s\n", cfg.OutputPath)

	if !cfg.Show {
		return nil
	}
	preview := plotting.NewPreview(0)
	render.Replay(commands, preview)
	return preview.Present(out)
}
