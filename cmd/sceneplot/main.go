package main

import (
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/arrivability/sceneplot"
	"github.com/arrivability/sceneplot/internal/config"
	"github.com/arrivability/sceneplot/internal/render"
)

// Renders the arrivability figure. With no flags the scene is read from
// demos/demo_4-Arrivability_FixedRadius, the obstacles from files/random_map,
// and the figure is written to 4-Arrivability_FixedRadius.pdf.
func main() {
	app := kingpin.New("sceneplot", "Render an arrivability scene to a vector document.")
	configPath := app.Flag("config", "YAML file overriding the defaults.").Short('c').String()
	scenePath := app.Flag("scene", "Scene file (points, endpoints, paths).").String()
	obstaclePath := app.Flag("obstacles", "Obstacle file (polygons).").String()
	outputPath := app.Flag("out", "Output document; the extension picks the format.").Short('o').String()
	grid := app.Flag("grid", "How to treat differing grids in the two files.").Enum("strict", "separate")
	mode := app.Flag("mode", "Tell paths apart by color or by dash pattern.").Enum("color", "dash")
	noShow := app.Flag("no-show", "Do not print the preview to the terminal.").Bool()
	dump := app.Flag("dump", "Print the drawing commands and exit.").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fail(err)
		}
	}
	override(&cfg.ScenePath, *scenePath)
	override(&cfg.ObstaclePath, *obstaclePath)
	override(&cfg.OutputPath, *outputPath)
	override(&cfg.Grid, *grid)
	override(&cfg.Style.Mode, *mode)
	if *noShow {
		cfg.Show = false
	}

	if *dump {
		if err := dumpCommands(cfg); err != nil {
			fail(err)
		}
		return
	}
	if err := sceneplot.Run(cfg); err != nil {
		fail(err)
	}
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func dumpCommands(cfg config.Config) error {
	style, err := cfg.Style.Build()
	if err != nil {
		return err
	}
	s, err := sceneplot.Load(cfg)
	if err != nil {
		return err
	}
	commands, err := sceneplot.Draw(s, style)
	if err != nil {
		return err
	}
	return render.Dump(os.Stdout, commands)
}

func fail(err error) {
	log.Fatalf("%s %v", aurora.Red("❌"), aurora.Red(err))
}
