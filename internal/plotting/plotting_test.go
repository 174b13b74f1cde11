package plotting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrivability/sceneplot/internal/geom"
	"github.com/arrivability/sceneplot/internal/render"
	"github.com/arrivability/sceneplot/internal/scene"
)

func demoCommands(t *testing.T) []render.Command {
	t.Helper()
	s := &scene.Scene{
		Grid:         scene.Grid{Rows: 10, Cols: 10},
		ObstacleGrid: scene.Grid{Rows: 10, Cols: 10},
		Obstacles:    []geom.Coord{{Row: 2, Col: 3}},
		Start:        geom.Coord{Row: 0, Col: 0},
		End:          geom.Coord{Row: 9, Col: 9},
		Paths: []scene.Path{
			{Points: []geom.Coord{{Row: 0, Col: 0}, {Row: 4, Col: 4}, {Row: 9, Col: 9}}},
		},
		Polygons: []scene.Polygon{{
			Sides:    3,
			Vertices: []geom.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 5}, {Row: 5, Col: 0}},
		}},
	}
	r, err := render.New(render.DefaultStyle())
	require.NoError(t, err)
	rec := &render.Recorder{}
	require.NoError(t, r.Render(s, rec))
	return rec.Commands
}

func TestFigureExportSVG(t *testing.T) {
	commands := demoCommands(t)
	figure := NewFigure()
	render.Replay(commands, figure)

	out := filepath.Join(t.TempDir(), "figure.svg")
	require.NoError(t, figure.Export(out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	root, err := svgparser.Parse(f, false)
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)

	// 3 discs, 2 segments and one polygon filled and stroked
	assert.GreaterOrEqual(t, len(root.FindAll("path")), 3+2+2)
}

func TestFigureExportPDF(t *testing.T) {
	figure := NewFigure()
	render.Replay(demoCommands(t), figure)

	out := filepath.Join(t.TempDir(), "figure.pdf")
	require.NoError(t, figure.Export(out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFigureExportBadPath(t *testing.T) {
	figure := NewFigure()
	render.Replay(demoCommands(t), figure)
	err := figure.Export(filepath.Join(t.TempDir(), "missing", "figure.pdf"))
	assert.Error(t, err)
}

func TestFigureGeometry(t *testing.T) {
	figure := NewFigure()
	render.Replay(demoCommands(t), figure)

	xmin, xmax, ymin, ymax := figure.DataRange()
	// End disc reaches x=48, start disc reaches y=53, plus the margin
	assert.InDelta(t, -5, xmin, 1e-9)
	assert.InDelta(t, 50, xmax, 1e-9)
	assert.InDelta(t, 0, ymin, 1e-9)
	assert.InDelta(t, 55, ymax, 1e-9)

	assert.True(t, figure.hideAxes)
	w, h := figure.size()
	assert.InDelta(t, float64(w), float64(h), 1e-9)
}

func TestFigureWithoutCommands(t *testing.T) {
	figure := NewFigure()
	xmin, xmax, ymin, ymax := figure.DataRange()
	assert.Equal(t, []float64{0, 1, 0, 1}, []float64{xmin, xmax, ymin, ymax})
	w, h := figure.size()
	assert.Equal(t, pageWidth, w)
	assert.Equal(t, pageHeight, h)
}

func TestPreviewImage(t *testing.T) {
	preview := NewPreview(800)
	render.Replay(demoCommands(t), preview)

	img := preview.Image()
	bounds := img.Bounds()
	assert.Equal(t, 840, bounds.Dx())
	assert.Equal(t, 840, bounds.Dy())

	// Inside the start disc, up and left of its centre at canvas (0,50) where
	// the triangle's outline starts
	r, g, b, _ := img.At(78, 78).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Less(t, g>>8, uint32(60))
	assert.Less(t, b>>8, uint32(60))
}

func TestPreviewPresent(t *testing.T) {
	preview := NewPreview(200)
	render.Replay(demoCommands(t), preview)

	t.Setenv("TERM", "xterm-256color")
	var out bytes.Buffer
	require.NoError(t, preview.Present(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("\033]1337;File=;inline=1:")))
	assert.True(t, bytes.HasSuffix(out.Bytes(), []byte("\a\n")))
}
