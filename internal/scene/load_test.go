package scene

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrivability/sceneplot/internal/fault"
	"github.com/arrivability/sceneplot/internal/geom"
)

func TestReadPoints_ScenarioA(t *testing.T) {
	points, err := openFixture("scenario_a")
	require.NoError(t, err)
	assert.Equal(t, Grid{10, 10}, points.Grid)
	assert.Equal(t, []geom.Coord{{Row: 2, Col: 3}}, points.Obstacles)
	assert.Equal(t, geom.Coord{Row: 0, Col: 0}, points.Start)
	assert.Equal(t, geom.Coord{Row: 9, Col: 9}, points.End)
	assert.Empty(t, points.Paths)
}

func TestReadPoints_Demo(t *testing.T) {
	points, err := openFixture("demo")
	require.NoError(t, err)
	assert.Equal(t, Grid{20, 30}, points.Grid)
	assert.Len(t, points.Obstacles, 4)
	require.Len(t, points.Paths, 3)

	assert.Equal(t, []geom.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, points.Paths[0].Points)
	assert.Equal(t, 3, points.Paths[0].Segments())
	assert.Equal(t, 1, points.Paths[1].Segments())
	assert.Equal(t, 2, points.Paths[2].Segments())
	for _, path := range points.Paths {
		assert.Empty(t, path.Stray)
	}
}

func TestReadPoints_ShortRowReturnsNoScene(t *testing.T) {
	points, err := openFixture("short_row")
	assert.Nil(t, points)
	require.True(t, fault.IsMalformed(err))
	assert.Contains(t, err.Error(), "expected 4")
	assert.Contains(t, err.Error(), "short_row:3")
}

func TestReadObstacles_ScenarioB(t *testing.T) {
	obstacles, err := openObstacleFixture("scenario_b")
	require.NoError(t, err)
	assert.Equal(t, Grid{10, 10}, obstacles.Grid)
	require.Len(t, obstacles.Polygons, 1)
	polygon := obstacles.Polygons[0]
	assert.Equal(t, 3, polygon.Sides)
	assert.Len(t, polygon.Vertices, polygon.Sides)
	assert.Equal(t, []geom.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 5}, {Row: 5, Col: 0}, {Row: 0, Col: 0}}, polygon.Closed())
}

func TestAssembleGridPolicy(t *testing.T) {
	points, err := openFixture("scenario_a")
	require.NoError(t, err)
	tall, err := openObstacleFixture("tall_map")
	require.NoError(t, err)

	t.Run("strict", func(t *testing.T) {
		s, err := Assemble(points, tall, GridStrict)
		assert.Nil(t, s)
		assert.True(t, fault.IsConfiguration(err))
		assert.Contains(t, err.Error(), "10x10 differs from obstacle grid 12x10")
	})

	t.Run("separate", func(t *testing.T) {
		s, err := Assemble(points, tall, GridSeparate)
		require.NoError(t, err)
		assert.Equal(t, Grid{10, 10}, s.Grid)
		assert.Equal(t, Grid{12, 10}, s.ObstacleGrid)
	})
}

func TestParseGridPolicy(t *testing.T) {
	policy, err := ParseGridPolicy("")
	require.NoError(t, err)
	assert.Equal(t, GridStrict, policy)

	policy, err = ParseGridPolicy("separate")
	require.NoError(t, err)
	assert.Equal(t, GridSeparate, policy)

	_, err = ParseGridPolicy("merge")
	assert.True(t, fault.IsConfiguration(err))
}

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "demo"), filepath.Join("testdata", "map"), GridStrict)
	require.NoError(t, err)
	assert.Len(t, s.Polygons, 2)
	assert.Len(t, s.Paths, 3)
	assert.Equal(t, filepath.Join("testdata", "demo"), s.SceneFile)
	assert.Equal(t, filepath.Join("testdata", "map"), s.ObstacleFile)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope"), filepath.Join("testdata", "map"), GridStrict)
		var notFound *fault.FileNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, filepath.Join("testdata", "nope"), notFound.Path)
	})

	t.Run("malformed", func(t *testing.T) {
		s, err := Load(filepath.Join("testdata", "short_row"), filepath.Join("testdata", "scenario_b"), GridStrict)
		assert.Nil(t, s)
		assert.True(t, fault.IsMalformed(err))
	})
}
