package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestProjectFlipsRows(t *testing.T) {
	for _, n := range []int{1, 10, 37} {
		assert.Equal(t, orb.Point{0, float64(n * Scale)}, Project(Coord{0, 0}, n))
		assert.Equal(t, orb.Point{0, 0}, Project(Coord{float64(n), 0}, n))
	}
}

func TestProjectIsAffine(t *testing.T) {
	const rows = 10
	a := Coord{1, 2}
	b := Coord{7.5, 4}
	mid := Coord{(a.Row + b.Row) / 2, (a.Col + b.Col) / 2}

	pa, pb, pm := Project(a, rows), Project(b, rows), Project(mid, rows)
	assert.InDelta(t, (pa.X()+pb.X())/2, pm.X(), 1e-9)
	assert.InDelta(t, (pa.Y()+pb.Y())/2, pm.Y(), 1e-9)
}

func TestProjectScenePoints(t *testing.T) {
	// Obstacle, start and end from a 10x10 scene
	assert.Equal(t, orb.Point{15, 40}, Project(Coord{2, 3}, 10))
	assert.Equal(t, orb.Point{0, 50}, Project(Coord{0, 0}, 10))
	assert.Equal(t, orb.Point{45, 5}, Project(Coord{9, 9}, 10))
}

func TestProjectAll(t *testing.T) {
	points := ProjectAll([]Coord{{0, 0}, {0, 5}, {5, 0}}, 10)
	assert.Equal(t, []orb.Point{{0, 50}, {25, 50}, {0, 25}}, points)
	assert.Empty(t, ProjectAll(nil, 10))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, orb.Bound{}, Bounds())
	b := Bounds(orb.Point{0, 50}, orb.Point{25, 50}, orb.Point{0, 25})
	assert.Equal(t, orb.Point{0, 25}, b.Min)
	assert.Equal(t, orb.Point{25, 50}, b.Max)
}

func TestArea(t *testing.T) {
	triangle := []orb.Point{{0, 50}, {25, 50}, {0, 25}}
	assert.InDelta(t, 312.5, Area(triangle), 1e-9)

	// Already closed rings are not closed twice
	closed := append(append([]orb.Point{}, triangle...), triangle[0])
	assert.InDelta(t, 312.5, Area(closed), 1e-9)

	assert.Zero(t, Area([]orb.Point{{0, 0}, {1, 1}}))
	assert.Zero(t, Area([]orb.Point{{0, 0}, {1, 1}, {2, 2}}))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Coord{1, 2}.IsFinite())
	assert.False(t, Coord{math.NaN(), 2}.IsFinite())
	assert.False(t, Coord{1, math.Inf(-1)}.IsFinite())
}
