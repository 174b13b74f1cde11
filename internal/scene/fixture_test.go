package scene

import (
	"embed"
	"log"
)

// Scene and obstacle files used across the tests, by name, from testdata/.

//go:embed testdata
var fixtures embed.FS

func openFixture(name string) (*Points, error) {
	fixture, err := fixtures.Open("testdata/" + name)
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()
	return ReadPoints(name, fixture)
}

func openObstacleFixture(name string) (*Obstacles, error) {
	fixture, err := fixtures.Open("testdata/" + name)
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()
	return ReadObstacles(name, fixture)
}
