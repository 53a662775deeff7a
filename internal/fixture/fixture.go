// Package fixture provides point sets for tests, both from the SVG files in
// fixtures/ and generated in code.
package fixture

import (
	"embed"
	"log"
	"math"
	"math/rand"

	"github.com/osuushi/quickhull/advanced"
	"github.com/osuushi/quickhull/pointio"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// If anything goes wrong loading one, the test binary dies, since there's no
// sensible way to continue.

//go:embed fixtures
var fixtures embed.FS

func Load(name string) advanced.PointList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := pointio.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

// The eight point demo set. Its hull is indexes 0, 3, 4 and 6.
func Reference() advanced.PointList {
	return advanced.PointList{
		{X: 0, Y: 3},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 4, Y: 4},
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: 3, Y: 1},
		{X: 3, Y: 3},
	}
}

// n points evenly spaced on a circle, every one of which is a hull vertex.
func Circle(n int, radius float64) advanced.PointList {
	points := make(advanced.PointList, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = advanced.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

// A 4x4 square with points at the corners, the edge midpoints and the center.
// Only the corners are hull vertices.
func SquareWithMidpoints() advanced.PointList {
	return advanced.PointList{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 2, Y: 0},
		{X: 4, Y: 2},
		{X: 2, Y: 4},
		{X: 0, Y: 2},
		{X: 2, Y: 2},
	}
}

// n points along the line y = 2x + 1, in shuffled order.
func Collinear(n int, seed int64) advanced.PointList {
	rng := rand.New(rand.NewSource(seed))
	points := make(advanced.PointList, n)
	for i, j := range rng.Perm(n) {
		x := float64(j)
		points[i] = advanced.Point{X: x, Y: 2*x + 1}
	}
	return points
}

// n points uniformly distributed in a square of the given size. Random
// coordinates are in general position with overwhelming probability, which
// makes these good for comparing against other hull algorithms.
func Scatter(n int, size float64, seed int64) advanced.PointList {
	rng := rand.New(rand.NewSource(seed))
	points := make(advanced.PointList, n)
	for i := range points {
		points[i] = advanced.Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	return points
}

// n points uniformly distributed in a disc. Hulls of these have many more
// vertices than those of a square scatter.
func Disc(n int, radius float64, seed int64) advanced.PointList {
	rng := rand.New(rand.NewSource(seed))
	points := make(advanced.PointList, n)
	for i := range points {
		r := radius * math.Sqrt(rng.Float64())
		angle := 2 * math.Pi * rng.Float64()
		points[i] = advanced.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return points
}
