package advanced

import (
	"sort"

	"github.com/quasilyte/gmath"
)

// The marked points as a polygon, in counterclockwise order. Quickhull only
// tells us which points are on the hull, not how they connect, but since the
// hull is convex, sorting by angle around the centroid recovers the boundary
// order. Angles run from -π to π, so the walk starts from the point just below
// the centroid's negative x direction.
func (h *Hull) Polygon() PointList {
	vertices := h.Vertices()
	if len(vertices) < 2 {
		return vertices
	}

	var centroid gmath.Vec
	for _, p := range vertices {
		centroid = centroid.Add(toVec(p))
	}
	centroid = centroid.Mulf(1 / float64(len(vertices)))

	angles := make(map[Point]gmath.Rad, len(vertices))
	for _, p := range vertices {
		angles[p] = centroid.AngleToPoint(toVec(p))
	}
	sort.SliceStable(vertices, func(i, j int) bool {
		return angles[vertices[i]] < angles[vertices[j]]
	})
	return vertices
}

func toVec(p Point) gmath.Vec {
	return gmath.Vec{X: p.X, Y: p.Y}
}
