package advanced

import (
	"io"
	"math"
)

// Builder runs the Quickhull recursion against a single Hull accumulator.
// Every call to Recurse on the same Builder shares that accumulator, which is
// how the partial results of sibling branches are composed.
type Builder struct {
	hull *Hull
	// If set, each step of the recursion is written here. This is for
	// debugging only.
	Trace io.Writer
	depth int
}

func NewBuilder(hull *Hull) *Builder {
	return &Builder{hull: hull}
}

func (b *Builder) Hull() *Hull {
	return b.hull
}

// Find the hull vertices on the given side of the directed line p1->p2, mark
// them, and return the updated hull count.
//
// The point farthest from the line on that side is necessarily a hull vertex.
// Everything inside the triangle it forms with p1 and p2 cannot be, so we only
// keep looking outside the two new edges. If nothing lies strictly on the side,
// p1 and p2 are adjacent hull vertices and the recursion bottoms out.
func (b *Builder) Recurse(p1, p2 int, side Side) int {
	points := b.hull.Points
	b.checkIndex(p1)
	b.checkIndex(p2)

	idx := -1
	var maxArea float64
	for i := range points {
		d := points.signedArea(p1, p2, i)
		// Strictly greater, so ties go to the first point found
		if SideOf(d) == side && math.Abs(d) > maxArea {
			idx = i
			maxArea = math.Abs(d)
		}
	}

	if idx == -1 {
		b.hull.Mark(p1)
		b.hull.Mark(p2)
		b.traceBase(p1, p2, side)
		return b.hull.Count
	}
	b.traceFarthest(p1, p2, side, idx, maxArea)

	b.depth++
	defer func() { b.depth-- }()

	// The outside of edge idx-p1 is the side opposite to where p2 lies, and
	// likewise for idx-p2.
	b.Recurse(idx, p1, SideOf(points.signedArea(p1, p2, idx)).Opposite())
	return b.Recurse(idx, p2, SideOf(points.signedArea(p2, p1, idx)).Opposite())
}

func (b *Builder) checkIndex(i int) {
	if i < 0 || i >= len(b.hull.Points) {
		fatalf("point index %d out of range for %d points", i, len(b.hull.Points))
	}
}
