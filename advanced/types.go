package advanced

type Point struct {
	X float64
	Y float64
}

// The point set for one hull computation. Points are identified by their
// index, so the list must not be reordered or resized while a computation is
// running.
type PointList []Point

// A Hull is the accumulator for a single computation: a membership flag for
// every point in the list, and the number of flags that are set. It is owned
// by exactly one computation; nothing else should write to it until the
// computation returns.
type Hull struct {
	Points  PointList
	Members []bool
	Count   int
}

func NewHull(points PointList) *Hull {
	return &Hull{
		Points:  points,
		Members: make([]bool, len(points)),
	}
}

// Mark point i as a hull vertex. Count only moves when a flag goes from false
// to true, so marking the same point twice is harmless. Returns whether the
// point was newly marked.
func (h *Hull) Mark(i int) bool {
	if h.Members[i] {
		return false
	}
	h.Members[i] = true
	h.Count++
	return true
}

func (h *Hull) Contains(i int) bool {
	return h.Members[i]
}

// Indices of the marked points, in input order.
func (h *Hull) Indices() []int {
	indices := make([]int, 0, h.Count)
	for i, member := range h.Members {
		if member {
			indices = append(indices, i)
		}
	}
	return indices
}

// The marked points, in input order.
func (h *Hull) Vertices() PointList {
	vertices := make(PointList, 0, h.Count)
	for _, i := range h.Indices() {
		vertices = append(vertices, h.Points[i])
	}
	return vertices
}

// Set union with another hull over the same point list. Count ends up as the
// cardinality of the union.
func (h *Hull) Merge(other *Hull) {
	if len(other.Members) != len(h.Members) {
		fatalf("cannot merge hulls over %d and %d points", len(other.Members), len(h.Members))
	}
	for i, member := range other.Members {
		if member {
			h.Mark(i)
		}
	}
}

func (h *Hull) Equal(other *Hull) bool {
	if h.Count != other.Count || len(h.Members) != len(other.Members) {
		return false
	}
	for i := range h.Members {
		if h.Members[i] != other.Members[i] {
			return false
		}
	}
	return true
}
