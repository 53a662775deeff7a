package advanced

// Which side of a directed line a point is on. The values match the sign of
// SignedArea, so a Side can be negated arithmetically.
type Side int

const (
	Right  Side = -1
	OnLine Side = 0
	Left   Side = 1
)

func (s Side) Opposite() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case OnLine:
		return "on line"
	}
	return "invalid side"
}

// Twice the signed area of the triangle formed by the directed line
// (x1,y1)->(x2,y2) and the point (x,y). Positive values are to the left of the
// line (with y pointing up), negative values to the right, and zero means the
// three points are collinear. The magnitude is proportional to the distance of
// the point from the line, which is all Quickhull needs to pick a farthest
// point.
//
// Inputs must be finite.
func SignedArea(x1, y1, x2, y2, x, y float64) float64 {
	return (y-y1)*(x2-x1) - (y2-y1)*(x-x1)
}

// Classify a signed area. Note that this compares against exactly zero, so a
// nearly collinear point can land on either side after rounding. Introducing
// a tolerance would change which points end up on the hull for
// near-degenerate inputs.
func SideOf(d float64) Side {
	if d > 0 {
		return Left
	} else if d < 0 {
		return Right
	}
	return OnLine
}

// Signed area of point i relative to the directed line through points p1 and
// p2 of the list.
func (points PointList) signedArea(p1, p2, i int) float64 {
	a, b, p := points[p1], points[p2], points[i]
	return SignedArea(a.X, a.Y, b.X, b.Y, p.X, p.Y)
}
