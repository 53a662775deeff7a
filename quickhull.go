// A Quickhull implementation for Go.
//
// This package finds the convex hull of a set of 2D points, reporting which of
// the input points are hull vertices. The points are identified by their index
// in the input, and are never reordered or copied into a new set.
package quickhull

import (
	"context"
	"io"
	"math"

	"github.com/osuushi/quickhull/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type PointList = advanced.PointList
type Hull = advanced.Hull

var (
	ErrTooFewPoints = errors.New("n must be >= 3")
	ErrNonFinite    = errors.New("coordinates must be finite")
)

type Options struct {
	// Search both sides of the initial split concurrently.
	Parallel bool
	// If set, every step of the recursion is written here. Ignored when
	// Parallel is set.
	Trace io.Writer
}

// Find the convex hull of the given points.
//
// At least three points are required, and every coordinate must be finite.
// Points that lie exactly on an edge of the hull are not reported, and when
// every point is collinear, only the two extremes are.
func ConvexHull(points PointList) (*Hull, error) {
	return ConvexHullWithOptions(context.Background(), points, Options{})
}

func ConvexHullWithOptions(ctx context.Context, points PointList, options Options) (result *Hull, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if err := Validate(points); err != nil {
		return nil, err
	}

	minX, maxX := advanced.Extremes(points)
	if options.Parallel {
		return advanced.ComputeParallel(ctx, points, minX, maxX)
	}
	return advanced.ComputeTraced(points, minX, maxX, options.Trace), nil
}

// Check the preconditions of ConvexHull without computing anything.
func Validate(points PointList) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrTooFewPoints, "got %d points", len(points))
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrNonFinite, "point %d is (%v, %v)", i, p.X, p.Y)
		}
	}
	return nil
}
