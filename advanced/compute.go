package advanced

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// Find the hull of a point list, given two points known to be on it. p1 and p2
// are normally the points with minimum and maximum x, which are always hull
// vertices. The two sides of the line between them are searched one after the
// other, with the second pass continuing from the count left by the first.
func Compute(points PointList, p1, p2 int) *Hull {
	return ComputeTraced(points, p1, p2, nil)
}

// Compute, writing each step of the recursion to trace.
func ComputeTraced(points PointList, p1, p2 int, trace io.Writer) *Hull {
	builder := NewBuilder(NewHull(points))
	builder.Trace = trace
	builder.Recurse(p1, p2, Left)
	builder.Recurse(p1, p2, Right)
	return builder.Hull()
}

// Like Compute, but with the two sides searched concurrently. Each side gets
// its own accumulator, since the passes would otherwise race on the anchor
// points' flags, and the results are merged when both are done. The result is
// identical to Compute's.
func ComputeParallel(ctx context.Context, points PointList, p1, p2 int) (*Hull, error) {
	sides := [...]Side{Left, Right}
	partials := make([]*Hull, len(sides))

	g, gCtx := errgroup.WithContext(ctx)
	for i, side := range sides {
		i, side := i, side
		g.Go(func() (err error) {
			defer func() {
				if recoveredErr := HandleHullPanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			// There's no way to interrupt the recursion itself, but don't start
			// a pass if the computation has already been abandoned.
			if err := gCtx.Err(); err != nil {
				return err
			}
			builder := NewBuilder(NewHull(points))
			builder.Recurse(p1, p2, side)
			partials[i] = builder.Hull()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := NewHull(points)
	for _, partial := range partials {
		result.Merge(partial)
	}
	return result, nil
}

// Index of the points with minimum and maximum x. Ties go to the first point
// found. The list must not be empty.
func Extremes(points PointList) (minX, maxX int) {
	if len(points) == 0 {
		fatalf("cannot find extremes of an empty point list")
	}
	for i := 1; i < len(points); i++ {
		if points[i].X < points[minX].X {
			minX = i
		} else if points[i].X > points[maxX].X {
			maxX = i
		}
	}
	return minX, maxX
}
