package quickhull

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/osuushi/quickhull/internal/fixture"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestConvexHull(t *testing.T) {
	hull, err := ConvexHull(fixture.Reference())
	require.NoError(t, err)
	assert.Equal(t, 4, hull.Count)
	assert.Equal(t, []int{0, 3, 4, 6}, hull.Indices())
}

func TestConvexHullCollinear(t *testing.T) {
	hull, err := ConvexHull(PointList{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, hull.Count)
	assert.Equal(t, []bool{true, false, true}, hull.Members)
}

func TestConvexHullWithOptions(t *testing.T) {
	points := fixture.Disc(1000, 10, 42)
	sequential, err := ConvexHull(points)
	require.NoError(t, err)

	t.Run("parallel", func(t *testing.T) {
		parallel, err := ConvexHullWithOptions(context.Background(), points, Options{Parallel: true})
		require.NoError(t, err)
		assert.True(t, sequential.Equal(parallel))
	})

	t.Run("trace", func(t *testing.T) {
		var trace bytes.Buffer
		traced, err := ConvexHullWithOptions(context.Background(), points, Options{Trace: &trace})
		require.NoError(t, err)
		assert.True(t, sequential.Equal(traced))
		assert.Contains(t, trace.String(), "farthest is")
	})
}

func TestValidate(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		for _, points := range []PointList{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
			hull, err := ConvexHull(points)
			assert.Nil(t, hull)
			assert.Equal(t, ErrTooFewPoints, errors.Cause(err))
		}
	})

	t.Run("non-finite", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := ConvexHull(PointList{{0, 0}, {1, bad}, {2, 0}})
			assert.Equal(t, ErrNonFinite, errors.Cause(err))
			assert.ErrorIs(t, err, ErrNonFinite)
		}
	})

	t.Run("message", func(t *testing.T) {
		assert.EqualError(t, Validate(PointList{{0, 0}}), "got 1 points: n must be >= 3")
		assert.NoError(t, Validate(fixture.Reference()))
	})
}
