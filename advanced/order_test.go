package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHullPolygon(t *testing.T) {
	t.Run("reference set", func(t *testing.T) {
		hull := Compute(referencePoints(), 4, 3)
		assert.Equal(t, PointList{{0, 0}, {3, 1}, {4, 4}, {0, 3}}, hull.Polygon())
		// Vertices stay in input order
		assert.Equal(t, PointList{{0, 3}, {4, 4}, {0, 0}, {3, 1}}, hull.Vertices())
	})

	t.Run("collinear", func(t *testing.T) {
		hull := Compute(PointList{{2, 2}, {1, 1}, {0, 0}}, 2, 0)
		assert.Equal(t, PointList{{0, 0}, {2, 2}}, hull.Polygon())
	})

	t.Run("single point", func(t *testing.T) {
		hull := Compute(PointList{{1, 1}, {1, 1}, {1, 1}}, 0, 0)
		assert.Equal(t, PointList{{1, 1}}, hull.Polygon())
	})

	t.Run("counterclockwise", func(t *testing.T) {
		// A square listed clockwise
		hull := Compute(PointList{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0.5, 0.5}}, 0, 2)
		polygon := hull.Polygon()
		assert.Len(t, polygon, 4)
		for i := range polygon {
			a, b, c := polygon[i], polygon[(i+1)%4], polygon[(i+2)%4]
			assert.Equal(t, Left, SideOf(SignedArea(a.X, a.Y, b.X, b.Y, c.X, c.Y)))
		}
	})
}
