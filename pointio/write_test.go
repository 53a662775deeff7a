package pointio

import (
	"bytes"
	"testing"

	"github.com/osuushi/quickhull/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func referenceHull() *advanced.Hull {
	points := advanced.PointList{{0, 3}, {1, 1}, {2, 2}, {4, 4}, {0, 0}, {1, 2}, {3, 1}, {3, 3}}
	return advanced.Compute(points, 4, 3)
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteText(&out, referenceHull()))
	assert.Equal(t, `4 points in the hull
(0.000000, 3.000000)
(4.000000, 4.000000)
(0.000000, 0.000000)
(3.000000, 1.000000)
`, out.String())
}

func TestWriteYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteYAML(&out, referenceHull()))

	var report yamlReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 4, report.Count)
	assert.Equal(t, []yamlVertex{
		{Index: 0, X: 0, Y: 3},
		{Index: 3, X: 4, Y: 4},
		{Index: 4, X: 0, Y: 0},
		{Index: 6, X: 3, Y: 1},
	}, report.Vertices)
	assert.Equal(t, []yamlPoint{{0, 0}, {3, 1}, {4, 4}, {0, 3}}, report.Polygon)
	assert.Contains(t, out.String(), "count: 4\n")
}
