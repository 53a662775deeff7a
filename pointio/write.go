package pointio

import (
	"fmt"
	"io"

	"github.com/osuushi/quickhull/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Write the hull count followed by the coordinates of every hull vertex, in
// input order.
func WriteText(out io.Writer, hull *advanced.Hull) error {
	if _, err := fmt.Fprintf(out, "%d points in the hull\n", hull.Count); err != nil {
		return errors.Wrap(err, "writing report")
	}
	for _, p := range hull.Vertices() {
		if _, err := fmt.Fprintf(out, "(%f, %f)\n", p.X, p.Y); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}

type yamlVertex struct {
	Index int     `yaml:"index"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

type yamlReport struct {
	Count    int          `yaml:"count"`
	Vertices []yamlVertex `yaml:"vertices"`
	Polygon  []yamlPoint  `yaml:"polygon"`
}

// Write the hull as YAML: the count, the vertices in input order with their
// indexes, and the vertices again in counterclockwise order.
func WriteYAML(out io.Writer, hull *advanced.Hull) error {
	report := yamlReport{Count: hull.Count}
	for _, i := range hull.Indices() {
		p := hull.Points[i]
		report.Vertices = append(report.Vertices, yamlVertex{Index: i, X: p.X, Y: p.Y})
	}
	for _, p := range hull.Polygon() {
		report.Polygon = append(report.Polygon, yamlPoint{X: p.X, Y: p.Y})
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "encoding yaml report")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml report")
}
