// Package pointio reads point sets and writes hull reports.
package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/quickhull/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	SVG  Format = "svg"
)

var Formats = []Format{Text, YAML, SVG}

func Read(in io.Reader, format Format) (advanced.PointList, error) {
	switch format {
	case Text:
		return ReadText(in)
	case YAML:
		return ReadYAML(in)
	case SVG:
		return ReadSVG(in)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Read newline separated points in the form "x y". Commas are accepted as
// separators too. Blank lines and lines starting with # are skipped.
func ReadText(in io.Reader) (advanced.PointList, error) {
	var points advanced.PointList
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(strings.Fields(strings.ReplaceAll(line, ",", " ")))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(parts []string) (advanced.Point, error) {
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlPointSet struct {
	Points []yamlPoint `yaml:"points"`
}

// Read a YAML document of the form:
//
//	points:
//	  - {x: 0, y: 3}
//	  - {x: 1, y: 1}
func ReadYAML(in io.Reader) (advanced.PointList, error) {
	var set yamlPointSet
	if err := yaml.NewDecoder(in).Decode(&set); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding yaml points")
	}
	points := make(advanced.PointList, len(set.Points))
	for i, p := range set.Points {
		points[i] = advanced.Point{X: p.X, Y: p.Y}
	}
	return points, nil
}

// Read points out of an SVG document. This is not a full (or even correct) svg
// parser. Every circle contributes its center, and every polygon or polyline
// contributes its vertices, in document order. Transforms are ignored, and
// coordinates are taken as-is, so y points down. That mirrors the hull but
// doesn't change which points are on it.
func ReadSVG(in io.Reader) (advanced.PointList, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points advanced.PointList
	err = walkSVG(root, func(el *svgparser.Element) error {
		switch el.Name {
		case "circle", "ellipse":
			point, err := parsePoint([]string{el.Attributes["cx"], el.Attributes["cy"]})
			if err != nil {
				return errors.Wrapf(err, "%s center", el.Name)
			}
			points = append(points, point)
		case "polygon", "polyline":
			for _, pointString := range strings.Fields(el.Attributes["points"]) {
				point, err := parsePoint(strings.Split(pointString, ","))
				if err != nil {
					return errors.Wrapf(err, "%s point %q", el.Name, pointString)
				}
				points = append(points, point)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// Depth first, in document order
func walkSVG(el *svgparser.Element, fn func(*svgparser.Element) error) error {
	if err := fn(el); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := walkSVG(child, fn); err != nil {
			return err
		}
	}
	return nil
}
