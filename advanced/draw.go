package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the point cloud so points on the hull aren't cut off
const drawPadding = 20

const pointRadius = 3

// Render the point set and its hull. Hull vertices are drawn in green, other
// points in grey, and the hull polygon is outlined in cyan. The context is
// flipped so that y points up, matching the orientation used by SignedArea.
func (h *Hull) Draw(scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range h.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(h.Points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	polygon := h.Polygon()
	if len(polygon) > 1 {
		c.MoveTo(polygon[0].X, polygon[0].Y)
		for _, p := range polygon[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	// Radius is in pixels, so undo the scale
	radius := pointRadius / scale
	for i, p := range h.Points {
		c.DrawCircle(p.X, p.Y, radius)
		if h.Members[i] {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(0.6, 0.6, 0.6)
		}
		c.Fill()
	}
	return c
}

func (h *Hull) SavePNG(path string, scale float64) error {
	if err := h.Draw(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving hull image to %s", path)
	}
	return nil
}

// Print the rendered hull to the terminal. This only works in terminals that
// support the iTerm inline image protocol.
func (h *Hull) Preview(scale float64) error {
	dir, err := os.MkdirTemp("", "quickhull")
	if err != nil {
		return errors.Wrap(err, "creating preview directory")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "hull.png")
	if err := h.SavePNG(path, scale); err != nil {
		return err
	}
	return imgcat.CatFile(path, os.Stdout)
}
