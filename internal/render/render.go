// Package render rasterises a laid-out analysis sheet into a PNG. It is the
// only package that touches pixels; everything upstream works in normalised
// widget coordinates.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hashicorp/go-hclog"

	"palspect/internal/analyse"
	"palspect/internal/widget"
)

// PNG renders sheets to PNG files.
type PNG struct {
	log hclog.Logger
}

// NewPNG returns a PNG renderer logging through log.
func NewPNG(log hclog.Logger) *PNG {
	return &PNG{log: log}
}

// Render rasterises the sheet and writes it to path.
func (r *PNG) Render(s *analyse.Sheet, path string) error {
	c := newCanvas(s.W, s.H)
	c.fill(c.bounds(), s.Background)
	c.fill(s.Panel, s.PanelFill)

	for _, item := range s.Items {
		for _, prim := range item.Prims {
			c.draw(item.Rect, prim)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	r.log.Debug("sheet rendered", "path", path, "size", fmt.Sprintf("%dx%d", s.W, s.H))
	return nil
}

// draw dispatches one primitive into its pixel rectangle.
func (c *canvas) draw(r image.Rectangle, prim widget.Primitive) {
	switch v := prim.(type) {
	case widget.Polygon:
		c.polygon(r, v)
	case widget.Polyline:
		c.polyline(r, v)
	case widget.Point:
		c.point(r, v)
	case widget.CellGrid:
		c.cellGrid(r, v)
	case widget.Label:
		c.label(r, v)
	}
}
