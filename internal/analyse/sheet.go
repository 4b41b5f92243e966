// Package analyse drives one palette analysis request end to end: it runs
// the kernels, lays the widgets out on the sheet and hands the placed
// primitives to a renderer. It owns all per-request state; nothing here is
// shared between requests except the read-only locus table.
package analyse

import (
	"image"

	"palspect/internal/colour"
	"palspect/internal/widget"
)

// Placed is one widget's primitives bound to a pixel rectangle on the sheet.
type Placed struct {
	Rect  image.Rectangle
	Prims []widget.Primitive
}

// Sheet is the fully laid-out analysis: a background, a framed inner panel
// and the placed widgets, captions included. Coordinates are in pixels.
type Sheet struct {
	W, H       int
	Background colour.RGB255
	Panel      image.Rectangle
	PanelFill  colour.RGB255
	Items      []Placed
}

// Renderer turns a finished sheet into an image file. The engine knows
// nothing about pixel formats beyond this boundary.
type Renderer interface {
	Render(s *Sheet, path string) error
}

// The original sheet was authored on a 640x432 grid; everything is placed in
// those units and scaled up at render size.
const (
	baseW = 640
	baseH = 432
	scale = 2
)

// imageRect scales a base-grid rectangle to sheet pixels.
func imageRect(x, y, w, h int) image.Rectangle {
	return image.Rect(x*scale, y*scale, (x+w)*scale, (y+h)*scale)
}

// place appends a widget's primitives at a base-grid rectangle.
func (s *Sheet) place(x, y, w, h int, prims []widget.Primitive) {
	s.Items = append(s.Items, Placed{
		Rect:  image.Rect(x*scale, y*scale, (x+w)*scale, (y+h)*scale),
		Prims: prims,
	})
}

// caption places a single label in a thin strip, the sheet's captions and
// headers all go through here.
func (s *Sheet) caption(x, y, w, h int, l widget.Label) {
	s.place(x, y, w, h, []widget.Primitive{l})
}
