// Package widget turns palette analysis artifacts into drawable geometry.
// Every generator is a pure function from its inputs and configuration to a
// list of primitives in normalised [0,1]² widget-local coordinates; the
// renderer decides pixels. Generators never convert colours or measure
// distance themselves, they consume what the analysis kernel computed.
package widget

import "palspect/internal/colour"

// Primitive is the closed set of drawable shapes a widget may emit.
type Primitive interface {
	isPrimitive()
}

// Point is a filled disc. Dia is its diameter as a fraction of the widget's
// shorter side; Dia 0 means a single pixel. Ring adds a contrasting outline,
// used to mark the role colours.
type Point struct {
	X, Y       float64
	Dia        float64
	Colour     colour.RGB255
	Ring       bool
	RingColour colour.RGB255
}

// Polyline is a connected line strip. Gap > 0 draws every Gap-th pixel only.
// Closed joins the last vertex back to the first.
type Polyline struct {
	Pts    [][2]float64
	Colour colour.RGB255
	Gap    int
	Closed bool
}

// Polygon is an axis-aligned or convex filled region. When Mix is set the
// fill alternates Fill and Mix in a pixel checkerboard, the dither the
// original swatches use.
type Polygon struct {
	Pts  [][2]float64
	Fill colour.RGB255
	Mix  *colour.RGB255
}

// Anchor positions a label relative to its coordinate.
type Anchor int

const (
	AnchorC Anchor = iota
	AnchorN
	AnchorNE
	AnchorE
	AnchorSE
	AnchorS
	AnchorSW
	AnchorW
	AnchorNW
)

// Label is a short piece of text. Vertical rotates it a quarter turn.
type Label struct {
	X, Y     float64
	Text     string
	Anchor   Anchor
	Colour   colour.RGB255
	Vertical bool
}

// CellGrid is a dense raster spanning the whole widget rect, row-major from
// the top-left. Mask, when non-nil, marks which cells are painted; unmasked
// cells stay transparent.
type CellGrid struct {
	Cols, Rows int
	Cells      []colour.RGB255
	Mask       []bool
}

func (Point) isPrimitive()    {}
func (Polyline) isPrimitive() {}
func (Polygon) isPrimitive()  {}
func (Label) isPrimitive()    {}
func (CellGrid) isPrimitive() {}

// rect is a filled axis-aligned box.
func rect(x, y, w, h float64, fill colour.RGB255) Polygon {
	return Polygon{
		Pts:  [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
		Fill: fill,
	}
}

// dithered is rect with a two-colour checker fill.
func dithered(x, y, w, h float64, a, b colour.RGB255) Polygon {
	p := rect(x, y, w, h, a)
	p.Mix = &b
	return p
}

// frame is the closed outline of an axis-aligned box.
func frame(x, y, w, h float64, c colour.RGB255) Polyline {
	return Polyline{
		Pts:    [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
		Colour: c,
		Closed: true,
	}
}
