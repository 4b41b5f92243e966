package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"palspect/internal/widget"
)

var face = basicfont.Face7x13

// label draws anchored text. Vertical labels are rasterised upright first
// and copied rotated a quarter turn clockwise.
func (c *canvas) label(r image.Rectangle, l widget.Label) {
	w := font.MeasureString(face, l.Text).Ceil()
	h := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	x, y := px(r, l.X, l.Y)
	if l.Vertical {
		c.verticalLabel(x, y, w, h, ascent, l)
		return
	}

	x += anchorDX(l.Anchor, w)
	y += anchorDY(l.Anchor, h)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(rgba(l.Colour)),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	d.DrawString(l.Text)
}

func (c *canvas) verticalLabel(x, y, w, h, ascent int, l widget.Label) {
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(color.RGBA{A: 0xff}),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(l.Text)

	// Rotated bounds swap: width h, height w.
	x += anchorDX(l.Anchor, h)
	y += anchorDY(l.Anchor, w)
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			if _, _, _, a := tmp.At(sx, sy).RGBA(); a > 0 {
				c.set(x+h-1-sy, y+sx, l.Colour)
			}
		}
	}
}

// anchorDX shifts text left so the anchor point sits on the named side.
func anchorDX(a widget.Anchor, w int) int {
	switch a {
	case widget.AnchorNE, widget.AnchorE, widget.AnchorSE:
		return -w
	case widget.AnchorN, widget.AnchorS, widget.AnchorC:
		return -w / 2
	default:
		return 0
	}
}

func anchorDY(a widget.Anchor, h int) int {
	switch a {
	case widget.AnchorSE, widget.AnchorS, widget.AnchorSW:
		return -h
	case widget.AnchorE, widget.AnchorW, widget.AnchorC:
		return -h / 2
	default:
		return 0
	}
}
