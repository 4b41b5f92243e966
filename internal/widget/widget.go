package widget

import "palspect/internal/colour"

// Widget is one configured layout generator. Each implementation is a small
// configuration struct; Generate is pure over the Context.
type Widget interface {
	Generate(ctx *Context) []Primitive
}

// IndexedPalette shows every colour in palette order on a fixed slot grid.
// Slots past the palette size stay unpainted.
type IndexedPalette struct {
	Cols, Rows int
}

func (w IndexedPalette) Generate(ctx *Context) []Primitive {
	cells := make([]colour.RGB255, w.Cols*w.Rows)
	mask := make([]bool, w.Cols*w.Rows)
	for i := 0; i < ctx.P.Len() && i < len(cells); i++ {
		cells[i] = ctx.P.RGB[i]
		mask[i] = true
	}
	return []Primitive{
		CellGrid{Cols: w.Cols, Rows: w.Rows, Cells: cells, Mask: mask},
		frame(0, 0, 1, 1, ctx.P.BGRGB),
	}
}

// MainPalette is the lightness-sorted strip, the darkest member framed.
type MainPalette struct{}

func (MainPalette) Generate(ctx *Context) []Primitive {
	n := ctx.P.Len()
	ww := 1.0 / float64(n)
	out := make([]Primitive, 0, n+1)
	for k, i := range ctx.P.Sorted {
		x := float64(k) * ww
		out = append(out, rect(x, 0, ww, 1, ctx.P.RGB[i]))
		if i == ctx.P.BL {
			out = append(out, frame(x, 0, ww, 1, ctx.P.BGRGB))
		}
	}
	return out
}

// LightnessChromaComponents draws one bar pair per colour in palette order:
// lightness growing leftward from the centre gap, chroma growing rightward.
type LightnessChromaComponents struct {
	MaxRows int
}

func (w LightnessChromaComponents) Generate(ctx *Context) []Primitive {
	n := ctx.P.Len()
	rows := n
	if w.MaxRows > 0 && rows > w.MaxRows {
		rows = w.MaxRows
	}
	const gap = 0.06
	half := (1 - gap) / 2
	hh := 1.0 / float64(rows)

	out := []Primitive{
		Label{X: 0, Y: 0, Text: "LI", Anchor: AnchorSW, Colour: ctx.P.FGRGB},
		Label{X: 1, Y: 0, Text: "CHR", Anchor: AnchorSE, Colour: ctx.P.FGRGB},
	}
	for r := 0; r < rows; r++ {
		y := float64(r) * hh
		c := ctx.P.UCS[r]
		lj := clip(c.J/100, 0, 1) * half
		lc := clip(c.C/100, 0, 1) * half
		if lj > 0 {
			out = append(out, rect(half-lj, y, lj, hh*0.85, ctx.P.RGB[r]))
		}
		if lc > 0 {
			out = append(out, rect(half+gap, y, lc, hh*0.85, ctx.P.RGB[r]))
		}
	}
	return out
}

// Neutralisers pairs each sorted member with its chroma-cancelling partner.
// A slot is drawn only when the pair's mixed chroma is nearly neutral.
type Neutralisers struct{}

func (Neutralisers) Generate(ctx *Context) []Primitive {
	n := ctx.P.Len()
	ww := 1.0 / float64(n)
	var out []Primitive
	for k, i := range ctx.P.Sorted {
		c := ctx.P.UCS[i]
		j := ctx.P.Neutraliser(c)
		if j == i {
			continue
		}
		mid := ctx.P.UCS[j]
		a := (c.A + mid.A) / 2
		b := (c.B + mid.B) / 2
		if a*a+b*b > 100 {
			continue
		}
		x := float64(k) * ww
		out = append(out, rect(x+ww*0.15, 0, ww*0.7, 0.45, ctx.P.RGB[j]))
		out = append(out, dithered(x+ww*0.25, 0.45, ww*0.5, 0.55, ctx.P.RGB[j], ctx.P.RGB[i]))
	}
	return out
}
