package widget

import "palspect/internal/analysis"

// CloseColours shows the most easily confused pairs under one lightness
// weighting, each pair as two stacked swatches. Slots beyond the pair count
// are dithered out. PerMember switches from the globally closest pairs to
// each member's own nearest partner, in palette order.
type CloseColours struct {
	Weight    float64
	Count     int
	PerMember bool
}

func (w CloseColours) Generate(ctx *Context) []Primitive {
	var pairs []analysis.ClosePair
	if w.PerMember {
		pairs = ctx.P.CloseColourPairs([]float64{w.Weight})[0]
	} else {
		pairs = ctx.P.RankedPairs(w.Weight)
	}
	ww := 1.0 / float64(w.Count)
	var out []Primitive
	for k := 0; k < w.Count; k++ {
		x := float64(k) * ww
		if k < len(pairs) {
			pr := pairs[k]
			out = append(out,
				rect(x, 0, ww*0.9, 0.5, ctx.P.RGB[pr.I]),
				rect(x, 0.5, ww*0.9, 0.5, ctx.P.RGB[pr.J]),
			)
			if pr.I == ctx.P.BL || pr.J == ctx.P.BL {
				out = append(out, frame(x, 0, ww*0.9, 1, ctx.P.BGRGB))
			}
		} else {
			out = append(out, dithered(x, 0, ww*0.9, 1, ctx.P.BGRGB, ctx.P.BLRGB))
		}
	}
	return out
}

// UsefulMixes fills a slot grid with dithered previews of the mixes that
// would most widen the palette, best first.
type UsefulMixes struct {
	Cols, Rows int
	Budget     int
}

func (w UsefulMixes) Generate(ctx *Context) []Primitive {
	budget := w.Budget
	if budget <= 0 {
		budget = 4096
	}
	mixes := analysis.SelectMixes(ctx.P.SearchMixCandidates(budget), w.Cols*w.Rows)

	ww := 1.0 / float64(w.Cols)
	hh := 1.0 / float64(w.Rows)
	var out []Primitive
	for yi := 0; yi < w.Rows; yi++ {
		for xi := 0; xi < w.Cols; xi++ {
			k := yi*w.Cols + xi
			x := float64(xi) * ww
			y := float64(yi) * hh
			if k < len(mixes) {
				m := mixes[k]
				out = append(out, dithered(x, y, ww*0.9, hh*0.9, ctx.P.RGB[m.I], ctx.P.RGB[m.J]))
			} else {
				out = append(out, frame(x, y, ww*0.9, hh*0.9, ctx.P.BGRGB))
			}
		}
	}
	return out
}
