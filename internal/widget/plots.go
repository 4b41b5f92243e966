package widget

import (
	"math"

	"palspect/internal/colour"
)

// HueLightnessRect rasterises a fixed-chroma slice of the appearance space:
// hue along x, lightness along y, every cell projected onto the palette.
type HueLightnessRect struct {
	Chroma     float64
	Cols, Rows int
}

func (w HueLightnessRect) Generate(ctx *Context) []Primitive {
	cells := make([]colour.RGB255, w.Cols*w.Rows)
	for r := 0; r < w.Rows; r++ {
		y := float64(r) / float64(w.Rows-1)
		for c := 0; c < w.Cols; c++ {
			x := float64(c) / float64(w.Cols-1)
			target := colour.CAM16UCS{
				J: (1 - y) * 100,
				A: w.Chroma * math.Cos(x*2*math.Pi),
				B: w.Chroma * math.Sin(x*2*math.Pi),
				C: w.Chroma,
			}
			cells[r*w.Cols+c] = ctx.P.RGB[ctx.P.Nearest(target)]
		}
	}
	return []Primitive{CellGrid{Cols: w.Cols, Rows: w.Rows, Cells: cells}}
}

// HueLightnessPolar is the polar variant: hue as angle, lightness as radius
// (centre dark, or centre light when Inverted), at one fixed chroma.
type HueLightnessPolar struct {
	Chroma   float64
	Inverted bool
	Cells    int // raster is Cells x Cells
}

func (w HueLightnessPolar) Generate(ctx *Context) []Primitive {
	cells := make([]colour.RGB255, w.Cells*w.Cells)
	mask := make([]bool, w.Cells*w.Cells)
	for r := 0; r < w.Cells; r++ {
		dy := float64(r)/float64(w.Cells-1)*2 - 1
		for c := 0; c < w.Cells; c++ {
			dx := float64(c)/float64(w.Cells-1)*2 - 1
			radius := math.Hypot(dx, dy)
			if radius > 1 {
				continue
			}
			j := radius * 100
			if w.Inverted {
				j = (1 - radius) * 100
			}
			angle := math.Atan2(-dy, dx)
			target := colour.CAM16UCS{
				J: j,
				A: w.Chroma * math.Cos(angle),
				B: w.Chroma * math.Sin(angle),
				C: w.Chroma,
			}
			i := r*w.Cells + c
			cells[i] = ctx.P.RGB[ctx.P.Nearest(target)]
			mask[i] = true
		}
	}
	return []Primitive{CellGrid{Cols: w.Cells, Rows: w.Cells, Cells: cells, Mask: mask}}
}

// GreyscaleLiMatch maps the neutral axis against a sweep of lightness
// weightings: weight along x, lightness along y. The right strip stacks one
// mark per member at its own lightness.
type GreyscaleLiMatch struct {
	Cols, Rows int
}

func (w GreyscaleLiMatch) Generate(ctx *Context) []Primitive {
	const plotSpan = 0.9
	plotCols := int(float64(w.Cols) * plotSpan)
	cells := make([]colour.RGB255, w.Cols*w.Rows)
	mask := make([]bool, w.Cols*w.Rows)
	for r := 0; r < w.Rows; r++ {
		j := (1 - float64(r)/float64(w.Rows-1)) * 100
		for c := 0; c < plotCols; c++ {
			weight := float64(c) / float64(plotCols-1)
			target := colour.CAM16UCS{J: j}
			i := r*w.Cols + c
			cells[i] = ctx.P.RGB[ctx.P.NearestWeighted(target, weight)]
			mask[i] = true
		}
	}

	out := []Primitive{CellGrid{Cols: w.Cols, Rows: w.Rows, Cells: cells, Mask: mask}}

	// Member marks, stacked when several members share a lightness level.
	levels := map[int]int{}
	for i := range ctx.P.RGB {
		yy := int(clip(ctx.P.UCS[i].J/100, 0, 1) * float64(w.Rows-1))
		stack := levels[yy]
		levels[yy]++
		out = append(out, Point{
			X:      plotSpan + 0.02 + float64(stack)*0.025,
			Y:      1 - float64(yy)/float64(w.Rows-1),
			Colour: ctx.P.RGB[i],
		})
	}
	return out
}
