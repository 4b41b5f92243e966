package widget

import (
	"math"

	"palspect/internal/colour"
)

// HueChromaPolar scatters the palette by hue angle and chroma radius inside
// the locus gamut ring: grid rings, the six reference hue anchors and one
// disc per member, the darkest one outlined.
type HueChromaPolar struct {
	BoundarySamples int
}

func (w HueChromaPolar) Generate(ctx *Context) []Primitive {
	samples := w.BoundarySamples
	if samples <= 0 {
		samples = 72
	}

	out := []Primitive{circle(0.5, 0.5, 0.5, 0, ctx.P.BGRGB)}
	// Centre cross.
	out = append(out,
		Polyline{Pts: [][2]float64{{0.45, 0.5}, {0.55, 0.5}}, Colour: ctx.P.BGRGB},
		Polyline{Pts: [][2]float64{{0.5, 0.45}, {0.5, 0.55}}, Colour: ctx.P.BGRGB},
	)
	for _, r := range []float64{0.125, 0.25, 0.375} {
		out = append(out, circle(0.5, 0.5, r, 3, ctx.P.BGRGB))
	}

	boundary := ctx.Locus.Boundary(samples)
	ring := Polyline{Colour: ctx.P.FGRGB, Closed: true}
	for i, c := range boundary {
		a := float64(i) / float64(len(boundary)) * 2 * math.Pi
		ring.Pts = append(ring.Pts, [2]float64{
			0.5 + c*0.5*math.Cos(a),
			0.5 - c*0.5*math.Sin(a),
		})
	}
	out = append(out, ring)

	for _, m := range ctx.HueMarks {
		out = append(out, Label{
			X:      0.5 + (m.Chroma*0.5+0.06)*math.Cos(m.Hue),
			Y:      0.5 - (m.Chroma*0.5+0.06)*math.Sin(m.Hue),
			Text:   m.Name,
			Anchor: AnchorC,
			Colour: ctx.P.FGRGB,
		})
	}

	minDia, maxDia := discRange(ctx.P.Len())
	for i, c := range ctx.P.UCS {
		h := math.Atan2(c.B, c.A)
		chroma := clip(c.C/100, 0, 1)
		if chroma <= 0.1 {
			chroma = 0
		}
		out = append(out, Point{
			X:          0.5 + chroma*0.5*math.Cos(h),
			Y:          0.5 - chroma*0.5*math.Sin(h),
			Dia:        minDia + chroma*(maxDia-minDia),
			Colour:     ctx.P.RGB[i],
			Ring:       i == ctx.P.BL,
			RingColour: ctx.P.BGRGB,
		})
	}
	return out
}

// discRange scales scatter disc sizes down as the palette grows.
func discRange(n int) (min, max float64) {
	switch {
	case n <= 24:
		min = 0.045
	default:
		min = 0.025
	}
	switch {
	case n <= 64:
		max = 0.085
	case n <= 128:
		max = 0.065
	default:
		max = 0.045
	}
	return min, max
}

// circle approximates a circle outline as a closed polyline.
func circle(cx, cy, r float64, gap int, c colour.RGB255) Polyline {
	const segments = 64
	p := Polyline{Colour: c, Gap: gap, Closed: true}
	for i := 0; i < segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		p.Pts = append(p.Pts, [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return p
}
