package widget

import (
	"math"

	"palspect/internal/colour"
)

// distPoint is one palette member placed on a normalised distribution axis.
type distPoint struct {
	index int
	x     float64
}

// distribution renders a kernel-smoothed density curve over [0,1] with one
// mark per contributing member, stacked at the curve's foot.
func distribution(ctx *Context, masses map[float64]float64, points []distPoint, bandwidth float64, lo, hi string) []Primitive {
	const samples = 96
	out := []Primitive{
		frame(0, 0, 1, 1, ctx.P.BGRGB),
		Label{X: 0, Y: 1.02, Text: lo, Anchor: AnchorNW, Colour: ctx.P.BGRGB},
		Label{X: 1, Y: 1.02, Text: hi, Anchor: AnchorNE, Colour: ctx.P.BGRGB},
	}

	density := make([]float64, samples)
	max := 0.0
	for i := range density {
		x := float64(i) / float64(samples-1)
		for pos, m := range masses {
			t := (x - pos) / bandwidth
			density[i] += m * math.Exp(-t*t/2)
		}
		if density[i] > max {
			max = density[i]
		}
	}
	if max > 0 {
		for i := range density {
			density[i] /= max
		}
	}

	curve := Polyline{Colour: ctx.P.FGRGB}
	for i, d := range density {
		curve.Pts = append(curve.Pts, [2]float64{
			0.03 + float64(i)/float64(samples-1)*0.94,
			0.05 + (1-d)*0.85,
		})
	}
	out = append(out, curve)

	// Stack member marks upward from the baseline at their axis position.
	levels := map[int]int{}
	for _, p := range points {
		slot := int(clip(p.x, 0, 1) * (samples - 1))
		stack := levels[slot]
		levels[slot]++
		out = append(out, Point{
			X:      0.03 + clip(p.x, 0, 1)*0.94,
			Y:      0.93 - float64(stack)*0.05,
			Colour: ctx.P.RGB[p.index],
		})
	}
	return out
}

// SpectralDistribution plots chroma-weighted mass over dominant wavelength.
type SpectralDistribution struct {
	Bandwidth float64
}

func (w SpectralDistribution) Generate(ctx *Context) []Primitive {
	stats := ctx.P.SpectralStats(ctx.Locus)
	span := float64(colour.WavelengthMax - colour.WavelengthMin)

	masses := map[float64]float64{}
	for wl, m := range stats.Histogram {
		masses[float64(wl-colour.WavelengthMin)/span] = m
	}
	var points []distPoint
	for i, wl := range stats.Points {
		points = append(points, distPoint{
			index: i,
			x:     float64(wl-colour.WavelengthMin) / span,
		})
	}
	sortPoints(points)
	return distribution(ctx, masses, points, w.bandwidth(),
		colour.WavelengthMin.String(), colour.WavelengthMax.String())
}

func (w SpectralDistribution) bandwidth() float64 {
	if w.Bandwidth > 0 {
		return w.Bandwidth
	}
	return 1.0 / 48
}

// TemperatureDistribution plots temperature mass on a log axis, cold on the
// left, warm on the right.
type TemperatureDistribution struct {
	Bandwidth float64
}

func (w TemperatureDistribution) Generate(ctx *Context) []Primitive {
	stats := ctx.P.CCTStats()

	masses := map[float64]float64{}
	for kelvin, m := range stats.Histogram {
		masses[colour.CCT{Kelvin: kelvin}.Warmth()] = m
	}
	var points []distPoint
	for i, cct := range stats.Points {
		points = append(points, distPoint{index: i, x: cct.Warmth()})
	}
	sortPoints(points)
	bw := w.Bandwidth
	if bw <= 0 {
		bw = 1.0 / 48
	}
	return distribution(ctx, masses, points, bw, "COLD", "WARM")
}

// sortPoints orders marks by palette index so output is deterministic over
// the map-backed stats.
func sortPoints(points []distPoint) {
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j].index < points[j-1].index; j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
}
