// Package locus models the spectral locus: the boundary of the chromaticity
// diagram traced by monochromatic light, closed by the non-spectral purple
// line. The table is built once per illuminant and shared read-only by all
// concurrent requests.
package locus

import (
	"fmt"
	"math"
	"sync"

	"palspect/internal/colour"
)

// purpleSamples is the number of interpolated points placed on the purple
// line between the red and violet extremes.
const purpleSamples = 64

// Sample is one point on the closed locus. NonSpectral marks points on the
// purple line, where Wavelength holds the interpolation position instead of
// a physical wavelength.
type Sample struct {
	Wavelength  colour.Wavelength
	NonSpectral bool
	XY          colour.XY
	UCS         colour.CAM16UCS
	Hue         float64 // fraction of a turn around the white point
}

// Table is the immutable spectral locus for one illuminant.
type Table struct {
	white    colour.XY
	spectral []Sample // ascending wavelength
	purple   []Sample
	hueMin   float64 // hue of the red extreme (longest wavelength)
	hueMax   float64 // hue of the violet extreme (shortest wavelength)
}

var (
	tableMu sync.Mutex
	tables  = map[colour.XY]*Table{}
)

// For returns the locus table for an illuminant, building it on first use.
// The returned table is never mutated.
func For(ill *colour.Illuminant) *Table {
	tableMu.Lock()
	defer tableMu.Unlock()
	if t, ok := tables[ill.WhitePoint()]; ok {
		return t
	}
	t := build(ill)
	tables[ill.WhitePoint()] = t
	return t
}

func build(ill *colour.Illuminant) *Table {
	white := ill.WhiteXYZ().Chromaticity()
	t := &Table{white: white}

	for wl := colour.WavelengthMin; wl <= colour.WavelengthMax; wl += colour.WavelengthStep {
		xyz := wl.XYZ()
		xy := xyz.Chromaticity()
		t.spectral = append(t.spectral, Sample{
			Wavelength: wl,
			XY:         xy,
			UCS:        ill.CAM16(xyz),
			Hue:        xy.HueRelativeTo(white),
		})
	}

	violet := t.spectral[0]
	red := t.spectral[len(t.spectral)-1]
	t.hueMin = red.Hue
	t.hueMax = violet.Hue

	// The purple line runs from the red extreme back to the violet one.
	for i := 0; i < purpleSamples; i++ {
		a := float64(i+1) / float64(purpleSamples+1)
		xy := colour.XY{
			X: red.XY.X*(1-a) + violet.XY.X*a,
			Y: red.XY.Y*(1-a) + violet.XY.Y*a,
		}
		t.purple = append(t.purple, Sample{
			Wavelength:  colour.Wavelength(a),
			NonSpectral: true,
			XY:          xy,
			UCS:         colour.Mix(red.UCS, violet.UCS, a),
			Hue:         xy.HueRelativeTo(white),
		})
	}

	t.verifyEncirclement()
	return t
}

// verifyEncirclement checks the build-time invariant that the closed locus
// fully surrounds the white point, so hue lookups can never fail. The step
// between adjacent samples bounds the largest admissible hue gap.
func (t *Table) verifyEncirclement() {
	all := t.closed()
	hues := make([]float64, len(all))
	for i, s := range all {
		hues[i] = s.Hue
	}
	const maxGap = 0.05
	for i := range hues {
		gap := math.Abs(hues[(i+1)%len(hues)] - hues[i])
		if gap > 0.5 {
			gap = 1 - gap
		}
		if gap > maxGap {
			panic(fmt.Sprintf(
				"locus: white point %+v not encircled: hue gap %.4f between samples %d and %d",
				t.white, gap, i, (i+1)%len(all)))
		}
	}
}

// closed returns the full locus in traversal order: spectral arc then the
// purple line.
func (t *Table) closed() []Sample {
	out := make([]Sample, 0, len(t.spectral)+len(t.purple))
	out = append(out, t.spectral...)
	out = append(out, t.purple...)
	return out
}

// White returns the reference white chromaticity.
func (t *Table) White() colour.XY {
	return t.white
}

// HasSpectral reports whether a hue angle (fraction of a turn, as produced
// by colour.XY.HueRelativeTo) lands on the spectral arc rather than the
// purple line.
func (t *Table) HasSpectral(hue float64) bool {
	return t.hueMin <= hue && hue <= t.hueMax
}

// Nearest returns the locus sample whose hue is closest to the given hue
// angle (fraction of a turn, wrapping at 1). Ties go to the lower
// wavelength. Lookup cannot fail: the closed locus encircles the white
// point by construction.
func (t *Table) Nearest(hue float64) Sample {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	best := t.spectral[0]
	min := math.MaxFloat64
	for _, s := range t.closed() {
		d := math.Abs(s.Hue - hue)
		if d > 0.5 {
			d = 1 - d
		}
		if d < min {
			best = s
			min = d
		}
	}
	return best
}

// NearestSpectral resolves a chromaticity to its dominant wavelength if its
// hue lies on the spectral arc. The second return is false for non-spectral
// purples.
func (t *Table) NearestSpectral(p colour.XY) (colour.Wavelength, bool) {
	hue := p.HueRelativeTo(t.white)
	if !t.HasSpectral(hue) {
		return 0, false
	}
	s := t.Nearest(hue)
	if s.NonSpectral {
		return 0, false
	}
	return s.Wavelength, true
}

// Boundary samples the maximum UCS chroma of the closed locus into n hue
// buckets (normalised to [0, 1]); the polar hue-chroma widget draws it as
// the gamut ring.
func (t *Table) Boundary(n int) []float64 {
	out := make([]float64, n)
	for _, s := range t.closed() {
		hue := s.UCS.Hue() / (2 * math.Pi)
		i := int(hue*float64(n)) % n
		c := s.UCS.C / 100
		if c > 1 {
			c = 1
		}
		if c > out[i] {
			out[i] = c
		}
	}
	// Fill buckets the sampling left empty from their neighbours.
	for i := range out {
		if out[i] == 0 {
			prev := out[(i+n-1)%n]
			next := out[(i+1)%n]
			out[i] = math.Max(prev, next)
		}
	}
	return out
}
