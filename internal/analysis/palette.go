// Package analysis computes the per-palette numbers behind every widget:
// pairwise distances, the nearest-neighbour graph and its cycles, the
// internal-similarity score, spectral and temperature histograms, and the
// mix search. All distance computation goes through colour.Dist and
// colour.DistWeighted; nothing here measures colour difference on its own.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"palspect/internal/colour"
	"palspect/internal/locus"
)

// Palette size bounds. Anything outside is rejected before any kernel runs.
const (
	MinColours = 2
	MaxColours = 256
)

// ErrInvalidPaletteSize reports a palette outside the supported size range.
var ErrInvalidPaletteSize = errors.New("palette size out of range")

// Palette is one analysis request's colour set with all three
// representations precomputed, plus the UI role assignments. It is built
// once per request and never mutated; derived artifacts reference it.
type Palette struct {
	RGB []colour.RGB255
	XYZ []colour.XYZ
	UCS []colour.CAM16UCS

	// Sorted holds palette indices in ascending lightness order.
	Sorted []int

	// UI roles: the darkest member (BL), a mid-grey background candidate
	// (BG), the member farthest from BL (FG) and the strongest accent
	// relative to BG (TL).
	BL, BG, FG, TL int

	// Role colours as drawn. With GreyUI these are fixed neutrals instead
	// of palette members, for palettes whose own colours make poor chrome.
	BLRGB, BGRGB, FGRGB, TLRGB colour.RGB255

	Ill *colour.Illuminant
}

// New validates the palette size, converts every colour through the
// appearance transform and assigns the UI roles.
func New(rgb []colour.RGB255, ill *colour.Illuminant, greyUI bool) (*Palette, error) {
	if len(rgb) < MinColours || len(rgb) > MaxColours {
		return nil, fmt.Errorf("%w: %d colours, want %d to %d",
			ErrInvalidPaletteSize, len(rgb), MinColours, MaxColours)
	}

	p := &Palette{
		RGB: append([]colour.RGB255(nil), rgb...),
		XYZ: make([]colour.XYZ, len(rgb)),
		UCS: make([]colour.CAM16UCS, len(rgb)),
		Ill: ill,
	}
	for i, c := range p.RGB {
		p.XYZ[i] = c.XYZ()
		p.UCS[i] = ill.CAM16(p.XYZ[i])
	}

	p.Sorted = make([]int, len(rgb))
	for i := range p.Sorted {
		p.Sorted[i] = i
	}
	sort.SliceStable(p.Sorted, func(a, b int) bool {
		return p.UCS[p.Sorted[a]].J < p.UCS[p.Sorted[b]].J
	})

	p.assignRoles()
	if greyUI {
		p.BLRGB = colour.RGB255{}
		p.BGRGB = colour.RGB255{R: 127, G: 127, B: 127}
		p.FGRGB = colour.RGB255{R: 255, G: 255, B: 255}
		p.TLRGB = colour.RGB255{R: 255, G: 255, B: 255}
	} else {
		p.BLRGB = p.RGB[p.BL]
		p.BGRGB = p.RGB[p.BG]
		p.FGRGB = p.RGB[p.FG]
		p.TLRGB = p.RGB[p.TL]
	}
	return p, nil
}

func (p *Palette) assignRoles() {
	black := colour.CAM16UCS{}
	grey := colour.CAM16UCS{J: 50}

	p.BL = p.minimise(func(_ int, c colour.CAM16UCS) float64 {
		return colour.Dist(c, black)
	})
	p.BG = p.minimise(func(i int, c colour.CAM16UCS) float64 {
		if i == p.BL {
			return math.MaxFloat64
		}
		notGrey := 100 - colour.Dist(c, grey)
		notBL := colour.DistWeighted(c, p.UCS[p.BL], 0.6)
		return -(math.Pow(notBL, 0.02) * math.Pow(notGrey, 0.98))
	})
	p.FG = p.minimise(func(i int, c colour.CAM16UCS) float64 {
		if i == p.BL {
			return math.MaxFloat64
		}
		return -colour.Dist(c, p.UCS[p.BL])
	})
	p.TL = p.minimise(func(i int, c colour.CAM16UCS) float64 {
		if i == p.BG {
			return math.MaxFloat64
		}
		return -colour.DistWeighted(c, p.UCS[p.BG], 0.6)
	})
}

// minimise returns the palette index with the lowest score. Ties keep the
// lowest index.
func (p *Palette) minimise(score func(int, colour.CAM16UCS) float64) int {
	min := math.MaxFloat64
	argmin := 0
	for i, c := range p.UCS {
		if d := score(i, c); d < min {
			argmin = i
			min = d
		}
	}
	return argmin
}

// Len returns the palette size.
func (p *Palette) Len() int {
	return len(p.RGB)
}

// Nearest returns the index of the palette member closest to an arbitrary
// appearance coordinate.
func (p *Palette) Nearest(x colour.CAM16UCS) int {
	return p.minimise(func(_ int, c colour.CAM16UCS) float64 {
		return colour.Dist(x, c)
	})
}

// NearestWeighted is Nearest under the lightness-weighted metric.
func (p *Palette) NearestWeighted(x colour.CAM16UCS, w float64) int {
	return p.minimise(func(_ int, c colour.CAM16UCS) float64 {
		return colour.DistWeighted(x, c, w)
	})
}

// Neutraliser returns the palette member that best cancels the chroma of x:
// the one closest to its complementary, with lightness nearly ignored.
func (p *Palette) Neutraliser(x colour.CAM16UCS) int {
	z := x.Complementary()
	return p.minimise(func(_ int, c colour.CAM16UCS) float64 {
		return colour.DistWeighted(z, c, 0.1)
	})
}

// SpectralStats is a chroma-weighted histogram over dominant wavelengths,
// normalised to sum to 1, plus each member's resolved wavelength. Members
// on the purple line carry no wavelength and are absent from Points.
type SpectralStats struct {
	Histogram map[colour.Wavelength]float64
	Points    map[int]colour.Wavelength
}

// SpectralStats resolves every member's dominant wavelength against the
// locus table and accumulates chroma-weighted mass per wavelength.
func (p *Palette) SpectralStats(tab *locus.Table) SpectralStats {
	s := SpectralStats{
		Histogram: map[colour.Wavelength]float64{},
		Points:    map[int]colour.Wavelength{},
	}
	for i := range p.RGB {
		wl, ok := tab.NearestSpectral(p.XYZ[i].Chromaticity())
		if !ok {
			continue
		}
		w := p.UCS[i].C / 100
		if w < 0 {
			w = 0
		} else if w > 1 {
			w = 1
		}
		s.Histogram[wl] += w
		s.Points[i] = wl
	}
	normalise(s.Histogram)
	return s
}

// CCTStats is the temperature counterpart of SpectralStats: mass per
// estimated kelvin value, weighted by proximity to the Planckian locus.
// Members too far from the locus carry no estimate.
type CCTStats struct {
	Histogram map[float64]float64
	Points    map[int]colour.CCT
}

// CCTStats estimates each member's correlated colour temperature. Members
// failing with colour.ErrOutOfLocusRange are skipped, never fatal.
func (p *Palette) CCTStats() CCTStats {
	s := CCTStats{
		Histogram: map[float64]float64{},
		Points:    map[int]colour.CCT{},
	}
	for i := range p.RGB {
		cct, err := colour.EstimateCCT(p.XYZ[i])
		if err != nil {
			continue
		}
		s.Histogram[cct.Kelvin] += 1 - cct.Dist*20
		s.Points[i] = cct
	}
	normalise(s.Histogram)
	return s
}

func normalise[K comparable](m map[K]float64) {
	var sum float64
	for _, v := range m {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for k, v := range m {
		m[k] = v / sum
	}
}
