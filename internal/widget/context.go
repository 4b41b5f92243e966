package widget

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"palspect/internal/analysis"
	"palspect/internal/colour"
	"palspect/internal/locus"
)

// HueMark is a reference hue anchor drawn around the polar hue-chroma plot.
type HueMark struct {
	Name   string
	Hue    float64 // radians
	Chroma float64 // normalised to [0, 1]
}

// Context bundles everything the generators may consume: the palette, the
// locus table and the derived artifacts, computed once per request. The
// generators themselves stay pure over it.
type Context struct {
	P      *analysis.Palette
	Locus  *locus.Table
	Matrix *mat.SymDense
	Graph  analysis.NeighbourGraph
	Cycles analysis.CycleReport
	ISS    float64

	HueMarks []HueMark
}

// NewContext derives the shared artifacts for one request. It fails only on
// a degenerate palette; every widget may then assume a consistent Context.
func NewContext(p *analysis.Palette, tab *locus.Table) (*Context, error) {
	m := p.DistanceMatrix()
	iss, err := analysis.InternalSimilarity(m)
	if err != nil {
		return nil, err
	}
	g := analysis.BuildNeighbourGraph(m)
	return &Context{
		P:        p,
		Locus:    tab,
		Matrix:   m,
		Graph:    g,
		Cycles:   analysis.AcyclicCheck(g),
		ISS:      iss,
		HueMarks: hueMarks(p.Ill),
	}, nil
}

// hueMarks places the six primary and secondary anchors by their appearance
// hue under the request's illuminant.
func hueMarks(ill *colour.Illuminant) []HueMark {
	refs := []struct {
		name string
		rgb  colour.RGB255
	}{
		{"R", colour.RGB255{R: 255}},
		{"Y", colour.RGB255{R: 255, G: 255}},
		{"G", colour.RGB255{G: 255}},
		{"C", colour.RGB255{G: 255, B: 255}},
		{"B", colour.RGB255{B: 255}},
		{"M", colour.RGB255{R: 255, B: 255}},
	}
	marks := make([]HueMark, len(refs))
	for i, r := range refs {
		c := ill.CAM16(r.rgb.XYZ())
		marks[i] = HueMark{
			Name:   r.name,
			Hue:    math.Atan2(c.B, c.A),
			Chroma: c.C / 100,
		}
	}
	return marks
}

func clip(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
