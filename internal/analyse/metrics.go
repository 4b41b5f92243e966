package analyse

import (
	"fmt"

	"palspect/internal/analysis"
	"palspect/internal/colour"
)

// Metric is one named palette measurement for machine-readable output.
type Metric struct {
	Name  string
	Value string
}

// Metrics computes the numeric summary of a palette without rendering
// anything: the delimited-output mode of the command line and the daemon.
func Metrics(req Request) ([]Metric, error) {
	ill := colour.NewIlluminant(colour.ChromaticityFromCCT(req.temperature()))
	p, err := analysis.New(req.Colours, ill, req.GreyUI)
	if err != nil {
		return nil, err
	}
	m := p.DistanceMatrix()
	iss, err := analysis.InternalSimilarity(m)
	if err != nil {
		return nil, err
	}
	report := analysis.AcyclicCheck(analysis.BuildNeighbourGraph(m))

	out := []Metric{
		{Name: "colours", Value: fmt.Sprintf("%d", p.Len())},
		{Name: "iss", Value: fmt.Sprintf("%.2f", iss)},
		{Name: "acyclic", Value: fmt.Sprintf("%t", report.Acyclic())},
		{Name: "longest_cycle", Value: fmt.Sprintf("%d", len(report.Longest()))},
		{Name: "background", Value: p.BGRGB.Hex()},
		{Name: "foreground", Value: p.FGRGB.Hex()},
	}

	// Aggregate temperature, skipping members without an estimate.
	stats := p.CCTStats()
	if len(stats.Points) > 0 {
		var warmth float64
		for _, cct := range stats.Points {
			warmth += cct.Warmth()
		}
		out = append(out, Metric{
			Name:  "mean_warmth",
			Value: fmt.Sprintf("%.2f", warmth/float64(len(stats.Points))),
		})
	}
	return out, nil
}

// Verify runs the palette through the kernels without laying anything out,
// for callers that only need to know whether a palette is analysable.
func Verify(req Request) error {
	ill := colour.NewIlluminant(colour.ChromaticityFromCCT(req.temperature()))
	p, err := analysis.New(req.Colours, ill, req.GreyUI)
	if err != nil {
		return err
	}
	_, err = analysis.InternalSimilarity(p.DistanceMatrix())
	return err
}
