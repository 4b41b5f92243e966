package colour

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrOutOfLocusRange reports a colour too far from the Planckian locus to
// carry a meaningful colour temperature.
var ErrOutOfLocusRange = errors.New("no plausible colour temperature")

// Planckian locus sampling and the acceptance tolerance in CIE 1960 uv.
const (
	CCTMin       = 1000.0
	CCTMax       = 25000.0
	cctStep      = 100.0
	cctTolerance = 0.05
)

// CCT is a correlated colour temperature estimate: the kelvin value of the
// nearest Planckian locus sample and the uv distance to it.
type CCT struct {
	Kelvin float64
	Dist   float64
}

// Warmth is the log-normalised temperature score in [0, 1]; 1 is the
// warmest end of the sampled locus. Display axes use it directly.
func (c CCT) Warmth() float64 {
	span := math.Log10(CCTMax) - math.Log10(CCTMin)
	return 1 - clip((math.Log10(c.Kelvin)-math.Log10(CCTMin))/span, 0, 1)
}

type cctSample struct {
	kelvin float64
	uv     UV
}

var cctTable = sync.OnceValue(func() []cctSample {
	var table []cctSample
	for t := CCTMin; t <= CCTMax; t += cctStep {
		table = append(table, cctSample{
			kelvin: t,
			uv:     ChromaticityFromCCT(t).UV(),
		})
	}
	return table
})

// EstimateCCT projects a colour onto the Planckian locus and returns the
// nearest sample temperature. Colours farther than the uv tolerance from
// every sample fail with ErrOutOfLocusRange; callers record those as
// "no estimate" rather than aborting the palette.
func EstimateCCT(c XYZ) (CCT, error) {
	uv := c.UV()
	best := CCT{Dist: math.MaxFloat64}
	for _, s := range cctTable() {
		du := uv.U - s.uv.U
		dv := uv.V - s.uv.V
		if d := math.Hypot(du, dv); d < best.Dist {
			best = CCT{Kelvin: s.kelvin, Dist: d}
		}
	}
	if best.Dist > cctTolerance {
		return CCT{}, fmt.Errorf("%w: %.3f from locus", ErrOutOfLocusRange, best.Dist)
	}
	return best, nil
}
