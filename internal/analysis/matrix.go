package analysis

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"palspect/internal/colour"
)

// ErrDegenerateMetric reports a palette containing two exactly coincident
// colours, which breaks the ratio-based similarity score.
var ErrDegenerateMetric = errors.New("coincident colours degenerate the metric")

// DistanceMatrix evaluates the metric over every pair of palette members.
// The result is symmetric with a zero diagonal, indexed by palette position,
// and belongs to the current request only.
func (p *Palette) DistanceMatrix() *mat.SymDense {
	n := p.Len()
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, colour.Dist(p.UCS[i], p.UCS[j]))
		}
	}
	return m
}

// InternalSimilarity scores how redundant a palette is: the mean off-diagonal
// distance over the minimum one, size-normalised by n^(2/3). Higher means
// more clustered. Fails with ErrDegenerateMetric when two members coincide.
func InternalSimilarity(m *mat.SymDense) (float64, error) {
	n, _ := m.Dims()
	pairs := n * (n - 1) / 2
	min := math.MaxFloat64
	mean := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.At(i, j)
			mean += d / float64(pairs)
			if d < min {
				min = d
			}
		}
	}
	if min <= 0 {
		return 0, ErrDegenerateMetric
	}
	return mean / min / math.Pow(float64(n), 2.0/3.0), nil
}

// ClosePair records one member's nearest other member under a particular
// lightness weighting.
type ClosePair struct {
	I, J int
	Dist float64
}

// RankedPairs lists every unordered pair sorted by ascending weighted
// distance. The close-colour swatches read their top entries from it.
func (p *Palette) RankedPairs(w float64) []ClosePair {
	var pairs []ClosePair
	for i := 0; i < p.Len()-1; i++ {
		for j := i + 1; j < p.Len(); j++ {
			pairs = append(pairs, ClosePair{
				I: i, J: j,
				Dist: colour.DistWeighted(p.UCS[i], p.UCS[j], w),
			})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].Dist != pairs[b].Dist {
			return pairs[a].Dist < pairs[b].Dist
		}
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
	return pairs
}

// CloseColourPairs recomputes the nearest-neighbour relation once per
// lightness weighting. Each inner slice has one entry per palette member,
// ties broken by lowest index.
func (p *Palette) CloseColourPairs(weights []float64) [][]ClosePair {
	out := make([][]ClosePair, len(weights))
	for wi, w := range weights {
		pairs := make([]ClosePair, p.Len())
		for i := range p.UCS {
			best := ClosePair{I: i, J: -1, Dist: math.MaxFloat64}
			for j := range p.UCS {
				if j == i {
					continue
				}
				if d := colour.DistWeighted(p.UCS[i], p.UCS[j], w); d < best.Dist {
					best.J = j
					best.Dist = d
				}
			}
			pairs[i] = best
		}
		out[wi] = pairs
	}
	return out
}
