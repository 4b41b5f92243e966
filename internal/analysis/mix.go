package analysis

import (
	"sort"

	"palspect/internal/colour"
)

// MixCandidate is a synthesized colour mixed from two palette members,
// scored by its minimum distance to every existing member. High scores mark
// colours that would most increase palette separation if added.
type MixCandidate struct {
	I, J int     // source pair
	T    float64 // mix position, 0 is pure I
	RGB  colour.RGB255
	UCS  colour.CAM16UCS
	Min  float64
}

// SearchMixCandidates samples convex combinations of every palette pair on
// a fixed grid in tristimulus space. The grid is deterministic so results
// reproduce across runs; budget bounds the total number of samples. The
// result is ordered by descending minimum distance, ties broken by pair
// index then mix position.
func (p *Palette) SearchMixCandidates(budget int) []MixCandidate {
	n := p.Len()
	pairs := n * (n - 1) / 2
	perPair := budget / pairs
	if perPair < 1 {
		perPair = 1
	}

	cands := make([]MixCandidate, 0, pairs*perPair)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			for k := 0; k < perPair; k++ {
				t := float64(k+1) / float64(perPair+1)
				xyz := colour.XYZ{
					X: p.XYZ[i].X*(1-t) + p.XYZ[j].X*t,
					Y: p.XYZ[i].Y*(1-t) + p.XYZ[j].Y*t,
					Z: p.XYZ[i].Z*(1-t) + p.XYZ[j].Z*t,
				}
				ucs := p.Ill.CAM16(xyz)
				cands = append(cands, MixCandidate{
					I: i, J: j, T: t,
					RGB: xyz.RGB255(),
					UCS: ucs,
					Min: p.minDistTo(ucs),
				})
			}
		}
	}

	sort.Slice(cands, func(a, b int) bool {
		ca, cb := cands[a], cands[b]
		if ca.Min != cb.Min {
			return ca.Min > cb.Min
		}
		if ca.I != cb.I {
			return ca.I < cb.I
		}
		if ca.J != cb.J {
			return ca.J < cb.J
		}
		return ca.T < cb.T
	})
	return cands
}

func (p *Palette) minDistTo(x colour.CAM16UCS) float64 {
	min := colour.Dist(x, p.UCS[0])
	for _, c := range p.UCS[1:] {
		if d := colour.Dist(x, c); d < min {
			min = d
		}
	}
	return min
}

// SelectMixes thins an ordered candidate list down to max entries, at most
// one per source pair, penalising candidates close to ones already taken so
// the selection spreads over the palette instead of crowding the single
// widest gap.
func SelectMixes(cands []MixCandidate, max int) []MixCandidate {
	type scored struct {
		c     MixCandidate
		score float64
	}
	best := map[[2]int]scored{}
	for _, c := range cands {
		key := [2]int{c.I, c.J}
		if cur, ok := best[key]; !ok || c.Min > cur.score {
			best[key] = scored{c: c, score: c.Min}
		}
	}
	pool := make([]scored, 0, len(best))
	for _, s := range best {
		pool = append(pool, s)
	}

	var out []MixCandidate
	for len(out) < max && len(pool) > 0 {
		top := 0
		for i := 1; i < len(pool); i++ {
			if pool[i].score > pool[top].score ||
				(pool[i].score == pool[top].score && lessPair(pool[i].c, pool[top].c)) {
				top = i
			}
		}
		picked := pool[top].c
		out = append(out, picked)
		pool = append(pool[:top], pool[top+1:]...)
		for i := range pool {
			pool[i].score += colour.Dist(pool[i].c.UCS, picked.UCS)
		}
	}
	return out
}

func lessPair(a, b MixCandidate) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}
