package analysis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NeighbourGraph maps each palette index to its nearest other member: a
// functional graph, one outgoing edge per node, self-loops impossible.
type NeighbourGraph []int

// BuildNeighbourGraph selects the minimum off-diagonal entry per row, ties
// broken by lowest column index.
func BuildNeighbourGraph(m *mat.SymDense) NeighbourGraph {
	n, _ := m.Dims()
	g := make(NeighbourGraph, n)
	for i := 0; i < n; i++ {
		best := -1
		min := math.MaxFloat64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if d := m.At(i, j); d < min {
				best = j
				min = d
			}
		}
		g[i] = best
	}
	return g
}

// CycleReport lists every cycle in a functional graph. Each component of a
// functional graph contains exactly one cycle, so the list is never empty;
// mutual nearest pairs appear as 2-cycles alongside longer ones. Each cycle
// is rotated to start at its smallest member.
type CycleReport struct {
	Cycles [][]int
}

// Acyclic reports whether the neighbour structure is tree-like: no cycle
// longer than a mutual pair. Mutual 2-cycles are unavoidable (some pair is
// always each other's nearest), so only longer cycles count against it.
func (r CycleReport) Acyclic() bool {
	for _, c := range r.Cycles {
		if len(c) > 2 {
			return false
		}
	}
	return true
}

// Longest returns the longest reported cycle.
func (r CycleReport) Longest() []int {
	var best []int
	for _, c := range r.Cycles {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}

// AcyclicCheck traverses the functional graph from every node and collects
// each component's cycle.
func AcyclicCheck(g NeighbourGraph) CycleReport {
	const (
		unvisited = 0
		done      = -1
	)
	// state[i] > 0 marks node i as on the walk numbered state[i].
	state := make([]int, len(g))
	var report CycleReport

	for start, walk := 0, 0; start < len(g); start++ {
		if state[start] != unvisited {
			continue
		}
		walk++
		var path []int
		pos := map[int]int{}
		for i := start; ; i = g[i] {
			if state[i] == done {
				break
			}
			if state[i] == walk {
				report.Cycles = append(report.Cycles, canonical(path[pos[i]:]))
				break
			}
			state[i] = walk
			pos[i] = len(path)
			path = append(path, i)
		}
		for _, i := range path {
			state[i] = done
		}
	}
	return report
}

// canonical rotates a cycle so it starts at its smallest member, preserving
// edge order.
func canonical(cycle []int) []int {
	min := 0
	for i, v := range cycle {
		if v < cycle[min] {
			min = i
		}
	}
	out := make([]int, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)
	return out
}
