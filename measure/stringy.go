package measure

import "github.com/scagviz/scagnostics/mstgraph"

// Stringy scores how thread-like the pruned MST is: (v1 − v3) /
// (|nodes| − v1 − v3), where v1 counts degree-1 vertices and v3 counts
// degree-≥3 vertices, clamped to [0,1] and defined as 0 when the
// denominator is non-positive. The scagnostics literature also
// describes an alternate v2/(|nodes|−v1) formulation; that alternate is
// kept unexported for documentation only.
func Stringy(t *mstgraph.Graph) float64 {
	deg := mstgraph.Degree(t)
	var v1, v3 int
	for _, n := range t.Nodes {
		switch d := deg[n.Key()]; {
		case d == 1:
			v1++
		case d >= 3:
			v3++
		}
	}
	n := len(t.Nodes)
	denom := n - v1 - v3
	if denom <= 0 {
		return 0
	}
	score := float64(v1-v3) / float64(denom)
	return clamp01(score)
}

// stringyAlternate is the v2/(|nodes|−v1) formulation the scagnostics
// literature describes as an alternative.
func stringyAlternate(t *mstgraph.Graph) float64 {
	deg := mstgraph.Degree(t)
	var v1, v2 int
	for _, n := range t.Nodes {
		switch deg[n.Key()] {
		case 1:
			v1++
		case 2:
			v2++
		}
	}
	n := len(t.Nodes)
	denom := n - v1
	if denom <= 0 {
		return 0
	}
	return clamp01(float64(v2) / float64(denom))
}
