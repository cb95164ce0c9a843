// Package outlier prunes long edges from a minimum spanning tree using an
// IQR-derived upper bound, producing the "no-outlying tree" that the
// nine measures in package measure are computed over.
package outlier

import (
	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/point"
	"github.com/scagviz/scagnostics/stat"
)

// Result holds the outcome of pruning an MST's outlying edges.
type Result struct {
	// UpperBound is ω = Q3 + 1.5·IQR (or the caller-supplied override).
	UpperBound float64

	// Score is the fraction of total MST weight carried by outlying
	// edges, in [0,1].
	Score float64

	OutlyingLinks  []mstgraph.Link
	OutlyingPoints []point.Point

	// Pruned is the MST minus outlying links and any node left with no
	// remaining incident link — the "no-outlying tree".
	Pruned *mstgraph.Graph

	// WeightStats summarizes the full MST's edge-weight distribution
	// (mean, standard deviation), independent of the IQR bound above —
	// a quick diagnostic for how dispersed the tree's edges are.
	WeightStats stat.Describe
}

// Run computes the outlying score and pruned MST for mst. If upperBound
// is non-nil, it is used directly instead of the IQR-derived bound.
func Run(mst *mstgraph.Graph, upperBound *float64) Result {
	weights := mst.Weights()

	var omega float64
	if upperBound != nil {
		omega = *upperBound
	} else {
		omega = iqrUpperBound(weights)
	}

	var outlyingLinks []mstgraph.Link
	keptLinks := make([]mstgraph.Link, 0, len(mst.Links))
	for _, l := range mst.Links {
		if l.Weight > omega {
			outlyingLinks = append(outlyingLinks, l)
		} else {
			keptLinks = append(keptLinks, l)
		}
	}

	remainingDeg := make(map[[2]float64]int, len(mst.Nodes))
	for _, n := range mst.Nodes {
		remainingDeg[n.Key()] = 0
	}
	for _, l := range keptLinks {
		remainingDeg[l.A.Key()]++
		remainingDeg[l.B.Key()]++
	}

	removedByOutlier := make(map[[2]float64]bool)
	outlyingPoints := make([]point.Point, 0, len(outlyingLinks))
	for _, l := range outlyingLinks {
		for _, p := range [2]point.Point{l.A, l.B} {
			k := p.Key()
			if remainingDeg[k] == 0 && !removedByOutlier[k] {
				removedByOutlier[k] = true
				outlyingPoints = append(outlyingPoints, p)
			}
		}
	}

	keptNodes := make([]point.Point, 0, len(mst.Nodes))
	for _, n := range mst.Nodes {
		if remainingDeg[n.Key()] > 0 {
			keptNodes = append(keptNodes, n)
		}
	}

	score := scoreOf(outlyingLinks, mst.Links)

	return Result{
		UpperBound:     omega,
		Score:          score,
		OutlyingLinks:  outlyingLinks,
		OutlyingPoints: outlyingPoints,
		Pruned:         &mstgraph.Graph{Nodes: keptNodes, Links: keptLinks},
		WeightStats:    stat.DescribeSample(weights),
	}
}

// iqrUpperBound computes ω = Q3 + 1.5·IQR over weights via the
// multi-target quickselect quantile primitive: one mutating pass selects
// both Q1 and Q3 without a full sort.
func iqrUpperBound(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	cp := append([]float64{}, weights...)
	qs := stat.Quantiles(cp, []float64{0.25, 0.75})
	q1, q3 := qs[0], qs[1]
	iqr := q3 - q1
	return q3 + 1.5*iqr
}

func scoreOf(outlying, all []mstgraph.Link) float64 {
	var total float64
	for _, l := range all {
		total += l.Weight
	}
	if total == 0 {
		return 0
	}
	var sum float64
	for _, l := range outlying {
		sum += l.Weight
	}
	return sum / total
}
