package measure

import (
	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/point"
)

// Clumpy measures how tightly the pruned MST separates into clusters:
// for every edge, removing it splits the tree into two subtrees; let S
// be the smaller one and let e* be S's longest internal edge. That
// edge's contribution is 1 − weight(e*)/weight(e); Clumpy is the max
// contribution over all edges.
func Clumpy(t *mstgraph.Graph) float64 {
	if len(t.Links) == 0 {
		return 0
	}
	adj := buildAdjacency(t)

	var best float64
	for _, e := range t.Links {
		sideA := reachableExcluding(adj, e.A, e.A.Key(), e.B.Key())
		small := sideA
		if len(sideA) > len(t.Nodes)-len(sideA) {
			small = complement(t.Nodes, sideA)
		}
		maxInS := maxWeightWithin(t.Links, small, e)
		var score float64
		if maxInS == 0 {
			score = 1
		} else {
			score = 1 - maxInS/e.Weight
		}
		if score > best {
			best = score
		}
	}
	return clamp01(best)
}

type adjEntry struct {
	Neighbor point.Point
	Weight   float64
}

func buildAdjacency(t *mstgraph.Graph) map[[2]float64][]adjEntry {
	adj := make(map[[2]float64][]adjEntry, len(t.Nodes))
	for _, l := range t.Links {
		adj[l.A.Key()] = append(adj[l.A.Key()], adjEntry{Neighbor: l.B, Weight: l.Weight})
		adj[l.B.Key()] = append(adj[l.B.Key()], adjEntry{Neighbor: l.A, Weight: l.Weight})
	}
	return adj
}

// reachableExcluding breadth-first searches from start without crossing
// the single edge (excludeA, excludeB), returning every reached node
// keyed by coordinate.
func reachableExcluding(adj map[[2]float64][]adjEntry, start point.Point, excludeA, excludeB [2]float64) map[[2]float64]point.Point {
	visited := map[[2]float64]point.Point{start.Key(): start}
	queue := []point.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		ck := cur.Key()
		for _, e := range adj[ck] {
			nk := e.Neighbor.Key()
			if (ck == excludeA && nk == excludeB) || (ck == excludeB && nk == excludeA) {
				continue
			}
			if _, ok := visited[nk]; ok {
				continue
			}
			visited[nk] = e.Neighbor
			queue = append(queue, e.Neighbor)
		}
	}
	return visited
}

func complement(all []point.Point, side map[[2]float64]point.Point) map[[2]float64]point.Point {
	out := make(map[[2]float64]point.Point, len(all)-len(side))
	for _, n := range all {
		if _, ok := side[n.Key()]; !ok {
			out[n.Key()] = n
		}
	}
	return out
}

// maxWeightWithin returns the largest link weight whose endpoints are
// both in side, excluding the edge whose removal produced side.
func maxWeightWithin(links []mstgraph.Link, side map[[2]float64]point.Point, removed mstgraph.Link) float64 {
	var maxW float64
	for _, l := range links {
		if l.A.Equal(removed.A) && l.B.Equal(removed.B) {
			continue
		}
		if l.B.Equal(removed.A) && l.A.Equal(removed.B) {
			continue
		}
		_, inA := side[l.A.Key()]
		_, inB := side[l.B.Key()]
		if inA && inB && l.Weight > maxW {
			maxW = l.Weight
		}
	}
	return maxW
}
