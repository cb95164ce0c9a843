package mstgraph

import "sort"

// MST computes the minimum spanning tree of g using Kruskal's algorithm:
// canonical ascending-weight order, union-find with path compression and
// union-by-rank, ties broken by the graph's own edge insertion order.
//
// |MST.Links| == |MST.Nodes| - 1 when g is connected.
func MST(g *Graph) *Graph {
	order := make([]int, len(g.Links))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.Links[order[a]].Weight < g.Links[order[b]].Weight
	})

	uf := newUnionFind(g.Nodes)
	links := make([]Link, 0, maxInt(len(g.Nodes)-1, 0))
	for _, idx := range order {
		l := g.Links[idx]
		if uf.union(l.A.Key(), l.B.Key()) {
			links = append(links, l)
			if len(links) == len(g.Nodes)-1 {
				break
			}
		}
	}

	return &Graph{Nodes: g.Nodes, Links: links}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
