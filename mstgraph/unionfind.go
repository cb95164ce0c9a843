package mstgraph

import "github.com/scagviz/scagnostics/point"

// unionFind is a disjoint-set structure over node coordinate keys, with
// path compression and canonical union-by-rank: the shallower tree's
// root is attached under the deeper one, ties broken by incrementing the
// surviving root's rank.
type unionFind struct {
	parent map[[2]float64][2]float64
	rank   map[[2]float64]int
}

func newUnionFind(nodes []point.Point) *unionFind {
	uf := &unionFind{
		parent: make(map[[2]float64][2]float64, len(nodes)),
		rank:   make(map[[2]float64]int, len(nodes)),
	}
	for _, n := range nodes {
		k := n.Key()
		uf.parent[k] = k
		uf.rank[k] = 0
	}
	return uf
}

func (uf *unionFind) find(k [2]float64) [2]float64 {
	root := k
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression: point every visited node directly at the root.
	for uf.parent[k] != root {
		next := uf.parent[k]
		uf.parent[k] = root
		k = next
	}
	return root
}

// union merges the sets containing a and b. Returns false if they were
// already in the same set (the caller should then skip the edge).
func (uf *unionFind) union(a, b [2]float64) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	return true
}
