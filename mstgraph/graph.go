// Package mstgraph builds the weighted graph over Delaunay sites and
// computes its minimum spanning tree, the "Graph + MST" pipeline stage.
// Nodes are identified by rounded coordinate key rather than by string
// concatenation, with float64 Euclidean edge weights.
package mstgraph

import (
	"math"
	"sort"

	"github.com/scagviz/scagnostics/delaunay"
	"github.com/scagviz/scagnostics/point"
)

// Link is an undirected, weighted edge between two node coordinates.
// Weight is the Euclidean distance, rounded to point.Epsilon for stable
// comparisons.
type Link struct {
	A, B   point.Point
	Weight float64
}

// Graph is an undirected weighted graph keyed by node coordinate. There
// are no duplicate links (A,B) == (B,A) and no self-loops.
type Graph struct {
	Nodes []point.Point
	Links []Link
}

// roundWeight snaps a distance to the module's comparison resolution.
func roundWeight(d float64) float64 {
	return math.Round(d/point.Epsilon) * point.Epsilon
}

// edgeKey canonicalizes an unordered pair of node keys for dedup.
func edgeKey(a, b [2]float64) ([2]float64, [2]float64) {
	if a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) {
		return b, a
	}
	return a, b
}

// builder accumulates nodes and links while deduplicating by coordinate
// identity, preserving first-seen order (the graph build's own insertion
// order — the tie-break Kruskal later respects).
type builder struct {
	nodeIdx map[[2]float64]int
	nodes   []point.Point
	linkIdx map[[2][2]float64]int
	links   []Link
}

func newBuilder() *builder {
	return &builder{
		nodeIdx: make(map[[2]float64]int),
		linkIdx: make(map[[2][2]float64]int),
	}
}

func (b *builder) addNode(p point.Point) {
	k := p.Key()
	if _, ok := b.nodeIdx[k]; ok {
		return
	}
	b.nodeIdx[k] = len(b.nodes)
	b.nodes = append(b.nodes, p)
}

func (b *builder) addEdge(a, c point.Point) {
	if a.Equal(c) {
		return // no self-loops
	}
	ak, ck := edgeKey(a.Key(), c.Key())
	k := [2][2]float64{ak, ck}
	if _, ok := b.linkIdx[k]; ok {
		return
	}
	w := roundWeight(a.Dist(c))
	b.linkIdx[k] = len(b.links)
	b.links = append(b.links, Link{A: a, B: c, Weight: w})
}

func (b *builder) graph() *Graph {
	return &Graph{Nodes: b.nodes, Links: b.links}
}

// Build constructs the Graph for a Delaunay triangulation: for the normal
// case, every triangle contributes its three vertices and three edges;
// for the collinear fallback, the line graph's consecutive-pair edges
// are used directly.
func Build(tri delaunay.Triangulation) *Graph {
	b := newBuilder()

	if tri.Collinear {
		for _, e := range tri.LineEdges {
			a, c := tri.Sites[e[0]], tri.Sites[e[1]]
			b.addNode(a)
			b.addNode(c)
			b.addEdge(a, c)
		}
		return b.graph()
	}

	for _, tr := range tri.Triangles {
		v0, v1, v2 := tri.Sites[tr[0]], tri.Sites[tr[1]], tri.Sites[tr[2]]
		b.addNode(v0)
		b.addNode(v1)
		b.addNode(v2)
		b.addEdge(v0, v1)
		b.addEdge(v1, v2)
		b.addEdge(v2, v0)
	}
	return b.graph()
}

// Degree returns each node's degree (count of incident links) as a map
// keyed by coordinate, used by several measures over the pruned MST.
func Degree(g *Graph) map[[2]float64]int {
	deg := make(map[[2]float64]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.Key()] = 0
	}
	for _, l := range g.Links {
		deg[l.A.Key()]++
		deg[l.B.Key()]++
	}
	return deg
}

// Neighbors returns, for each node, the coordinates of its directly
// linked neighbors.
func Neighbors(g *Graph) map[[2]float64][]point.Point {
	out := make(map[[2]float64][]point.Point, len(g.Nodes))
	for _, l := range g.Links {
		out[l.A.Key()] = append(out[l.A.Key()], l.B)
		out[l.B.Key()] = append(out[l.B.Key()], l.A)
	}
	return out
}

// Weights returns the link weights in insertion order.
func (g *Graph) Weights() []float64 {
	w := make([]float64, len(g.Links))
	for i, l := range g.Links {
		w[i] = l.Weight
	}
	return w
}

// SortedWeights returns a freshly sorted (ascending) copy of the link
// weights, leaving g untouched.
func (g *Graph) SortedWeights() []float64 {
	w := g.Weights()
	sort.Float64s(w)
	return w
}

// TotalWeight sums every link's weight.
func (g *Graph) TotalWeight() float64 {
	var total float64
	for _, l := range g.Links {
		total += l.Weight
	}
	return total
}
