package hull

import (
	"math"

	"github.com/scagviz/scagnostics/delaunay"
	"github.com/scagviz/scagnostics/point"
)

// concaveHull1MaxSteps bounds the edge-length relaxation loop in the
// concaveHull1 fallback. Each step grows the threshold by 0.01; this
// many steps covers any plausible normalized-coordinate edge length with
// headroom to spare.
const concaveHull1MaxSteps = 10000

// AlphaShape builds the alpha-complex of tri's sites at parameter alpha:
// one ordered polygon per connected component of the boundary. alpha <=
// 0 means "no radius limit" — every Delaunay triangle is included,
// which is exactly the convex hull's definition (ConvexHull computes it
// this way).
//
// If the direct alpha-complex has no boundary edges (alpha too small),
// this falls back to concaveHull1: progressively relaxing an edge-length
// threshold against the full triangulation's own boundary edges until at
// least one passes.
func AlphaShape(tri delaunay.Triangulation, alpha float64) [][]point.Point {
	if tri.Collinear {
		return [][]point.Point{append([]point.Point{}, tri.Sites...)}
	}

	boundary := alphaBoundaryEdges(tri, alpha)
	if len(boundary) == 0 {
		boundary = concaveHull1(tri, alpha)
	}
	return polygonsFromEdges(tri, boundary)
}

// alphaComplex builds the boundary polygons behind ConvexHull:
// includeAll short-circuits the radius test (used for the alpha=0
// convex-hull case without relying on 1/0 arithmetic).
func alphaComplex(tri delaunay.Triangulation, alpha float64, includeAll bool) [][]point.Point {
	boundary := boundaryEdgesOf(tri, func(r float64) bool {
		return includeAll || alpha <= 0 || r <= 1/alpha
	})
	return polygonsFromEdges(tri, boundary)
}

func alphaBoundaryEdges(tri delaunay.Triangulation, alpha float64) [][2]int {
	return boundaryEdgesOf(tri, func(r float64) bool {
		return alpha <= 0 || r <= 1/alpha
	})
}

// boundaryEdgesOf collects the edges that belong to exactly one triangle
// satisfying include(circumradius), in first-seen order (the order
// tri.Triangles is walked), not map iteration order, so the result is
// deterministic for a given triangulation.
func boundaryEdgesOf(tri delaunay.Triangulation, include func(circumradius float64) bool) [][2]int {
	type edgeKey struct{ a, b int }
	count := make(map[edgeKey]int)
	orient := make(map[edgeKey][2]int)
	var order []edgeKey
	canon := func(a, b int) edgeKey {
		if a > b {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	addEdge := func(a, b int) {
		k := canon(a, b)
		if count[k] == 0 {
			order = append(order, k)
			orient[k] = [2]int{a, b}
		}
		count[k]++
	}

	for _, tr := range tri.Triangles {
		p0, p1, p2 := tri.Sites[tr[0]], tri.Sites[tr[1]], tri.Sites[tr[2]]
		if !include(circumradius(p0, p1, p2)) {
			continue
		}
		addEdge(tr[0], tr[1])
		addEdge(tr[1], tr[2])
		addEdge(tr[2], tr[0])
	}

	var edges [][2]int
	for _, k := range order {
		if count[k] == 1 {
			o := orient[k]
			edges = append(edges, [2]int{o[0], o[1]})
		}
	}
	return edges
}

// concaveHull1 relaxes an edge-length threshold against the full
// triangulation's boundary (every triangle included, regardless of
// alpha) until at least one edge is short enough to keep.
func concaveHull1(tri delaunay.Triangulation, alpha float64) [][2]int {
	allBoundary := boundaryEdgesOf(tri, func(float64) bool { return true })
	if len(allBoundary) == 0 {
		return nil
	}

	length := func(e [2]int) float64 {
		return tri.Sites[e[0]].Dist(tri.Sites[e[1]])
	}

	threshold := 1/alpha - 0.01
	for step := 0; step < concaveHull1MaxSteps; step++ {
		var passing [][2]int
		for _, e := range allBoundary {
			if length(e) <= threshold {
				passing = append(passing, e)
			}
		}
		if len(passing) > 0 {
			return passing
		}
		threshold += 0.01
	}
	return allBoundary
}

// polygonsFromEdges partitions edges into connected components by shared
// endpoint, then orders each component's vertices counter-clockwise
// around its centroid.
func polygonsFromEdges(tri delaunay.Triangulation, edges [][2]int) [][]point.Point {
	if len(edges) == 0 {
		return nil
	}
	comps := connectedComponents(edges)
	polygons := make([][]point.Point, 0, len(comps))
	for _, comp := range comps {
		verts := boundaryVertices(comp)
		pts := make([]point.Point, len(verts))
		for i, idx := range verts {
			pts[i] = tri.Sites[idx]
		}
		c := Centroid(pts)
		polygons = append(polygons, SortCCW(pts, c))
	}
	return polygons
}

// connectedComponents groups edges by shared endpoint using union-find.
func connectedComponents(edges [][2]int) [][][2]int {
	parent := make(map[int]int)
	var find func(int) int
	find = func(x int) int {
		if _, ok := parent[x]; !ok {
			parent[x] = x
		}
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, e := range edges {
		union(e[0], e[1])
	}

	groups := make(map[int][][2]int)
	var order []int
	seen := make(map[int]bool)
	for _, e := range edges {
		root := find(e[0])
		if !seen[root] {
			seen[root] = true
			order = append(order, root)
		}
		groups[root] = append(groups[root], e)
	}

	out := make([][][2]int, len(order))
	for i, root := range order {
		out[i] = groups[root]
	}
	return out
}

// circumradius returns the radius of the circle through a, b, c, or +Inf
// for a degenerate (zero-area) triangle.
func circumradius(a, b, c point.Point) float64 {
	area := Area([]point.Point{a, b, c})
	if area == 0 {
		return math.Inf(1)
	}
	d0 := a.Dist(b)
	d1 := b.Dist(c)
	d2 := c.Dist(a)
	return (d0 * d1 * d2) / (4 * area)
}
