// Package delaunay builds a 2-D Delaunay triangulation of a site set via
// the incremental Bowyer-Watson algorithm, with a deterministic
// line-graph fallback for collinear input.
package delaunay

import (
	"math"
	"sort"

	"github.com/scagviz/scagnostics/point"
)

// Triangulation is a flat list of vertex-index triples referencing Sites,
// or — for collinear input — a line graph over the sorted sites.
type Triangulation struct {
	Sites []point.Point

	// Triangles holds one [3]int per triangle (indices into Sites),
	// empty when Collinear is true.
	Triangles [][3]int

	// Collinear is true when every site lies on a single line.
	Collinear bool

	// LineEdges holds consecutive-pair indices into Sites (sorted
	// lexicographically), populated only when Collinear is true.
	LineEdges [][2]int
}

// Coordinates returns each triangle as a triple of 2-D points ("triangle
// coordinate triples").
func (t Triangulation) Coordinates() [][3]point.Point {
	out := make([][3]point.Point, len(t.Triangles))
	for i, tri := range t.Triangles {
		out[i] = [3]point.Point{t.Sites[tri[0]], t.Sites[tri[1]], t.Sites[tri[2]]}
	}
	return out
}

// Triangulate computes the Delaunay triangulation of sites.
func Triangulate(sites []point.Point) Triangulation {
	if isCollinear(sites) {
		return lineGraph(sites)
	}
	return bowyerWatson(sites)
}

// isCollinear reports whether every site lies on one 2-D line.
func isCollinear(sites []point.Point) bool {
	if len(sites) < 3 {
		return true
	}
	p0 := sites[0]
	var dir point.Point
	haveDir := false
	for _, p := range sites[1:] {
		d := p.Sub(p0)
		if d.X != 0 || d.Y != 0 {
			dir = d
			haveDir = true
			break
		}
	}
	if !haveDir {
		return true // all sites coincide
	}
	for _, p := range sites {
		d := p.Sub(p0)
		if math.Abs(dir.Cross(d)) > 1e-9 {
			return false
		}
	}
	return true
}

// lineGraph builds the deterministic fallback for collinear sites: sort
// lexicographically, connect consecutive sites.
func lineGraph(sites []point.Point) Triangulation {
	idx := make([]int, len(sites))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return point.LexLess(sites[idx[a]], sites[idx[b]])
	})
	edges := make([][2]int, 0, len(idx))
	for i := 0; i+1 < len(idx); i++ {
		edges = append(edges, [2]int{idx[i], idx[i+1]})
	}
	return Triangulation{Sites: sites, Collinear: true, LineEdges: edges}
}

// triVerts indexes into the working point set (sites plus three
// super-triangle vertices appended at the end).
type triVerts [3]int

// bowyerWatson runs the incremental Bowyer-Watson algorithm. Sites are
// inserted in their given order (hex-binned centers arrive sorted
// lexicographically; one-bin-per-point sites keep first-seen order), so
// the resulting triangulation is deterministic for a given input.
func bowyerWatson(sites []point.Point) Triangulation {
	n := len(sites)
	super := superTriangle(sites)
	pts := make([]point.Point, n+3)
	copy(pts, sites)
	pts[n], pts[n+1], pts[n+2] = super[0], super[1], super[2]

	tris := []triVerts{{n, n + 1, n + 2}}

	for i := 0; i < n; i++ {
		p := pts[i]

		var bad []triVerts
		var good []triVerts
		for _, tr := range tris {
			if inCircumcircle(pts[tr[0]], pts[tr[1]], pts[tr[2]], p) {
				bad = append(bad, tr)
			} else {
				good = append(good, tr)
			}
		}

		boundary := polygonBoundary(bad)
		for _, e := range boundary {
			good = append(good, triVerts{e[0], e[1], i})
		}
		tris = good
	}

	result := make([][3]int, 0, len(tris))
	for _, tr := range tris {
		if tr[0] >= n || tr[1] >= n || tr[2] >= n {
			continue // drop triangles touching the super-triangle
		}
		result = append(result, [3]int{tr[0], tr[1], tr[2]})
	}
	return Triangulation{Sites: sites, Triangles: result}
}

// polygonBoundary returns the edges of bad that are not shared by two
// triangles in bad — i.e. the boundary of their union, each edge
// reoriented so the new fan triangles stay counter-clockwise. Edges are
// returned in first-seen order (the order bad's triangles are walked),
// not map iteration order, so the result is deterministic for a given
// bad slice.
func polygonBoundary(bad []triVerts) [][2]int {
	type edge struct{ a, b int }
	count := make(map[edge]int)
	orient := make(map[edge][2]int)
	var order []edge
	addEdge := func(a, b int) {
		k := edge{a, b}
		if k.a > k.b {
			k.a, k.b = k.b, k.a
		}
		if count[k] == 0 {
			order = append(order, k)
		}
		count[k]++
		orient[k] = [2]int{a, b}
	}
	for _, tr := range bad {
		addEdge(tr[0], tr[1])
		addEdge(tr[1], tr[2])
		addEdge(tr[2], tr[0])
	}
	var boundary [][2]int
	for _, k := range order {
		if count[k] == 1 {
			o := orient[k]
			boundary = append(boundary, [2]int{o[0], o[1]})
		}
	}
	return boundary
}

// superTriangle returns a triangle large enough to contain every site,
// counter-clockwise oriented.
func superTriangle(sites []point.Point) [3]point.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range sites {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	d := math.Max(dx, dy)
	if d == 0 {
		d = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	return [3]point.Point{
		{X: midX - 20*d, Y: midY - 20*d},
		{X: midX + 20*d, Y: midY - 20*d},
		{X: midX, Y: midY + 20*d},
	}
}
