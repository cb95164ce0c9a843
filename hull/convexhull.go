package hull

import (
	"github.com/scagviz/scagnostics/delaunay"
	"github.com/scagviz/scagnostics/point"
)

// ConvexHull returns the ordered (counter-clockwise) boundary of tri's
// sites: for collinear input, the sites are returned as-is; otherwise
// the hull is extracted as the alpha-shape at α = 0 (every triangle
// included, so boundary edges are exactly the Delaunay triangulation's
// outer boundary).
func ConvexHull(tri delaunay.Triangulation) []point.Point {
	if tri.Collinear {
		return tri.Sites
	}
	shapes := alphaComplex(tri, 0, true)
	if len(shapes) == 0 {
		return nil
	}
	// A convex hull is always a single connected boundary.
	return shapes[0]
}

// boundaryVertices extracts the unique vertex indices touched by edges,
// in first-seen order.
func boundaryVertices(edges [][2]int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, e := range edges {
		for _, idx := range e {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
	}
	return out
}
