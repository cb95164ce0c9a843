package delaunay

import "github.com/scagviz/scagnostics/point"

// area2 returns twice the signed area of triangle (a, b, c); positive when
// the vertices are in counter-clockwise order. Ported from the same
// orientation formula used by the reference Delaunay triangulator this
// package is grounded on (circumcenter/area helpers for incremental
// point-set triangulation).
func area2(a, b, c point.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// circumcenter returns the center of the circle through a, b, c.
func circumcenter(a, b, c point.Point) point.Point {
	ax, ay := a.X, a.Y
	bx, by := b.X-ax, b.Y-ay
	cx, cy := c.X-ax, c.Y-ay

	d := 2 * (bx*cy - by*cx)
	bLen2 := bx*bx + by*by
	cLen2 := cx*cx + cy*cy

	ux := (bLen2*cy - cLen2*by) / d
	uy := (cLen2*bx - bLen2*cx) / d

	return point.Point{X: ax + ux, Y: ay + uy}
}

// inCircumcircle reports whether p lies strictly inside the circle
// through a, b, c (a, b, c assumed counter-clockwise).
func inCircumcircle(a, b, c, p point.Point) bool {
	center := circumcenter(a, b, c)
	r := center.Dist(a)
	return center.Dist(p) < r-1e-12
}
