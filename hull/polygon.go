// Package hull computes convex hulls and alpha-shapes over Delaunay
// sites, plus the shoelace-formula polygon metrics the Convex and
// Skinny measures are built on top of.
package hull

import (
	"math"

	"github.com/scagviz/scagnostics/point"
)

// Area returns the absolute area of the closed polygon described by pts
// (shoelace formula).
func Area(pts []point.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Perimeter sums the lengths of pts' consecutive edges, closing the loop
// from the last point back to the first.
func Perimeter(pts []point.Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var total float64
	n := len(pts)
	for i := 0; i < n; i++ {
		total += pts[i].Dist(pts[(i+1)%n])
	}
	return total
}

// Centroid returns the arithmetic mean of pts (used as the reference
// point for counter-clockwise angular sorting, not the polygon's
// area-weighted centroid).
func Centroid(pts []point.Point) point.Point {
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return point.Point{X: sx / n, Y: sy / n}
}

// SortCCW orders pts counter-clockwise by angle around c, the ordering
// used for both convex-hull and alpha-shape boundaries.
func SortCCW(pts []point.Point, c point.Point) []point.Point {
	out := append([]point.Point{}, pts...)
	angle := func(p point.Point) float64 {
		return math.Atan2(p.Y-c.Y, p.X-c.X)
	}
	// Insertion sort: hull/component vertex counts are small (bounded
	// by the site count per connected component), and stability keeps
	// ties (coincident angles) in their input order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && angle(out[j-1]) > angle(out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
