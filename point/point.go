// Package point defines the 2-D point primitive shared by every stage of
// the scagnostics pipeline, plus the coordinate-equality and rounding
// rules the rest of the module relies on for node identity.
package point

import "math"

// Epsilon is the rounding quantum used for coordinate equality throughout
// the pipeline (site dedup, graph node identity, edge-weight comparison).
// Two coordinates are considered equal iff they round to the same value
// at this resolution.
const Epsilon = 1e-10

// Point is an ordered pair of finite reals.
type Point struct {
	X, Y float64
}

// New returns a Point. It never panics and does not check that x and y
// are finite; neither does the Scagnostics entry point.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Round snaps a coordinate to the module's comparison resolution.
func Round(v float64) float64 {
	return math.Round(v/Epsilon) * Epsilon
}

// Key returns a hashable identity for p, built from its rounded
// coordinates. Two points are "equal" for the purposes of node identity,
// bin dedup, and site uniqueness iff their Key values match.
func (p Point) Key() [2]float64 {
	return [2]float64{Round(p.X), Round(p.Y)}
}

// Equal reports whether p and q share the same rounded coordinates.
func (p Point) Equal(q Point) bool {
	return p.Key() == q.Key()
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2-D cross product p × q (a scalar: the z-component).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dedup returns pts with duplicate coordinates (by Equal) removed,
// preserving first-seen order.
func Dedup(pts []Point) []Point {
	seen := make(map[[2]float64]bool, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// LexLess orders points by X then Y, the tie-break rule used for
// deterministic sorting throughout the pipeline.
func LexLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
