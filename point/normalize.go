package point

import "gonum.org/v1/gonum/floats"

// Normalize maps pts into the unit square [0,1]² by per-axis min/range
// scaling. A zero-range axis (all points share that coordinate) maps to
// 0.5 for every point on that axis. The input is never mutated; a new
// slice is returned.
func Normalize(pts []Point) []Point {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)
	rangeX, rangeY := maxX-minX, maxY-minY

	out := make([]Point, len(pts))
	for i, p := range pts {
		var nx, ny float64
		if rangeX == 0 {
			nx = 0.5
		} else {
			nx = (p.X - minX) / rangeX
		}
		if rangeY == 0 {
			ny = 0.5
		} else {
			ny = (p.Y - minY) / rangeY
		}
		out[i] = Point{X: nx, Y: ny}
	}
	return out
}
