// Package measure computes eight of the nine scagnostic measures from a
// pruned MST and its derived hull/alpha-shape artifacts; the outlying
// measure is computed by package outlier. Each measure is a free
// function from geometric inputs to a scalar in [0,1], deliberately
// avoiding a class hierarchy.
package measure

import (
	"math"

	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/point"
)

// Corner is a V2 vertex together with its two MST neighbors (a "V2
// corner").
type Corner struct {
	Vertex, N1, N2 point.Point
}

// V1s returns the degree-1 vertices of t.
func V1s(t *mstgraph.Graph) []point.Point {
	deg := mstgraph.Degree(t)
	var out []point.Point
	for _, n := range t.Nodes {
		if deg[n.Key()] == 1 {
			out = append(out, n)
		}
	}
	return out
}

// V2Corners returns one Corner per degree-2 vertex of t.
func V2Corners(t *mstgraph.Graph) []Corner {
	deg := mstgraph.Degree(t)
	nbrs := mstgraph.Neighbors(t)
	var out []Corner
	for _, n := range t.Nodes {
		if deg[n.Key()] != 2 {
			continue
		}
		ns := nbrs[n.Key()]
		if len(ns) != 2 {
			continue
		}
		out = append(out, Corner{Vertex: n, N1: ns[0], N2: ns[1]})
	}
	return out
}

// obtuseCosineBound is cos(135°) = −√2/2; an interior angle exceeds 135°
// exactly when its cosine falls below this bound (used by Striated).
var obtuseCosineBound = -math.Sqrt2 / 2

// ObtuseV2Corners filters corners to those whose interior angle at the
// vertex exceeds 135°.
func ObtuseV2Corners(corners []Corner) []Corner {
	var out []Corner
	for _, c := range corners {
		if cosAngle(c) < obtuseCosineBound {
			out = append(out, c)
		}
	}
	return out
}

func cosAngle(c Corner) float64 {
	v1 := c.N1.Sub(c.Vertex)
	v2 := c.N2.Sub(c.Vertex)
	len1 := math.Hypot(v1.X, v1.Y)
	len2 := math.Hypot(v2.X, v2.Y)
	if len1 == 0 || len2 == 0 {
		return 1 // degenerate corner, treat as a zero (non-obtuse) angle
	}
	dot := v1.X*v2.X + v1.Y*v2.Y
	cos := dot / (len1 * len2)
	if cos < -1 {
		cos = -1
	}
	if cos > 1 {
		cos = 1
	}
	return cos
}
