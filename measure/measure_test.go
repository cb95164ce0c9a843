package measure

import (
	"math"
	"testing"

	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/point"
)

// path builds a straight-line MST over n colinear unit-spaced points:
// 0-1-2-...-(n-1), all degree <= 2, the canonical "stringy" shape.
func path(n int) *mstgraph.Graph {
	nodes := make([]point.Point, n)
	for i := range nodes {
		nodes[i] = point.New(float64(i), 0)
	}
	links := make([]mstgraph.Link, 0, n-1)
	for i := 0; i < n-1; i++ {
		links = append(links, mstgraph.Link{A: nodes[i], B: nodes[i+1], Weight: 1})
	}
	return &mstgraph.Graph{Nodes: nodes, Links: links}
}

// star builds a 4-point MST with one center and three leaves, the
// canonical "clumpy/branching" shape.
func star() *mstgraph.Graph {
	center := point.New(0, 0)
	leaves := []point.Point{point.New(1, 0), point.New(0, 1), point.New(-1, 0)}
	nodes := append([]point.Point{center}, leaves...)
	links := make([]mstgraph.Link, len(leaves))
	for i, l := range leaves {
		links[i] = mstgraph.Link{A: center, B: l, Weight: center.Dist(l)}
	}
	return &mstgraph.Graph{Nodes: nodes, Links: links}
}

func TestSkewedStraightPathIsZero(t *testing.T) {
	g := path(5)
	if got := Skewed(g); got != 0 {
		t.Errorf("Skewed(uniform path) = %v; want 0", got)
	}
}

func TestSkewedEmptyIsZero(t *testing.T) {
	g := &mstgraph.Graph{}
	if got := Skewed(g); got != 0 {
		t.Errorf("Skewed(empty) = %v; want 0", got)
	}
}

func TestSparseWithinUnitRange(t *testing.T) {
	g := path(10)
	got := Sparse(g)
	if got < 0 || got > 1 {
		t.Errorf("Sparse = %v; want in [0,1]", got)
	}
}

func TestClumpyStarIsHigh(t *testing.T) {
	g := star()
	got := Clumpy(g)
	if got < 0.5 {
		t.Errorf("Clumpy(star) = %v; want a high clumpiness score", got)
	}
}

func TestClumpyEmptyIsZero(t *testing.T) {
	g := &mstgraph.Graph{}
	if got := Clumpy(g); got != 0 {
		t.Errorf("Clumpy(empty) = %v; want 0", got)
	}
}

func TestStriatedStraightPathIsOne(t *testing.T) {
	g := path(5)
	got := Striated(g)
	if got != 1 {
		t.Errorf("Striated(straight path) = %v; want 1 (every V2 corner is a straight angle)", got)
	}
}

func TestStriatedStarHasNoV2Corners(t *testing.T) {
	g := star()
	got := Striated(g)
	if got != 0 {
		t.Errorf("Striated(star) = %v; want 0 (no V2 corners)", got)
	}
}

func TestStringyPathIsHigh(t *testing.T) {
	g := path(6)
	got := Stringy(g)
	if got < 0.5 {
		t.Errorf("Stringy(path) = %v; want a high stringy score", got)
	}
}

func TestStringyStarIsZero(t *testing.T) {
	g := star()
	got := Stringy(g)
	if got != 0 {
		t.Errorf("Stringy(star) = %v; want 0 (v1=3, v3=1, denom=4-3-1=0)", got)
	}
}

func TestConvexDegenerateIsOne(t *testing.T) {
	if got := Convex(0, 0); got != 1 {
		t.Errorf("Convex(0,0) = %v; want 1", got)
	}
}

func TestConvexEqualAreasIsOne(t *testing.T) {
	if got := Convex(4, 4); got != 1 {
		t.Errorf("Convex(4,4) = %v; want 1", got)
	}
}

func TestConvexPartialFill(t *testing.T) {
	got := Convex(4, 2)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Convex(4,2) = %v; want 0.5", got)
	}
}

func TestSkinnyDegeneratePerimeterIsOne(t *testing.T) {
	if got := Skinny(1, 0); got != 1 {
		t.Errorf("Skinny(1,0) = %v; want 1", got)
	}
}

func TestSkinnyUnitSquareIsPositive(t *testing.T) {
	// perimeter=4, area=1: a circle of the same area has a smaller
	// perimeter, so the score should be positive but well under 1.
	got := Skinny(1, 4)
	if got <= 0 || got >= 1 {
		t.Errorf("Skinny(1,4) = %v; want in (0,1)", got)
	}
}

func TestMonotonicPerfectLineIsOne(t *testing.T) {
	nodes := []point.Point{point.New(0, 0), point.New(1, 1), point.New(2, 2)}
	got := Monotonic(nodes, nil)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Monotonic(perfect line) = %v; want 1", got)
	}
}

func TestMonotonicUsesOriginalCoordinates(t *testing.T) {
	nodes := []point.Point{point.New(0, 0), point.New(0.1, 0.9), point.New(0.2, 2.1)}
	original := map[[2]float64]point.Point{
		nodes[0].Key(): point.New(0, 0),
		nodes[1].Key(): point.New(1, 1),
		nodes[2].Key(): point.New(2, 2),
	}
	got := Monotonic(nodes, original)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Monotonic(remapped line) = %v; want 1", got)
	}
}

func TestMonotonicTooFewPointsIsZero(t *testing.T) {
	if got := Monotonic([]point.Point{point.New(0, 0)}, nil); got != 0 {
		t.Errorf("Monotonic(single point) = %v; want 0", got)
	}
}

func TestV1sAndV2CornersOnPath(t *testing.T) {
	g := path(5)
	if got := V1s(g); len(got) != 2 {
		t.Errorf("V1s(path) has %d entries; want 2 (the two endpoints)", len(got))
	}
	if got := V2Corners(g); len(got) != 3 {
		t.Errorf("V2Corners(path) has %d entries; want 3 (the interior points)", len(got))
	}
}
