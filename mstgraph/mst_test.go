package mstgraph

import (
	"testing"

	"github.com/scagviz/scagnostics/delaunay"
	"github.com/scagviz/scagnostics/point"
)

func square() *Graph {
	sites := []point.Point{
		point.New(0, 0), point.New(1, 0), point.New(1, 1), point.New(0, 1),
	}
	return Build(delaunay.Triangulate(sites))
}

func TestBuildNoDuplicateEdges(t *testing.T) {
	g := square()
	seen := make(map[[2][2]float64]bool)
	for _, l := range g.Links {
		a, b := l.A.Key(), l.B.Key()
		if a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) {
			a, b = b, a
		}
		k := [2][2]float64{a, b}
		if seen[k] {
			t.Fatalf("duplicate edge %v", k)
		}
		seen[k] = true
	}
}

func TestBuildNoSelfLoops(t *testing.T) {
	g := square()
	for _, l := range g.Links {
		if l.A.Equal(l.B) {
			t.Fatalf("self-loop at %v", l.A)
		}
	}
}

func TestMSTEdgeCount(t *testing.T) {
	g := square()
	mst := MST(g)
	if len(mst.Links) != len(mst.Nodes)-1 {
		t.Errorf("MST has %d links, %d nodes; want links == nodes-1", len(mst.Links), len(mst.Nodes))
	}
}

func TestMSTWeightsPositive(t *testing.T) {
	g := square()
	mst := MST(g)
	for _, l := range mst.Links {
		if l.Weight <= 0 {
			t.Errorf("MST edge weight %v <= 0", l.Weight)
		}
		if l.A.Equal(l.B) {
			t.Errorf("MST has self-loop at %v", l.A)
		}
	}
}

func TestMSTIsMinimal(t *testing.T) {
	// A square's MST should be 3 of the 4 unit-length sides (never a
	// diagonal), since Delaunay triangulation of a square only connects
	// adjacent corners plus one diagonal, and the diagonal is always
	// longer than the sides.
	g := square()
	mst := MST(g)
	var total float64
	for _, l := range mst.Links {
		total += l.Weight
	}
	if total > 3.01 || total < 2.99 {
		t.Errorf("square MST total weight = %v; want ~3 (three unit sides)", total)
	}
}
