package delaunay

import (
	"testing"

	"github.com/scagviz/scagnostics/point"
)

func TestTriangulateSquare(t *testing.T) {
	sites := []point.Point{
		point.New(0, 0), point.New(1, 0), point.New(1, 1), point.New(0, 1),
	}
	tri := Triangulate(sites)
	if tri.Collinear {
		t.Fatal("square should not be collinear")
	}
	if len(tri.Triangles) != 2 {
		t.Errorf("square triangulation = %d triangles; want 2", len(tri.Triangles))
	}
	for _, tr := range tri.Triangles {
		if tr[0] == tr[1] || tr[1] == tr[2] || tr[0] == tr[2] {
			t.Errorf("degenerate triangle %v", tr)
		}
	}
}

func TestTriangulateCollinear(t *testing.T) {
	sites := []point.Point{
		point.New(0, 0), point.New(1, 1), point.New(2, 2), point.New(3, 3),
	}
	tri := Triangulate(sites)
	if !tri.Collinear {
		t.Fatal("expected collinear detection")
	}
	if len(tri.LineEdges) != 3 {
		t.Errorf("line edges = %d; want 3", len(tri.LineEdges))
	}
	if len(tri.Triangles) != 0 {
		t.Errorf("collinear case should produce no triangles")
	}
}

func TestTriangulateGridHasNoOverlap(t *testing.T) {
	var sites []point.Point
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			sites = append(sites, point.New(float64(i), float64(j)))
		}
	}
	tri := Triangulate(sites)
	if tri.Collinear {
		t.Fatal("grid should not be collinear")
	}
	// Every vertex index must be in range and triangle non-degenerate.
	for _, tr := range tri.Triangles {
		for _, idx := range tr {
			if idx < 0 || idx >= len(sites) {
				t.Fatalf("triangle index %d out of range", idx)
			}
		}
	}
}
