package bin

import (
	"testing"

	"github.com/scagviz/scagnostics/point"
)

func gridPoints(n int) []point.Point {
	pts := make([]point.Point, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, point.New(float64(i)/float64(n-1), float64(j)/float64(n-1)))
		}
	}
	return pts
}

func TestRunBelowMinBinsIsOnePerPoint(t *testing.T) {
	pts := []point.Point{point.New(0, 0), point.New(1, 1), point.New(0.5, 0.5)}
	bins, gridSize, radius, err := Run(pts, Options{MinBins: 50})
	if err != nil {
		t.Fatal(err)
	}
	if len(bins) != 3 {
		t.Errorf("len(bins) = %d; want 3", len(bins))
	}
	if gridSize != 0 || radius != 0 {
		t.Errorf("expected gridSize=0 radius=0 for one-per-point path, got %d %v", gridSize, radius)
	}
	for _, b := range bins {
		if b.Radius != 0 {
			t.Errorf("expected zero radius bin, got %v", b.Radius)
		}
	}
}

func TestRunConvergesWithinBounds(t *testing.T) {
	pts := point.Normalize(gridPoints(30))
	bins, _, _, err := Run(pts, Options{MinBins: 50, MaxBins: 500})
	if err != nil {
		t.Fatal(err)
	}
	if len(bins) < 50 || len(bins) > 500 {
		t.Errorf("bin count %d outside [50,500]", len(bins))
	}
}

func TestRunUnknownType(t *testing.T) {
	_, _, _, err := Run(nil, Options{Type: "square"})
	if err == nil {
		t.Fatal("expected error for unknown bin type")
	}
}

func TestHexBinDeterministicOrder(t *testing.T) {
	pts := point.Normalize(gridPoints(30))
	b1, _, _, _ := Run(pts, Options{MinBins: 50, MaxBins: 500})
	b2, _, _, _ := Run(pts, Options{MinBins: 50, MaxBins: 500})
	if len(b1) != len(b2) {
		t.Fatalf("non-deterministic bin counts: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if !b1[i].Center.Equal(b2[i].Center) {
			t.Errorf("non-deterministic bin order at %d: %v vs %v", i, b1[i].Center, b2[i].Center)
		}
	}
}
