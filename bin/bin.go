// Package bin implements the adaptive hexagonal binning stage of the
// scagnostics pipeline: it aggregates normalized points into a small
// number of representative sites, growing or shrinking the hex grid
// until the bin count falls within [minBins, maxBins].
package bin

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/scagviz/scagnostics/point"
)

// Type enumerates the supported binning strategies. Only Hexagon is
// implemented.
type Type string

// Hexagon is the only supported Type.
const Hexagon Type = "hexagon"

// ErrUnknownType is returned when Options.Type names a binning strategy
// this package does not implement.
var ErrUnknownType = fmt.Errorf("bin: %w", errUnknownType)

var errUnknownType = fmt.Errorf("unknown bin type")

// maxIterations bounds the adaptive grid-size search. 60 steps
// comfortably covers the halving/plus-5 walk between any reasonable
// startBinGridSize and the [minBins, maxBins] window.
const maxIterations = 60

// Bin is a hexagonal aggregate: a center (the site), a radius, and the
// multiset of original points assigned to it.
type Bin struct {
	Center point.Point
	Radius float64
	Points []point.Point
}

// Options configures the binning stage. Zero-value fields are replaced by
// their documented defaults in Run.
type Options struct {
	Type             Type
	StartBinGridSize int
	MinBins          int
	MaxBins          int
	Verbose          bool
}

func (o Options) withDefaults() Options {
	if o.Type == "" {
		o.Type = Hexagon
	}
	if o.StartBinGridSize <= 0 {
		o.StartBinGridSize = 40
	}
	if o.MinBins <= 0 {
		o.MinBins = 50
	}
	if o.MaxBins <= 0 {
		o.MaxBins = 500
	}
	return o
}

// Run bins the (already normalized) points and returns the resulting
// bins along with the grid size and radius used to produce them (0 for
// the one-bin-per-distinct-point path).
func Run(points []point.Point, opts Options) ([]Bin, int, float64, error) {
	opts = opts.withDefaults()
	if opts.Type != Hexagon {
		return nil, 0, 0, ErrUnknownType
	}

	distinct := point.Dedup(points)
	if len(distinct) < opts.MinBins {
		return onePerPoint(points, distinct), 0, 0, nil
	}

	gridSize := opts.StartBinGridSize
	usedGridSize := gridSize
	var bins []Bin
	var radius float64
	for i := 0; i < maxIterations; i++ {
		usedGridSize = gridSize
		shortDiagonal := 1.0 / float64(gridSize)
		radius = shortDiagonal / math.Sqrt2
		bins = hexBin(points, radius)
		n := len(bins)
		if n >= opts.MinBins && n <= opts.MaxBins {
			return bins, gridSize, radius, nil
		}
		if n > opts.MaxBins {
			gridSize = gridSize / 2
			if gridSize < 1 {
				gridSize = 1
			}
		} else {
			gridSize += 5
		}
	}

	if opts.Verbose {
		log.Printf("bin: grid-size search did not converge after %d iterations; returning %d bins", maxIterations, len(bins))
	}
	return bins, usedGridSize, radius, nil
}

// onePerPoint implements the minBins-not-reached branch: one zero-radius
// bin per distinct coordinate, grouping the original (possibly
// duplicated) points that share that coordinate.
func onePerPoint(original, distinct []point.Point) []Bin {
	groups := make(map[[2]float64][]point.Point, len(distinct))
	for _, p := range original {
		groups[p.Key()] = append(groups[p.Key()], p)
	}
	bins := make([]Bin, len(distinct))
	for i, d := range distinct {
		bins[i] = Bin{Center: d, Radius: 0, Points: groups[d.Key()]}
	}
	return bins
}

// hexGeometry derives the axial hex-grid spacing from the circumradius r
// of a pointy-top hexagon: dx is the horizontal spacing between column
// centers, dy the vertical spacing between row centers, with odd rows
// offset by dx/2.
func hexGeometry(r float64) (dx, dy float64) {
	return r * math.Sqrt(3), r * 1.5
}

func hexCenter(i, j int, dx, dy float64) point.Point {
	x := float64(i) * dx
	if mod2(j) != 0 {
		x += dx / 2
	}
	return point.Point{X: x, Y: float64(j) * dy}
}

func mod2(j int) int {
	m := j % 2
	if m < 0 {
		m += 2
	}
	return m
}

// hexBin assigns every point to the nearest hex-grid center of radius r
// and returns one Bin per occupied cell, sorted lexicographically by
// center for deterministic output.
func hexBin(points []point.Point, r float64) []Bin {
	dx, dy := hexGeometry(r)
	groups := make(map[[2]int][]point.Point)
	order := make(map[[2]int]point.Point)

	for _, p := range points {
		i, j := nearestHex(p, dx, dy)
		key := [2]int{i, j}
		groups[key] = append(groups[key], p)
		if _, ok := order[key]; !ok {
			order[key] = hexCenter(i, j, dx, dy)
		}
	}

	bins := make([]Bin, 0, len(groups))
	for key, pts := range groups {
		bins = append(bins, Bin{Center: order[key], Radius: r, Points: pts})
	}
	sort.Slice(bins, func(a, b int) bool {
		return point.LexLess(bins[a].Center, bins[b].Center)
	})
	return bins
}

// nearestHex finds the hex cell whose center is closest to p by probing
// the 3x3 neighborhood of the approximate row/column — sufficient for a
// regular hex lattice, where the true nearest center is never more than
// one row or column away from the naive rounded estimate.
func nearestHex(p point.Point, dx, dy float64) (int, int) {
	jApprox := int(math.Round(p.Y / dy))

	bestI, bestJ := 0, 0
	bestDist := math.Inf(1)
	for j := jApprox - 1; j <= jApprox+1; j++ {
		offset := 0.0
		if mod2(j) != 0 {
			offset = dx / 2
		}
		iApprox := int(math.Round((p.X - offset) / dx))
		for i := iApprox - 1; i <= iApprox+1; i++ {
			c := hexCenter(i, j, dx, dy)
			d := p.Dist(c)
			if d < bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}
