package scagnostics

import (
	"fmt"

	"github.com/scagviz/scagnostics/bin"
	"github.com/scagviz/scagnostics/delaunay"
	"github.com/scagviz/scagnostics/hull"
	"github.com/scagviz/scagnostics/measure"
	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/outlier"
	"github.com/scagviz/scagnostics/point"
	"github.com/scagviz/scagnostics/stat"
)

// Result holds every artifact and score produced by Scagnostics.
type Result struct {
	NormalizedPoints []point.Point
	Bins             []bin.Bin
	BinSize          int
	BinRadius        float64

	Delaunay            delaunay.Triangulation
	Triangles           [][3]int
	TriangleCoordinates [][3]point.Point

	Graph *mstgraph.Graph
	MST   *mstgraph.Graph

	OutlyingScore      float64
	OutlyingUpperBound float64
	OutlyingLinks      []mstgraph.Link
	OutlyingPoints     []point.Point
	NoOutlyingTree     *mstgraph.Graph
	WeightStats        stat.Describe

	ConvexHull []point.Point
	AlphaHull  [][]point.Point

	SkewedScore    float64
	SparseScore    float64
	ClumpyScore    float64
	StriatedScore  float64
	ConvexScore    float64
	SkinnyScore    float64
	StringyScore   float64
	MonotonicScore float64

	V1s             []point.Point
	V2Corners       []measure.Corner
	ObtuseV2Corners []measure.Corner
}

// String renders a one-line summary of Result's nine scores.
func (r *Result) String() string {
	return fmt.Sprintf(
		"scagnostics{outlying=%.3f skewed=%.3f sparse=%.3f clumpy=%.3f striated=%.3f convex=%.3f skinny=%.3f stringy=%.3f monotonic=%.3f}",
		r.OutlyingScore, r.SkewedScore, r.SparseScore, r.ClumpyScore, r.StriatedScore,
		r.ConvexScore, r.SkinnyScore, r.StringyScore, r.MonotonicScore,
	)
}

// Scagnostics runs the full pipeline over points: normalize, bin,
// triangulate, build the MST, prune outliers, derive hulls, and compute
// the nine scagnostic measures.
func Scagnostics(points []point.Point, opts Options) (*Result, error) {
	if len(points) < 3 {
		return nil, ErrInsufficientPoints
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	normalized := points
	if !opts.IsNormalized {
		normalized = point.Normalize(points)
	}

	origByNorm := make(map[[2]float64][]point.Point, len(points))
	for i, np := range normalized {
		origByNorm[np.Key()] = append(origByNorm[np.Key()], points[i])
	}

	var bins []bin.Bin
	var binSize int
	var binRadius float64
	if opts.IsBinned {
		bins = onePerSite(normalized)
	} else {
		var err error
		bins, binSize, binRadius, err = bin.Run(normalized, bin.Options{
			Type:             opts.BinType,
			StartBinGridSize: opts.StartBinGridSize,
			MinBins:          opts.MinBins,
			MaxBins:          opts.MaxBins,
			Verbose:          opts.Verbose,
		})
		if err != nil {
			return nil, err
		}
	}

	sites := make([]point.Point, len(bins))
	originalOf := make(map[[2]float64]point.Point, len(bins))
	for i, b := range bins {
		sites[i] = b.Center
		originalOf[b.Center.Key()] = centroidOriginal(b.Points, origByNorm)
	}

	tri := delaunay.Triangulate(sites)
	graph := mstgraph.Build(tri)
	mst := mstgraph.MST(graph)
	outRes := outlier.Run(mst, opts.OutlyingUpperBound)

	convexHull := hull.ConvexHull(tri)

	alpha := 1.0
	if outRes.UpperBound > 0 {
		alpha = 1 / outRes.UpperBound
	}
	alphaHull := hull.AlphaShape(tri, alpha)

	convexArea := hull.Area(convexHull)
	var alphaArea, alphaPerimeter float64
	for _, poly := range alphaHull {
		alphaArea += hull.Area(poly)
		alphaPerimeter += hull.Perimeter(poly)
	}

	pruned := outRes.Pruned
	v2Corners := measure.V2Corners(pruned)

	return &Result{
		NormalizedPoints: normalized,
		Bins:             bins,
		BinSize:          binSize,
		BinRadius:        binRadius,

		Delaunay:            tri,
		Triangles:           tri.Triangles,
		TriangleCoordinates: tri.Coordinates(),

		Graph: graph,
		MST:   mst,

		OutlyingScore:      outRes.Score,
		OutlyingUpperBound: outRes.UpperBound,
		OutlyingLinks:      outRes.OutlyingLinks,
		OutlyingPoints:     outRes.OutlyingPoints,
		NoOutlyingTree:     pruned,
		WeightStats:        outRes.WeightStats,

		ConvexHull: convexHull,
		AlphaHull:  alphaHull,

		SkewedScore:    measure.Skewed(pruned),
		SparseScore:    measure.Sparse(pruned),
		ClumpyScore:    measure.Clumpy(pruned),
		StriatedScore:  measure.Striated(pruned),
		ConvexScore:    measure.Convex(convexArea, alphaArea),
		SkinnyScore:    measure.Skinny(alphaArea, alphaPerimeter),
		StringyScore:   measure.Stringy(pruned),
		MonotonicScore: measure.Monotonic(pruned.Nodes, originalOf),

		V1s:             measure.V1s(pruned),
		V2Corners:       v2Corners,
		ObtuseV2Corners: measure.ObtuseV2Corners(v2Corners),
	}, nil
}

// onePerSite implements Options.IsBinned: each (deduplicated) normalized
// point becomes its own zero-radius bin, skipping the adaptive binner
// entirely.
func onePerSite(normalized []point.Point) []bin.Bin {
	distinct := point.Dedup(normalized)
	bins := make([]bin.Bin, len(distinct))
	for i, p := range distinct {
		bins[i] = bin.Bin{Center: p, Radius: 0, Points: []point.Point{p}}
	}
	return bins
}

// centroidOriginal averages the original (pre-normalization) points
// corresponding to a bin's grouped normalized points, via origByNorm's
// index correspondence — the coordinates the Monotonic measure scores.
func centroidOriginal(binned []point.Point, origByNorm map[[2]float64][]point.Point) point.Point {
	var sx, sy float64
	var n int
	for _, bp := range binned {
		for _, op := range origByNorm[bp.Key()] {
			sx += op.X
			sy += op.Y
			n++
		}
	}
	if n == 0 {
		return point.Point{}
	}
	return point.Point{X: sx / float64(n), Y: sy / float64(n)}
}
