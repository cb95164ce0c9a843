// Package scagnostics computes scatter-plot diagnostics: nine scalar
// measures that summarize the shape of a 2-D point scatter — how
// outlying, skewed, sparse, clumpy, striated, convex, skinny, stringy,
// and monotonic it is — plus the geometric artifacts the measures are
// built on.
//
// 🔭 What is scagnostics?
//
//	A pure, deterministic pipeline (Wilkinson, Anand & Grossman) that
//	turns a raw point scatter into nine scalars in [0,1]:
//		• Normalize   — scale into the unit square
//		• Bin         — adaptive hexagonal aggregation down to a
//		                manageable site count
//		• Triangulate — Delaunay triangulation of the sites
//		                (Bowyer-Watson, with a line-graph fallback
//		                for collinear input)
//		• Graph + MST — weighted graph over the triangulation,
//		                Kruskal minimum spanning tree
//		• Prune       — drop MST edges beyond an IQR-derived bound,
//		                scoring how much weight they carried
//		• Measure     — nine scalar scagnostics over the pruned tree
//		                and its convex/alpha hulls
//
// ✨ Why this package?
//
//   - Single entry point – Scagnostics(points, Options) returns one
//     Result holding every intermediate artifact and all nine scores
//   - Deterministic – identical input order produces identical output,
//     including documented tie-break rules
//   - Pure Go – no cgo; gonum and go-moremath cover the numerics
//
// Under the hood, the pipeline is organized under one subpackage per
// stage:
//
//	point/     — the 2-D point primitive, normalization, coordinate identity
//	bin/       — adaptive hexagonal binning
//	delaunay/  — Bowyer-Watson triangulation and the collinear fallback
//	mstgraph/  — the weighted graph, union-find, and Kruskal's MST
//	outlier/   — IQR-based MST pruning
//	hull/      — polygon geometry, convex hulls, alpha-shapes
//	stat/      — quickselect, quantiles, rank correlation
//	measure/   — the other eight scagnostic measures
//
// See Scagnostics for the entry point and Options/Result for the
// surface it exposes.
package scagnostics
