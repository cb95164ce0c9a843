package outlier_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/scagviz/scagnostics/delaunay"
	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/outlier"
	"github.com/scagviz/scagnostics/point"
)

type OutlierSuite struct {
	suite.Suite
}

func TestOutlierSuite(t *testing.T) {
	suite.Run(t, new(OutlierSuite))
}

func mstOf(pts []point.Point) *mstgraph.Graph {
	g := mstgraph.Build(delaunay.Triangulate(pts))
	return mstgraph.MST(g)
}

// TestNoOutliers: a tight grid has no edge exceeding Q3+1.5*IQR.
func (s *OutlierSuite) TestNoOutliers() {
	var pts []point.Point
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			pts = append(pts, point.New(float64(i), float64(j)))
		}
	}
	mst := mstOf(pts)
	res := outlier.Run(mst, nil)
	require.Equal(s.T(), 0.0, res.Score, "uniform grid should have zero outlying score")
	require.Empty(s.T(), res.OutlyingLinks)
}

// TestOneOutlier: a single far point creates a long bridging MST edge
// that exceeds the IQR bound.
func (s *OutlierSuite) TestOneOutlier() {
	var pts []point.Point
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			pts = append(pts, point.New(float64(i)*0.1, float64(j)*0.1))
		}
	}
	pts = append(pts, point.New(100, 100))
	mst := mstOf(pts)
	res := outlier.Run(mst, nil)
	require.Greater(s.T(), res.Score, 0.0, "far outlier should be detected")
	require.NotEmpty(s.T(), res.OutlyingLinks)

	var maxWeight float64
	for _, l := range mst.Links {
		if l.Weight > maxWeight {
			maxWeight = l.Weight
		}
	}
	var maxOutlying float64
	for _, l := range res.OutlyingLinks {
		if l.Weight > maxOutlying {
			maxOutlying = l.Weight
		}
	}
	require.Equal(s.T(), maxWeight, maxOutlying, "the longest MST edge must be outlying")
}

// TestOverride bypasses the IQR-derived bound entirely.
func (s *OutlierSuite) TestOverride() {
	var pts []point.Point
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			pts = append(pts, point.New(float64(i), float64(j)))
		}
	}
	mst := mstOf(pts)
	tiny := 0.5
	res := outlier.Run(mst, &tiny)
	require.Equal(s.T(), tiny, res.UpperBound)
	require.NotEmpty(s.T(), res.OutlyingLinks, "tiny override should flag unit edges as outlying")
}

// TestPrunedTreeDropsIsolatedNodes confirms the no-outlying tree removes
// nodes that become degree-0 after pruning.
func (s *OutlierSuite) TestPrunedTreeDropsIsolatedNodes() {
	var pts []point.Point
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			pts = append(pts, point.New(float64(i)*0.1, float64(j)*0.1))
		}
	}
	pts = append(pts, point.New(100, 100))
	mst := mstOf(pts)
	res := outlier.Run(mst, nil)
	require.Less(s.T(), len(res.Pruned.Nodes), len(mst.Nodes), "pruned tree should drop the isolated outlier")
}

// TestWeightStatsCoversFullTree confirms WeightStats summarizes every
// MST edge, not just the surviving ones after pruning.
func (s *OutlierSuite) TestWeightStatsCoversFullTree() {
	var pts []point.Point
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			pts = append(pts, point.New(float64(i), float64(j)))
		}
	}
	mst := mstOf(pts)
	res := outlier.Run(mst, nil)
	require.InDelta(s.T(), 1.0, res.WeightStats.Mean, 1e-9, "unit grid MST edges should all have weight 1")
	require.InDelta(s.T(), 0.0, res.WeightStats.StdDev, 1e-9, "unit grid MST edges have no weight variance")
}
