package measure

import "github.com/scagviz/scagnostics/mstgraph"

// Striated scores how often the pruned MST runs in straight lines: the
// fraction of V2 corners whose interior angle exceeds 135°.
func Striated(t *mstgraph.Graph) float64 {
	corners := V2Corners(t)
	if len(corners) == 0 {
		return 0
	}
	obtuse := ObtuseV2Corners(corners)
	return clamp01(float64(len(obtuse)) / float64(len(corners)))
}
