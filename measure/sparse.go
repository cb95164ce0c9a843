package measure

import (
	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/stat"
)

// Sparse scores how spread out the pruned MST's edges are: the 0.9
// quantile of edge weights, clamped to [0,1].
func Sparse(t *mstgraph.Graph) float64 {
	weights := t.Weights()
	if len(weights) == 0 {
		return 0
	}
	q90 := stat.Quantile(weights, 0.9)
	return clamp01(q90)
}
