package measure

import (
	"github.com/scagviz/scagnostics/point"
	"github.com/scagviz/scagnostics/stat"
)

// Monotonic scores how well the original (pre-normalization) x,y
// coordinates behind the pruned MST's surviving nodes follow a monotone
// relationship: the squared Spearman rank correlation. original maps a
// surviving node's coordinate key back to the centroid
// of the raw points binned into it, so the correlation is computed on
// the caller's original scale rather than the normalized one.
func Monotonic(nodes []point.Point, original map[[2]float64]point.Point) float64 {
	if len(nodes) < 2 {
		return 0
	}
	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	for i, n := range nodes {
		p := n
		if orig, ok := original[n.Key()]; ok {
			p = orig
		}
		xs[i] = p.X
		ys[i] = p.Y
	}
	return stat.Spearman(xs, ys)
}
