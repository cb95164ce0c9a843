package measure

import (
	"github.com/scagviz/scagnostics/mstgraph"
	"github.com/scagviz/scagnostics/stat"
)

// Skewed scores how asymmetric the pruned MST's edge-weight distribution
// is: (q90 − q50) / (q90 − q10), clamped to [0,1]. The scagnostics
// literature also describes an alternate, corrected form; this package
// implements the uncorrected form as primary and keeps the corrected
// variant as an unexported alternate for documentation (see
// skewedCorrected).
func Skewed(t *mstgraph.Graph) float64 {
	weights := t.Weights()
	if len(weights) == 0 {
		return 0
	}
	qs := stat.Quantiles(weights, []float64{0.9, 0.5, 0.1})
	q90, q50, q10 := qs[0], qs[1], qs[2]

	denom := q90 - q10
	if denom == 0 {
		return 0
	}
	score := (q90 - q50) / denom
	return clamp01(score)
}

// skewedCorrected is the alternate formulation from the scagnostics
// literature, multiplying Skewed by |T.nodes|/(|T.nodes|+c). Not wired
// into the public surface — the uncorrected form is primary — so this
// exists purely so the alternate isn't silently lost.
func skewedCorrected(t *mstgraph.Graph, c float64) float64 {
	base := Skewed(t)
	n := float64(len(t.Nodes))
	if n+c == 0 {
		return base
	}
	return base * (n / (n + c))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
