package stat

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Ranks returns the 1-based rank of each element of xs, averaging ranks
// across ties (the standard rank-correlation convention).
func Ranks(xs []float64) []float64 {
	n := len(xs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return xs[order[a]] < xs[order[b]] })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && xs[order[j+1]] == xs[order[i]] {
			j++
		}
		avgRank := float64(i+j)/2 + 1
		for p := i; p <= j; p++ {
			ranks[order[p]] = avgRank
		}
		i = j + 1
	}
	return ranks
}

// Spearman returns the squared Spearman rank correlation coefficient
// between xs and ys, computed as the Pearson correlation (via
// gonum.org/v1/gonum/stat.Correlation) of their ranks, squared — the
// Monotonic measure. Returns 0 for degenerate (zero-variance) inputs
// rather than propagating gonum's NaN: a score that would divide by
// zero is defined as 0.
func Spearman(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}
	rx := Ranks(xs)
	ry := Ranks(ys)
	rho := stat.Correlation(rx, ry, nil)
	if rho != rho { // NaN guard (e.g. constant ranks)
		return 0
	}
	return rho * rho
}
