package stat

import "math"

// Quantile returns the p-quantile (p in [0,1]) of a length-n sample,
// selecting via Select — it never fully sorts arr. Mutates arr.
//
// p == 0 returns the minimum, p == 1 the maximum. Otherwise let
// idx = n*p: if idx is a whole number and n is even, the result
// interpolates the two straddling order statistics; otherwise it is the
// single order statistic at ceil(idx)-1.
func Quantile(arr []float64, p float64) float64 {
	n := len(arr)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return Select(arr, 0)
	}
	if p >= 1 {
		return Select(arr, n-1)
	}

	idx := float64(n) * p
	if isWhole(idx) && n%2 == 0 {
		lo := int(idx) - 1
		hi := int(idx)
		lo = clamp(lo, 0, n-1)
		hi = clamp(hi, 0, n-1)
		a := Select(arr, lo)
		b := Select(arr, hi)
		return (a + b) / 2
	}
	k := int(math.Ceil(idx)) - 1
	k = clamp(k, 0, n-1)
	return Select(arr, k)
}

// quantileTarget records that quantile index idx needs the order
// statistic at selector: hi marks the upper half of an even-n
// interpolation; otherwise it is the lower half or the sole order
// statistic.
type quantileTarget struct {
	idx      int
	hi       bool
	selector int
}

// Quantiles computes several quantiles of arr at once, selecting each
// distinct target order-statistic exactly once via a worklist-driven
// multi-select: a deque of (range, targets) jobs, each job selecting its
// median target and pushing the resulting left/right sub-ranges back onto
// the deque with their own target subsets, so no index is ever
// reselected. Mutates arr; returns one value per p, in the same order.
func Quantiles(arr []float64, ps []float64) []float64 {
	n := len(arr)
	if n == 0 {
		return make([]float64, len(ps))
	}

	results := make([]float64, len(ps))
	var pending []quantileTarget
	for i, p := range ps {
		lo, hi, needTwo := targetIndices(n, p)
		pending = append(pending, quantileTarget{idx: i, selector: lo})
		if needTwo {
			pending = append(pending, quantileTarget{idx: i, hi: true, selector: hi})
		}
	}

	// Distinct selector indices, ascending — the deque processes ranges
	// of this sorted slice so every order statistic is selected once.
	selectors := uniqueSorted(pending)

	type job struct {
		left, right int
		sel         []int // absolute order-statistic indices within [left, right], sorted
	}
	deque := []job{{left: 0, right: len(arr) - 1, sel: selectors}}
	selected := make(map[int]float64, len(selectors))

	for len(deque) > 0 {
		j := deque[len(deque)-1]
		deque = deque[:len(deque)-1]
		if len(j.sel) == 0 {
			continue
		}
		mid := len(j.sel) / 2
		k := j.sel[mid]
		v := Select(arr[j.left:j.right+1], k-j.left)
		selected[k] = v

		if mid > 0 {
			deque = append(deque, job{left: j.left, right: k - 1, sel: j.sel[:mid]})
		}
		if mid+1 < len(j.sel) {
			deque = append(deque, job{left: k + 1, right: j.right, sel: j.sel[mid+1:]})
		}
	}

	loVal := make(map[int]float64, len(ps))
	hiVal := make(map[int]float64, len(ps))
	for _, t := range pending {
		if t.hi {
			hiVal[t.idx] = selected[t.selector]
		} else {
			loVal[t.idx] = selected[t.selector]
		}
	}
	for i, p := range ps {
		_, _, needTwo := targetIndices(n, p)
		if needTwo {
			results[i] = (loVal[i] + hiVal[i]) / 2
		} else {
			results[i] = loVal[i]
		}
	}
	return results
}

func targetIndices(n int, p float64) (lo, hi int, needTwo bool) {
	if p <= 0 {
		return 0, 0, false
	}
	if p >= 1 {
		return n - 1, 0, false
	}
	idx := float64(n) * p
	if isWhole(idx) && n%2 == 0 {
		lo = clamp(int(idx)-1, 0, n-1)
		hi = clamp(int(idx), 0, n-1)
		return lo, hi, true
	}
	k := clamp(int(math.Ceil(idx))-1, 0, n-1)
	return k, 0, false
}

func uniqueSorted(pending []quantileTarget) []int {
	seen := make(map[int]bool, len(pending))
	var out []int
	for _, t := range pending {
		if !seen[t.selector] {
			seen[t.selector] = true
			out = append(out, t.selector)
		}
	}
	// Simple insertion sort: pending lists are small (one or two per
	// requested quantile).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func isWhole(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
