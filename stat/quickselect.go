// Package stat implements the selection and quantile primitives the
// pipeline needs: an in-place Floyd-Rivest quickselect, single- and
// multi-target quantile extraction built on it, and the Spearman rank
// correlation used by the monotonic measure.
package stat

import "math"

// Select partitions arr in place so that arr[k] holds the (k+1)-th
// smallest element (0-indexed), with every element to its left no larger
// and every element to its right no smaller. It mutates arr.
//
// This is the Floyd-Rivest variant: once the active range exceeds 600
// elements, it first recurses on a log/exp-sized sub-range to narrow the
// search before doing the Hoare partition, reducing the expected number
// of comparisons versus plain quickselect. No third-party selection
// primitive available covers this exact mutating, sub-range-narrowing
// algorithm — the closest analogues (go-moremath/stats.Sample.Percentile,
// a full sort) don't expose partial, in-place selection, so this is
// hand-written.
func Select(arr []float64, k int) float64 {
	left, right := 0, len(arr)-1
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			i := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n) * sign(i-n/2)
			newLeft := maxInt(left, k-int(i*s/n)+int(sd))
			newRight := minInt(right, k+int((n-i)*s/n)+int(sd))
			Select(arr[newLeft:newRight+1], k-newLeft)
		}

		t := arr[k]
		i, j := left, right
		swap(arr, left, k)
		if arr[right] > t {
			swap(arr, left, right)
		}
		for i < j {
			swap(arr, i, j)
			i++
			j--
			for arr[i] < t {
				i++
			}
			for arr[j] > t {
				j--
			}
		}
		if arr[left] == t {
			swap(arr, left, j)
		} else {
			j++
			swap(arr, j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
	return arr[k]
}

func swap(arr []float64, i, j int) { arr[i], arr[j] = arr[j], arr[i] }

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
