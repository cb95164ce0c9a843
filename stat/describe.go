package stat

import "github.com/aclements/go-moremath/stats"

// Describe summarizes a sample's mean and standard deviation using
// go-moremath/stats.Sample, the same package
// other_examples/aclements-go-moremath__dist.go drives from the command
// line. It never mutates xs (stats.Sample.Sort sorts its own copy's
// backing slice, so Describe takes a defensive copy first).
type Describe struct {
	Mean   float64
	StdDev float64
}

// DescribeSample computes Describe over xs without mutating it.
func DescribeSample(xs []float64) Describe {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	s := stats.Sample{Xs: cp}
	return Describe{Mean: s.Mean(), StdDev: s.StdDev()}
}
