package stats

import "math"

// Variance returns the population variance of sample: the mean squared
// deviation from Mean, divided by n rather than n-1.
func Variance[I Kind](sample []I) (float64, bool) {
	mean, ok := Mean[float64](sample)
	if !ok {
		return 0, false
	}
	var sumsq float64
	for _, v := range sample {
		d := float64(v) - mean
		sumsq += d * d
	}
	return sumsq / float64(len(sample)), true
}

// Std returns the population standard deviation of sample.
func Std[I Kind](sample []I) (float64, bool) {
	v, ok := Variance(sample)
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

// NanVariance is Variance over the non-NaN entries of sample.
func NanVariance[I Kind](sample []I) (float64, bool) {
	return Variance(DropNaN(sample))
}

// NanStd is Std over the non-NaN entries of sample.
func NanStd[I Kind](sample []I) (float64, bool) {
	return Std(DropNaN(sample))
}
