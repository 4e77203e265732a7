package stats

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sort sorts s in place under Compare. Equal values keep their order.
func Sort[T Kind](s []T) {
	slices.SortStableFunc(s, Compare[T])
}

// Min returns the smallest value of sample under Compare.
func Min[T Kind](sample []T) (T, bool) {
	if len(sample) == 0 {
		var zero T
		return zero, false
	}
	m := sample[0]
	for _, v := range sample[1:] {
		if Compare(v, m) < 0 {
			m = v
		}
	}
	return m, true
}

// Max returns the largest value of sample under Compare. Any NaN is the
// maximum.
func Max[T Kind](sample []T) (T, bool) {
	if len(sample) == 0 {
		var zero T
		return zero, false
	}
	m := sample[0]
	for _, v := range sample[1:] {
		if Compare(v, m) > 0 {
			m = v
		}
	}
	return m, true
}

// Quantile returns the nearest-rank q-quantile of an already sorted
// sample: the element at ceil(q*n)-1, clamped to the sample bounds.
func Quantile[T Kind, Q constraints.Float](sorted []T, q Q) (T, bool) {
	n := len(sorted)
	if n == 0 {
		var zero T
		return zero, false
	}
	i := int(math.Ceil(float64(q)*float64(n))) - 1
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return sorted[i], true
}
