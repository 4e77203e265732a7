package stats

import "slices"

// Median returns the median of sample as kind O. sample is left untouched;
// the sort runs on a private copy. Use MedianInPlace when the caller no
// longer needs the original order.
func Median[O, I Kind](sample []I) (O, bool) {
	return MedianInPlace[O](slices.Clone(sample))
}

// MedianInPlace is Median that sorts sample itself under Compare. NaN
// entries sort last and take part in the middle selection.
//
// For an even length the result is the mean of the two middle values,
// computed in O.
func MedianInPlace[O, I Kind](sample []I) (O, bool) {
	n := len(sample)
	if n == 0 {
		var zero O
		return zero, false
	}
	Sort(sample)
	m := n / 2
	if n%2 == 1 {
		return O(sample[m]), true
	}
	return (O(sample[m-1]) + O(sample[m])) / 2, true
}

// NanMedian is Median over the non-NaN entries of sample.
func NanMedian[O, I Kind](sample []I) (O, bool) {
	// DropNaN already returns a fresh slice
	return MedianInPlace[O](DropNaN(sample))
}
