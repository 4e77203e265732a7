package stats

// Mean returns the arithmetic mean of sample as kind O. The sum is
// accumulated in the input kind and divided once, after conversion to O,
// so integer outputs truncate and integer inputs may overflow their own
// range before the division.
func Mean[O, I Kind](sample []I) (O, bool) {
	if len(sample) == 0 {
		var zero O
		return zero, false
	}
	var sum I
	for _, v := range sample {
		sum += v
	}
	return O(sum) / O(len(sample)), true
}

// NanMean is Mean over the non-NaN entries of sample.
func NanMean[O, I Kind](sample []I) (O, bool) {
	return Mean[O](DropNaN(sample))
}
