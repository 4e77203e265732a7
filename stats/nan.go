package stats

// DropNaN returns a new slice holding the entries of sample that are not
// NaN, in their original order. Infinities are kept. The result never
// shares storage with sample.
func DropNaN[T Kind](sample []T) []T {
	out := make([]T, 0, len(sample))
	for _, v := range sample {
		if !IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountNaN returns the number of NaN entries in sample.
func CountNaN[T Kind](sample []T) int {
	n := 0
	for _, v := range sample {
		if IsNaN(v) {
			n++
		}
	}
	return n
}
