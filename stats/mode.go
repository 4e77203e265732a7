package stats

// Mode returns the most frequent value of sample converted to kind O.
//
// Values are counted by identity: integers by value, floats by bit
// pattern with all NaNs counted together, so -0 and +0 are distinct. When
// several values share the highest count the smallest one under Compare
// wins.
//
// The winner reaches O through its text form. If that text is not a valid
// O (5.5 into int64, -1 into uint32) the error is a *ParseError.
func Mode[O, I Kind](sample []I) (O, bool, error) {
	var zero O
	if len(sample) == 0 {
		return zero, false, nil
	}

	type entry struct {
		value I
		count int
	}
	counts := make(map[uint64]*entry, len(sample))
	var best *entry
	for _, v := range sample {
		key := bucket(v)
		e, ok := counts[key]
		if !ok {
			e = &entry{value: v}
			counts[key] = e
		}
		e.count++
		if best == nil || e.count > best.count ||
			(e.count == best.count && Compare(e.value, best.value) < 0) {
			best = e
		}
	}

	out, err := Parse[O](Format(best.value))
	if err != nil {
		return zero, true, err
	}
	return out, true, nil
}

// NanMode is Mode over the non-NaN entries of sample.
func NanMode[O, I Kind](sample []I) (O, bool, error) {
	return Mode[O](DropNaN(sample))
}
