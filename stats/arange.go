package stats

// Arange returns start, start+step, ... up to but excluding end. A
// negative step counts down. The result is empty when start is already
// past end in the step direction.
func Arange(start, end, step int64) ([]int64, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	// distances are taken in uint64 so they cannot overflow
	var n uint64
	switch {
	case step > 0 && end > start:
		n = (uint64(end)-uint64(start)-1)/uint64(step) + 1
	case step < 0 && end < start:
		n = (uint64(start)-uint64(end)-1)/(-uint64(step)) + 1
	}
	out := make([]int64, 0, n)
	v := start
	for i := uint64(0); i < n; i++ {
		out = append(out, v)
		v += step
	}
	return out, nil
}
