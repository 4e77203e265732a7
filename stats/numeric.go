// Package stats computes descriptive statistics over samples of a fixed
// numeric kind. Every function is generic over Kind; results are returned
// comma-ok style, with ok == false for an empty sample.
//
// Functions that take two type parameters put the output kind first so
// the input kind can be inferred:
//
//	m, ok := stats.Mean[float64]([]int32{1, 2, 3, 4})
package stats

import (
	"math"
	"strconv"
)

// Kind is the closed set of numeric representations the package supports.
type Kind interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

// IsNaN reports whether v is a floating-point NaN. It is always false for
// integer kinds.
func IsNaN[T Kind](v T) bool {
	return v != v
}

// Compare orders a and b totally: numeric order, -0 before +0, and NaN
// after every other value. Two NaNs compare equal.
func Compare[T Kind](a, b T) int {
	aNaN, bNaN := IsNaN(a), IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	if a == 0 {
		// only floats can disagree here
		as, bs := math.Signbit(float64(a)), math.Signbit(float64(b))
		switch {
		case as && !bs:
			return -1
		case !as && bs:
			return 1
		}
	}
	return 0
}

// Format returns the shortest text that Parse maps back to v. Floats are
// written without an exponent so whole values also parse as integers.
func Format[T Kind](v T) string {
	switch x := any(v).(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	panic("unreachable")
}

// Parse reads s as a value of kind T. Failures are reported as *ParseError.
func Parse[T Kind](s string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		var zero T
		return zero, &ParseError{Text: s, Kind: KindName[T](), Err: err}
	}
	return out, nil
}

// KindName returns the Go name of T, e.g. "uint32".
func KindName[T Kind]() string {
	var zero T
	switch any(zero).(type) {
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	}
	return "float64"
}

// bucket maps v to a key that identifies its value: the integer itself or
// the float's bit pattern. All NaNs share one key.
func bucket[T Kind](v T) uint64 {
	switch x := any(v).(type) {
	case int32:
		return uint64(int64(x))
	case int64:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		if x != x {
			return math.Float64bits(math.NaN())
		}
		return uint64(math.Float32bits(x))
	case float64:
		if x != x {
			return math.Float64bits(math.NaN())
		}
		return math.Float64bits(x)
	}
	panic("unreachable")
}
