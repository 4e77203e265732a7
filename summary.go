package main

import (
	"slices"

	"stats_worker/stats"
)

// Summary is what gets written to test_results for one window of samples.
type Summary struct {
	Count    int
	NaNCount int
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
	Mode     float64
	Q1       float64
	Q3       float64
	Variance float64
	StdDev   float64
}

// summarize ignores NaN samples. An empty (or all-NaN) window yields a
// zero Summary apart from NaNCount.
func summarize(samples []float64) Summary {
	s := stats.DropNaN(samples)
	sum := Summary{Count: len(s), NaNCount: len(samples) - len(s)}
	if len(s) == 0 {
		return sum
	}

	// s is our own copy, sort it once for the order statistics
	stats.Sort(s)
	sum.Min = s[0]
	sum.Max = s[len(s)-1]
	sum.Q1, _ = stats.Quantile(s, 0.25)
	sum.Q3, _ = stats.Quantile(s, 0.75)
	sum.Median, _ = stats.MedianInPlace[float64](s)
	sum.Mean, _ = stats.Mean[float64](s)
	sum.Variance, _ = stats.Variance(s)
	sum.StdDev, _ = stats.Std(s)
	// float64 into float64 always round-trips
	sum.Mode, _, _ = stats.Mode[float64](s)
	return sum
}

// sortedCopy is used by describe to print order statistics without
// touching the caller's values.
func sortedCopy[T stats.Kind](values []T) []T {
	s := slices.Clone(values)
	stats.Sort(s)
	return s
}
