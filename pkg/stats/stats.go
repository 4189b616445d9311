// Package stats provides the scalar statistics used by the samplers and
// analyzers: mean and population variance over float64 slices, logarithmic
// grids, and a small multivariate least-squares fitter.
//
// Degenerate inputs follow the "complete but flagged" contract of the
// experiment results: an empty slice yields NaN rather than an error or a
// panic, so callers can propagate the value into reports and let the reader
// see that the statistic was undefined. NaN elements propagate into the
// result the same way.
package stats

import (
	"math"

	montanaflynn "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean of xs, or NaN when xs is empty.
func Mean(xs []float64) float64 {
	mean, err := montanaflynn.Mean(xs)
	if err != nil {
		return math.NaN()
	}
	return mean
}

// MeanSquare returns the mean of the element-wise squares of xs, or NaN when
// xs is empty.
func MeanSquare(xs []float64) float64 {
	squared := make([]float64, len(xs))
	for i, x := range xs {
		squared[i] = x * x
	}
	return Mean(squared)
}

// Variance returns the population variance of xs (normalized by len(xs), not
// len(xs)-1, matching the estimator the correlator aggregation uses). It
// returns NaN for an empty slice and 0 for a single element.
func Variance(xs []float64) float64 {
	variance, err := montanaflynn.PopulationVariance(xs)
	if err != nil {
		return math.NaN()
	}
	return variance
}

// Logspace returns num values spaced evenly on a log10 scale between
// 10^startExp and 10^endExp inclusive. num < 2 yields a single-point grid at
// 10^startExp (or an empty slice for num <= 0).
func Logspace(startExp, endExp float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	out := make([]float64, num)
	if num == 1 {
		out[0] = math.Pow(10, startExp)
		return out
	}
	step := (endExp - startExp) / float64(num-1)
	for i := range out {
		out[i] = math.Pow(10, startExp+float64(i)*step)
	}
	return out
}
