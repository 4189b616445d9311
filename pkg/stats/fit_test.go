package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glueball/pkg/stats"
)

// TestFitLinearRecoversExactCoefficients fits noiseless observations built
// from the same basis the entropy analyzer uses (l^2, ln l, 1) and expects
// the generating coefficients back.
func TestFitLinearRecoversExactCoefficients(t *testing.T) {
	const (
		alpha = 2.0
		gamma = -3.0
		c0    = 0.5
	)
	var squared, logged, ones, y []float64
	for l := 1; l <= 10; l++ {
		x := float64(l)
		squared = append(squared, x*x)
		logged = append(logged, math.Log(x))
		ones = append(ones, 1)
		y = append(y, alpha*x*x+gamma*math.Log(x)+c0)
	}

	beta, err := stats.FitLinear([][]float64{squared, logged, ones}, y)
	require.NoError(t, err)
	require.Len(t, beta, 3)
	assert.InDelta(t, alpha, beta[0], 1e-9)
	assert.InDelta(t, gamma, beta[1], 1e-9)
	assert.InDelta(t, c0, beta[2], 1e-9)
}

func TestFitLinearSingleRegressor(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	y := []float64{3, 6, 9, 12}

	beta, err := stats.FitLinear([][]float64{xs}, y)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, beta[0], 1e-12)
}

func TestFitLinearDimensionMismatch(t *testing.T) {
	_, err := stats.FitLinear([][]float64{{1, 2, 3}}, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrDimensionMismatch)

	_, err = stats.FitLinear(nil, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrDimensionMismatch)

	// Fewer observations than regressors cannot determine the system.
	_, err = stats.FitLinear([][]float64{{1}, {2}, {3}}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrDimensionMismatch)
}

func TestFitLinearSingularSystem(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	_, err := stats.FitLinear([][]float64{xs, xs}, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, stats.ErrSingularSystem)
}
