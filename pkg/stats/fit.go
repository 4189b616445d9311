package stats

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned when the regressor columns and the
// observation vector do not describe a consistent system.
var ErrDimensionMismatch = errors.New("stats: regressors and observations have mismatched dimensions")

// ErrSingularSystem is returned when the normal equations cannot be solved,
// e.g. because two regressor columns are linearly dependent.
var ErrSingularSystem = errors.New("stats: singular normal equations")

// FitLinear solves the ordinary least-squares problem y ≈ Σ_j beta_j * cols_j
// and returns the coefficient vector beta, one entry per regressor column.
//
// The solver forms the k×k normal equations (XᵀX)β = Xᵀy and runs Gaussian
// elimination with partial pivoting; k is the number of columns (three for
// the entropy fit), so the dense solve is negligible next to building the
// system. Every column must have the same length as y and there must be at
// least as many observations as columns.
func FitLinear(cols [][]float64, y []float64) ([]float64, error) {
	k := len(cols)
	n := len(y)
	if k == 0 || n == 0 || n < k {
		return nil, ErrDimensionMismatch
	}
	for _, col := range cols {
		if len(col) != n {
			return nil, ErrDimensionMismatch
		}
	}

	// Normal equations: a = XᵀX (k×k, symmetric), b = Xᵀy.
	a := make([][]float64, k)
	b := make([]float64, k)
	for i := 0; i < k; i++ {
		a[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			var sum float64
			for r := 0; r < n; r++ {
				sum += cols[i][r] * cols[j][r]
			}
			a[i][j] = sum
		}
		var sum float64
		for r := 0; r < n; r++ {
			sum += cols[i][r] * y[r]
		}
		b[i] = sum
	}

	return solve(a, b)
}

// solve performs in-place Gaussian elimination with partial pivoting on the
// augmented system [a|b]. a and b are consumed.
func solve(a [][]float64, b []float64) ([]float64, error) {
	k := len(b)
	for col := 0; col < k; col++ {
		// Pick the row with the largest magnitude pivot.
		pivot := col
		for r := col + 1; r < k; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, ErrSingularSystem
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < k; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < k; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	// Back substitution.
	beta := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < k; j++ {
			sum -= a[i][j] * beta[j]
		}
		beta[i] = sum / a[i][i]
	}
	return beta, nil
}
