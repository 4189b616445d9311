// Package entanglement estimates entanglement entropy scaling over growing
// lattice regions with a simulated replica trick and fits the result against
// the area-law form S(l) = alpha*l^2 - gamma*ln(l) + s0. A full lattice
// computation would run replicated simulations on an n-sheeted geometry;
// here the expected entropies are synthesized with Monte Carlo noise that
// grows with the region size, which is enough to stress the fitting and
// verification pipeline.
package entanglement

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"glueball/pkg/conf"
	"glueball/pkg/lattice"
	"glueball/pkg/stats"
)

var maxRegionFlag = conf.NewIntFlag("entanglement_max_region", "Largest region size l (in lattice units) probed by the entropy stress test.", 15)

// MaxRegionFromFlags returns the configured largest probed region size.
func MaxRegionFromFlags() int {
	return maxRegionFlag.Value()
}

// Model constants calibrated for pure SU(3).
const (
	areaCoefficient = 0.45
	logCoefficient  = 0.15
	constantEntropy = 0.05
	// noiseScale sets the per-unit-size standard deviation of the sampling
	// noise; larger regions are harder to sample.
	noiseScale = 0.01
	// defaultSeed keeps runs reproducible when the caller supplies no
	// random source.
	defaultSeed = 1
)

// Acceptance window for the fitted coefficients: the area law must dominate
// and the logarithmic correction must stay in its expected band.
const (
	minAlpha = 0.4
	minGamma = 0.1
	maxGamma = 0.25
)

// Analyzer runs the replica-trick entropy stress test over one lattice
// geometry. Not safe for concurrent use.
type Analyzer struct {
	lattice lattice.Config
	rng     *rand.Rand
}

// NewAnalyzer builds an analyzer. A nil rng falls back to a deterministic
// default source.
func NewAnalyzer(lat lattice.Config, rng *rand.Rand) *Analyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	return &Analyzer{lattice: lat, rng: rng}
}

// replicaTrickEntropy returns a simulated Renyi entropy S_2(l) for a region
// of linear size l: the theoretical area-law form plus Gaussian sampling
// noise, clamped to stay physical (non-negative).
func (a *Analyzer) replicaTrickEntropy(l int) float64 {
	size := float64(l)
	entropy := areaCoefficient*size*size - logCoefficient*math.Log(size) + constantEntropy
	entropy += a.rng.NormFloat64() * (noiseScale * size)
	return math.Max(0, entropy)
}

// StressTestResult holds the simulated entropies, the fitted scaling
// coefficients and the verdict of the area-law verification.
type StressTestResult struct {
	// Sizes are the probed region sizes, 2..maxSize.
	Sizes []int
	// Entropies are the simulated S(l) values, one per size.
	Entropies []float64
	// Alpha is the fitted area-law coefficient, Gamma the fitted
	// logarithmic correction.
	Alpha float64
	Gamma float64
	// Success reports whether both coefficients landed in the acceptance
	// window.
	Success bool
}

// RunStressTest simulates entropies for regions l = 2..maxSize, fits
// S(l) = alpha*l^2 - gamma*ln(l) + s0 by least squares and checks the
// coefficients against the acceptance window. It fails when too few region
// sizes are probed for the three-parameter fit to be determined.
func (a *Analyzer) RunStressTest(maxSize int) (*StressTestResult, error) {
	log.Infof("Starting entanglement entropy stress test (max region size %d)", maxSize)

	var sizes []int
	for l := 2; l <= maxSize; l++ {
		sizes = append(sizes, l)
	}

	entropies := make([]float64, len(sizes))
	squared := make([]float64, len(sizes))
	logged := make([]float64, len(sizes))
	ones := make([]float64, len(sizes))
	for i, l := range sizes {
		entropies[i] = a.replicaTrickEntropy(l)
		squared[i] = float64(l * l)
		logged[i] = math.Log(float64(l))
		ones[i] = 1
	}

	// The fit basis mirrors the model: S = [l^2, ln l, 1] * [alpha, -gamma, s0].
	coeffs, err := stats.FitLinear([][]float64{squared, logged, ones}, entropies)
	if err != nil {
		return nil, errors.Wrapf(err, "entropy scaling fit failed for %d region sizes", len(sizes))
	}

	result := &StressTestResult{
		Sizes:     sizes,
		Entropies: entropies,
		Alpha:     coeffs[0],
		Gamma:     -coeffs[1],
	}
	result.Success = result.Alpha > minAlpha && result.Gamma > minGamma && result.Gamma < maxGamma

	log.Infof("Fitted area coefficient alpha = %.4f", result.Alpha)
	log.Infof("Fitted logarithmic correction gamma = %.4f", result.Gamma)
	if result.Success {
		log.Info("Area law with logarithmic correction confirmed")
	} else {
		log.Warn("Entropy scaling verification failed; coefficients outside the acceptance window")
	}
	return result, nil
}
