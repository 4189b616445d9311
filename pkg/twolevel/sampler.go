// Package twolevel implements the two-level (nested) Monte Carlo sampler for
// glueball correlators, following the Barca-Peardon construction: freeze a
// boundary field configuration, resample only the active interior many times,
// then average the cheap inner estimates across independently drawn
// boundaries. For observables that factorize across the frozen boundary the
// variance of the final estimate drops as 1/N1^2 instead of the standard
// Monte Carlo 1/N.
//
// The correlator itself is a toy model: C(t) = exp(-m*t) plus Gaussian noise
// whose amplitude tracks the signal, so the sampler demonstrates the
// statistical scaling law on synthetic data rather than measuring a genuine
// gauge observable.
package twolevel

import (
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"glueball/pkg/lattice"
	"glueball/pkg/stats"
)

const (
	// interiorSigma is the standard deviation of the Gaussian perturbation
	// applied to the active interior on every inner resample.
	interiorSigma = 0.1
	// noiseAmplitude scales the stochastic part of a correlator sample.
	noiseAmplitude = 0.1
	// defaultSeed keeps runs reproducible when the caller supplies no
	// random source.
	defaultSeed = 1
)

// Verdict classifies the observed variance scaling of a finished run.
type Verdict string

const (
	// VerdictPass means the observed scaling stayed within twice the
	// theoretical 1/N1^2 bound.
	VerdictPass Verdict = "PASS"
	// VerdictWarn means the variance reduction underperformed and the run
	// parameters should be revisited. It is an outcome, not a failure.
	VerdictWarn Verdict = "WARN"
)

// Sampler runs the two-level algorithm over one lattice geometry. All
// randomness flows through the single rng handed to NewSampler, so a run is
// a pure function of (configs, seed). Not safe for concurrent use.
type Sampler struct {
	lattice lattice.Config
	config  Config
	rng     *rand.Rand
}

// NewSampler validates the run parameters and builds a sampler. A nil rng
// falls back to a deterministic default source. The returned error is a
// *ConfigurationError when the frozen-boundary invariant is violated; the
// caller must not proceed with the run in that case.
func NewSampler(lat lattice.Config, cfg Config, rng *rand.Rand) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	return &Sampler{lattice: lat, config: cfg, rng: rng}, nil
}

// Config returns the validated run parameters.
func (s *Sampler) Config() Config {
	return s.config
}

// GenerateBoundaryField draws one fresh boundary configuration. Called once
// per outer iteration; the result represents "freezing" a new boundary.
func (s *Sampler) GenerateBoundaryField() *lattice.Field {
	return lattice.GenerateField(s.lattice, s.rng)
}

// MeasureCorrelator returns one stochastic correlator sample
// C(t) = exp(-m*t) + N(0, 0.1*exp(-m*t/2)) for the given channel. The field
// argument keeps the call shape of a genuine lattice measurement, but the
// toy signal depends only on t and the channel mass, not on the field
// contents.
func (s *Sampler) MeasureCorrelator(field *lattice.Field, t int, channel Channel) (float64, error) {
	mEff, ok := effectiveMass[channel]
	if !ok {
		return 0, &UnknownChannelError{Channel: channel}
	}
	_ = field
	return s.correlator(mEff, t), nil
}

func (s *Sampler) correlator(mEff float64, t int) float64 {
	signal := math.Exp(-mEff * float64(t))
	noise := s.rng.NormFloat64() * (noiseAmplitude * math.Exp(-mEff*float64(t)/2))
	return signal + noise
}

// MeasureActiveRegion resamples the interior of the active window N1 times
// while the frozen shell of thickness Delta on each side stays untouched,
// recording one correlator sample per channel, time separation and inner
// resample. The input configuration is copied, never mutated.
//
// The returned matrices are indexed [timeIndex][innerSample] and cover the
// scalar and pseudoscalar channels respectively.
func (s *Sampler) MeasureActiveRegion(frozen *lattice.Field) (scalar, pseudoscalar [][]float64) {
	numT := s.config.ActiveWindow()
	scalar = newMatrix(numT, s.config.N1)
	pseudoscalar = newMatrix(numT, s.config.N1)

	for inner := 0; inner < s.config.N1; inner++ {
		perturbed := frozen.Copy()
		perturbed.PerturbSlab(
			s.config.TActiveStart+s.config.Delta,
			s.config.TActiveEnd-s.config.Delta,
			interiorSigma, s.rng)

		for tIdx := 0; tIdx < numT; tIdx++ {
			t := s.config.TActiveStart + tIdx
			scalar[tIdx][inner] = s.correlator(massScalar, t)
			pseudoscalar[tIdx][inner] = s.correlator(massPseudoscalar, t)
		}
	}
	return scalar, pseudoscalar
}

// SimulationResult aggregates one finished two-level run. It is immutable
// after construction; NaN entries mark statistics that were undefined for
// the configured sample counts (see Degenerate).
type SimulationResult struct {
	// TRange lists the absolute time separations of the active window.
	TRange []int
	// Correlator0PP and Correlator0MP are the final per-time-step correlator
	// estimates, averaged over inner resamples and boundary samples.
	Correlator0PP []float64
	Correlator0MP []float64
	// Variance0PP and Variance0MP are the per-time-step variances across
	// boundary samples divided by N2 (the standard error of the outer mean).
	Variance0PP []float64
	Variance0MP []float64
	// VarianceScaling is the observed dimensionless ratio
	// mean(variance)/mean(mean^2); ExpectedScaling is the theoretical
	// two-level bound 1/N1^2.
	VarianceScaling float64
	ExpectedScaling float64
	// Verdict classifies VarianceScaling against ExpectedScaling.
	Verdict Verdict
	// Degenerate marks runs whose sample counts (N1 < 1 or N2 < 2) cannot
	// support the reported statistics; such results carry NaN entries.
	Degenerate bool
}

// RunSimulation executes the full nested loop: N2 boundary samples, each
// averaged over N1 inner resamples, then aggregates means and variances per
// time step and classifies the observed variance scaling against the 1/N1^2
// law. Pure computation; no I/O beyond logging.
func (s *Sampler) RunSimulation() *SimulationResult {
	log.WithFields(log.Fields{
		"n1":    s.config.N1,
		"n2":    s.config.N2,
		"delta": s.config.Delta,
	}).Info("Starting two-level simulation")

	degenerate := false
	if s.config.N1 < 1 {
		log.Warnf("Degenerate run: n1=%d yields no inner samples; correlator means are undefined", s.config.N1)
		degenerate = true
	}
	if s.config.N2 < 2 {
		log.Warnf("Degenerate run: n2=%d cannot support a variance estimate across boundary samples", s.config.N2)
		degenerate = true
	}

	numT := s.config.ActiveWindow()
	if numT < 0 {
		numT = 0
	}
	tRange := make([]int, numT)
	for i := range tRange {
		tRange[i] = s.config.TActiveStart + i
	}

	// Outer loop: one frozen boundary per iteration, reduced to a
	// per-time-step inner mean. Shapes are [boundarySample][timeIndex].
	outerScalar := newMatrix(s.config.N2, numT)
	outerPseudo := newMatrix(s.config.N2, numT)
	for n := 0; n < s.config.N2; n++ {
		frozen := s.GenerateBoundaryField()
		scalar, pseudo := s.MeasureActiveRegion(frozen)
		for tIdx := 0; tIdx < numT; tIdx++ {
			outerScalar[n][tIdx] = stats.Mean(scalar[tIdx])
			outerPseudo[n][tIdx] = stats.Mean(pseudo[tIdx])
		}
		log.Debugf("Boundary sample %d/%d measured", n+1, s.config.N2)
	}

	result := &SimulationResult{
		TRange:          tRange,
		Correlator0PP:   make([]float64, numT),
		Correlator0MP:   make([]float64, numT),
		Variance0PP:     make([]float64, numT),
		Variance0MP:     make([]float64, numT),
		ExpectedScaling: 1.0 / float64(s.config.N1*s.config.N1),
		Degenerate:      degenerate,
	}

	column := make([]float64, s.config.N2)
	for tIdx := 0; tIdx < numT; tIdx++ {
		for n := 0; n < s.config.N2; n++ {
			column[n] = outerScalar[n][tIdx]
		}
		result.Correlator0PP[tIdx] = stats.Mean(column)
		result.Variance0PP[tIdx] = s.outerVariance(column)

		for n := 0; n < s.config.N2; n++ {
			column[n] = outerPseudo[n][tIdx]
		}
		result.Correlator0MP[tIdx] = stats.Mean(column)
		result.Variance0MP[tIdx] = s.outerVariance(column)
	}

	result.VarianceScaling = stats.Mean(result.Variance0PP) / stats.MeanSquare(result.Correlator0PP)

	log.Infof("Expected variance scaling (1/N1^2): %.6f", result.ExpectedScaling)
	log.Infof("Observed variance scaling: %.6f", result.VarianceScaling)

	// NaN comparisons fail, so degenerate runs land on WARN.
	if result.VarianceScaling < 2*result.ExpectedScaling {
		result.Verdict = VerdictPass
		log.Info("Variance reduction validated; two-level scaling holds")
	} else {
		result.Verdict = VerdictWarn
		log.Warn("Variance reduction suboptimal; revisit run parameters")
	}
	return result
}

// outerVariance is the variance across boundary samples corrected by 1/N2.
// Below two samples the estimate is undefined and reported as NaN.
func (s *Sampler) outerVariance(column []float64) float64 {
	if s.config.N2 < 2 {
		return math.NaN()
	}
	return stats.Variance(column) / float64(s.config.N2)
}

func newMatrix(rows, cols int) [][]float64 {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}
