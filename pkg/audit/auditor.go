// Package audit checks, numerically, that a gapped Källén-Lehmann spectral
// representation and the logarithmic momentum dependence demanded by
// asymptotic freedom cannot be reconciled on a continuum: a propagator with
// a hard mass gap falls off polynomially while asymptotic freedom forces
// S(p^2) ~ p^2 / ln(p^2/Lambda^2)^k. The auditor evaluates both shapes over
// a logarithmic momentum grid, normalizes them and reports the maximum
// pointwise discrepancy.
package audit

import (
	"math"

	log "github.com/sirupsen/logrus"

	"glueball/pkg/conf"
	"glueball/pkg/stats"
)

var (
	massGapFlag   = conf.NewFloatFlag("audit_mass_gap", "Assumed glueball mass gap in GeV for the continuum audit.", 1.7)
	lambdaQCDFlag = conf.NewFloatFlag("audit_lambda_qcd", "QCD scale Lambda in GeV for the asymptotic-freedom form.", 0.2)
)

// MassGapFromFlags returns the configured mass gap in GeV.
func MassGapFromFlags() float64 {
	return massGapFlag.Value()
}

// LambdaQCDFromFlags returns the configured QCD scale in GeV.
func LambdaQCDFromFlags() float64 {
	return lambdaQCDFlag.Value()
}

const (
	// Momentum grid: 500 points spanning 0.1 to 1000 GeV^2.
	gridStartExp = -1
	gridEndExp   = 3
	gridPoints   = 500
	// logGuard replaces non-positive logarithms below the QCD scale, where
	// the one-loop form breaks down.
	logGuard = 1e-10
	// incompatibilityThreshold on the normalized discrepancy.
	incompatibilityThreshold = 0.5
)

// Auditor evaluates the two propagator shapes for one QCD scale. Safe for
// concurrent use; it holds no mutable state.
type Auditor struct {
	lambdaQCD float64
}

// NewAuditor returns an auditor for the given QCD scale Lambda (GeV).
func NewAuditor(lambdaQCD float64) *Auditor {
	return &Auditor{lambdaQCD: lambdaQCD}
}

// SpectralRepresentation returns the Källén-Lehmann propagator with a hard
// mass gap over the momentum grid p2: zero below the gap where the spectral
// density vanishes, 1/(p^2 + gap^2) above it.
func (a *Auditor) SpectralRepresentation(p2 []float64, massGap float64) []float64 {
	out := make([]float64, len(p2))
	gapSquared := massGap * massGap
	for i, p := range p2 {
		if p > gapSquared {
			out[i] = 1.0 / (p + gapSquared)
		}
	}
	return out
}

// AsymptoticFreedom returns the one-loop asymptotic form
// p^2 / ln(p^2/Lambda^2)^k over the momentum grid p2. Non-positive
// logarithms (momenta at or below the QCD scale) are clamped to a tiny
// positive guard.
func (a *Auditor) AsymptoticFreedom(p2 []float64, k float64) []float64 {
	out := make([]float64, len(p2))
	lambdaSquared := a.lambdaQCD * a.lambdaQCD
	for i, p := range p2 {
		logFactor := math.Log(p / lambdaSquared)
		if logFactor <= 0 {
			logFactor = logGuard
		}
		out[i] = p / math.Pow(logFactor, k)
	}
	return out
}

// IncompatibilityResult carries both normalized propagator shapes and the
// verdict of the audit.
type IncompatibilityResult struct {
	// P2 is the momentum grid in GeV^2.
	P2 []float64
	// Spectral and Asymptotic are the two shapes, each normalized to a unit
	// maximum.
	Spectral   []float64
	Asymptotic []float64
	// Discrepancy is the maximum pointwise difference between the
	// normalized shapes over the gapped region.
	Discrepancy float64
	// Incompatible is true when the discrepancy exceeds the threshold.
	Incompatible bool
	// MassGap echoes the audited gap in GeV.
	MassGap float64
}

// VerifyIncompatibility evaluates both shapes over the standard momentum
// grid and measures their maximum normalized discrepancy where the spectral
// representation is non-zero. A gap beyond the scanned grid leaves no
// spectral support at all; that counts as maximal discrepancy.
func (a *Auditor) VerifyIncompatibility(massGap float64) *IncompatibilityResult {
	log.Infof("Running continuum incompatibility audit (mass gap %.2f GeV)", massGap)

	p2 := stats.Logspace(gridStartExp, gridEndExp, gridPoints)
	spectral := a.SpectralRepresentation(p2, massGap)
	asymptotic := a.AsymptoticFreedom(p2, 1.0)

	normalize(spectral)
	normalize(asymptotic)

	discrepancy := 0.0
	anySupport := false
	for i := range p2 {
		if spectral[i] <= 0 {
			continue
		}
		anySupport = true
		if diff := math.Abs(spectral[i] - asymptotic[i]); diff > discrepancy {
			discrepancy = diff
		}
	}
	if !anySupport {
		discrepancy = 1.0
	}

	result := &IncompatibilityResult{
		P2:           p2,
		Spectral:     spectral,
		Asymptotic:   asymptotic,
		Discrepancy:  discrepancy,
		Incompatible: discrepancy > incompatibilityThreshold,
		MassGap:      massGap,
	}

	if result.Incompatible {
		log.Infof("Analytic incompatibility detected, maximum discrepancy %.4f", discrepancy)
		log.Info("A continuum cannot carry both the mass gap and asymptotic freedom")
	} else {
		log.Warnf("Unexpected apparent compatibility, discrepancy %.4f", discrepancy)
	}
	return result
}

// normalize scales xs in place to a unit maximum over its positive entries.
// All-non-positive input is left untouched.
func normalize(xs []float64) {
	max := 0.0
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	if max <= 0 {
		return
	}
	for i := range xs {
		xs[i] /= max
	}
}
