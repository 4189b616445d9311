// Package lattice describes the simulated spacetime grid and the stochastic
// gauge-field configurations drawn over it.
//
// The field model is deliberately simplified: instead of SU(3) link
// variables, a configuration is an i.i.d. Gaussian volume whose fluctuation
// scale is set by the coupling (sigma = 1/sqrt(Beta)). That is sufficient
// for the two-level sampler, whose correlator estimates exercise the
// statistical machinery rather than a genuine gauge observable.
package lattice

import "glueball/pkg/conf"

var (
	spatialExtentFlag = conf.NewIntFlag("lattice_size", "Spatial extent L of the lattice in lattice units.", 32)
	timeExtentFlag    = conf.NewIntFlag("time_extent", "Temporal extent T of the lattice in lattice units.", 64)
	betaFlag          = conf.NewFloatFlag("beta", "Coupling parameter beta (1/g^2); sets the field fluctuation scale 1/sqrt(beta).", 6.0)
	spacingFlag       = conf.NewFloatFlag("lattice_spacing", "Lattice spacing a in fm. Descriptive only.", 0.1)
)

// Config is the immutable description of the lattice geometry. Only Beta
// feeds the field generator; L, T and A are descriptive.
type Config struct {
	// L is the spatial extent in lattice units.
	L int
	// T is the temporal extent in lattice units.
	T int
	// Beta is the coupling parameter (1/g^2).
	Beta float64
	// A is the lattice spacing in fm.
	A float64
}

// DefaultConfig returns the canonical pure-gauge setup used by the
// spectroscopy experiment.
func DefaultConfig() Config {
	return Config{
		L:    32,
		T:    64,
		Beta: 6.0,
		A:    0.1,
	}
}

// ConfigFromFlags applies the lattice settings from command line flags and
// environment variables.
func ConfigFromFlags() Config {
	return Config{
		L:    spatialExtentFlag.Value(),
		T:    timeExtentFlag.Value(),
		Beta: betaFlag.Value(),
		A:    spacingFlag.Value(),
	}
}

// SiteCount returns the number of lattice sites, T*L^3.
func (c Config) SiteCount() int {
	return c.T * c.L * c.L * c.L
}
