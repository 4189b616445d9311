package twolevel

import "glueball/pkg/conf"

var (
	n1Flag           = conf.NewIntFlag("n1", "Inner sub-measurements per frozen boundary sample.", 100)
	n2Flag           = conf.NewIntFlag("n2", "Number of independent frozen boundary samples.", 20)
	deltaFlag        = conf.NewIntFlag("delta", "Thickness of the frozen boundary shell in lattice units.", 4)
	tActiveStartFlag = conf.NewIntFlag("t_active_start", "First time slice of the active window.", 10)
	tActiveEndFlag   = conf.NewIntFlag("t_active_end", "Time slice one past the end of the active window.", 54)
)

// Config carries the run parameters of the two-level sampler. It is treated
// as immutable after validation.
type Config struct {
	// N1 is the number of inner sub-measurements per boundary sample.
	N1 int
	// N2 is the number of independent boundary samples.
	N2 int
	// Delta is the thickness of the frozen boundary shell in lattice units.
	Delta int
	// TActiveStart and TActiveEnd bound the temporal window treated as
	// active, half-open as [TActiveStart, TActiveEnd).
	TActiveStart int
	TActiveEnd   int
}

// DefaultConfig returns the canonical spectroscopy run parameters.
func DefaultConfig() Config {
	return Config{
		N1:           100,
		N2:           20,
		Delta:        4,
		TActiveStart: 10,
		TActiveEnd:   54,
	}
}

// ConfigFromFlags applies the sampler settings from command line flags and
// environment variables.
func ConfigFromFlags() Config {
	return Config{
		N1:           n1Flag.Value(),
		N2:           n2Flag.Value(),
		Delta:        deltaFlag.Value(),
		TActiveStart: tActiveStartFlag.Value(),
		TActiveEnd:   tActiveEndFlag.Value(),
	}
}

// ActiveWindow returns the length of the active temporal window.
func (c Config) ActiveWindow() int {
	return c.TActiveEnd - c.TActiveStart
}

// Validate enforces the frozen-boundary invariant: the active window must be
// strictly larger than twice the frozen thickness. Any other parameter
// combination is accepted; degenerate sample counts yield flagged NaN
// statistics rather than an error.
func (c Config) Validate() error {
	if c.ActiveWindow() <= 2*c.Delta {
		return &ConfigurationError{ActiveWindow: c.ActiveWindow(), Delta: c.Delta}
	}
	return nil
}
