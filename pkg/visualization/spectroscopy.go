package visualization

import (
	"fmt"
	"strconv"

	"glueball/pkg/audit"
	"glueball/pkg/entanglement"
	"glueball/pkg/twolevel"
)

// SimulationTable renders the per-time-step correlator estimates and
// variances of both glueball channels.
func SimulationTable(result *twolevel.SimulationResult) *Table {
	headers := []string{"t", "C(t) 0++", "var 0++", "C(t) 0-+", "var 0-+"}

	data := [][]string{}
	for i, t := range result.TRange {
		data = append(data, []string{
			strconv.Itoa(t),
			fmt.Sprintf("%.6e", result.Correlator0PP[i]),
			fmt.Sprintf("%.6e", result.Variance0PP[i]),
			fmt.Sprintf("%.6e", result.Correlator0MP[i]),
			fmt.Sprintf("%.6e", result.Variance0MP[i]),
		})
	}

	return NewTable(headers, data)
}

// SimulationSummary renders the variance-scaling verdict of a two-level run.
func SimulationSummary(result *twolevel.SimulationResult) *List {
	elements := []string{
		fmt.Sprintf("Observed variance scaling: %.6e", result.VarianceScaling),
		fmt.Sprintf("Expected variance scaling (1/n1^2): %.6e", result.ExpectedScaling),
	}

	if result.Verdict == twolevel.VerdictPass {
		elements = append(elements, "PASS: variance reduction follows the two-level prediction")
	} else {
		elements = append(elements, "WARN: variance reduction underperforms the two-level prediction")
	}

	if result.Degenerate {
		elements = append(elements, "Degenerate statistics: variances reported as NaN")
	}

	return NewList(elements, "  ")
}

// SaturationTable renders the error-reduction factor per frozen-boundary
// distance.
func SaturationTable(result *twolevel.BoundarySaturationResult) *Table {
	headers := []string{"distance", "error reduction"}

	data := [][]string{}
	for i, distance := range result.Distances {
		data = append(data, []string{
			strconv.Itoa(distance),
			fmt.Sprintf("%.4f", result.ErrorReduction[i]),
		})
	}

	return NewTable(headers, data)
}

// SaturationSummary renders the saturation-detection outcome.
func SaturationSummary(result *twolevel.BoundarySaturationResult) *List {
	elements := []string{
		fmt.Sprintf("Frozen boundary thickness: %d", result.FrozenThickness),
	}

	if result.Detected {
		elements = append(elements, fmt.Sprintf("Saturation detected at distance %d", result.SaturationDistance))
	} else {
		elements = append(elements, "Saturation not detected within the scanned range")
	}

	return NewList(elements, "  ")
}

// EntanglementTable renders the simulated entanglement entropy per region
// size.
func EntanglementTable(result *entanglement.StressTestResult) *Table {
	headers := []string{"region size", "entropy S(l)"}

	data := [][]string{}
	for i, size := range result.Sizes {
		data = append(data, []string{
			strconv.Itoa(size),
			fmt.Sprintf("%.4f", result.Entropies[i]),
		})
	}

	return NewTable(headers, data)
}

// EntanglementSummary renders the fitted scaling coefficients and the
// area-law check outcome.
func EntanglementSummary(result *entanglement.StressTestResult) *List {
	elements := []string{
		fmt.Sprintf("Area coefficient (alpha): %.4f", result.Alpha),
		fmt.Sprintf("Logarithmic correction (gamma): %.4f", result.Gamma),
	}

	if result.Success {
		elements = append(elements, "PASS: area law with logarithmic correction confirmed")
	} else {
		elements = append(elements, "WARN: fitted coefficients fall outside the acceptance window")
	}

	return NewList(elements, "  ")
}

// AuditSummary renders the continuum-incompatibility audit outcome.
func AuditSummary(result *audit.IncompatibilityResult) *List {
	elements := []string{
		fmt.Sprintf("Mass gap: %.2f GeV", result.MassGap),
		fmt.Sprintf("Maximum discrepancy: %.4f", result.Discrepancy),
	}

	if result.Incompatible {
		elements = append(elements, "Analytic incompatibility detected: the continuum cannot hold gap and asymptotic freedom")
	} else {
		elements = append(elements, "Unexpected outcome: representations appear compatible")
	}

	return NewList(elements, "  ")
}
