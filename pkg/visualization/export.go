package visualization

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"glueball/pkg/audit"
	"glueball/pkg/entanglement"
	"glueball/pkg/twolevel"
)

// File names of the JSON documents consumed by the plot frontend.
const (
	TwoLevelFileName     = "two_level.json"
	SaturationFileName   = "saturation.json"
	EntanglementFileName = "entanglement.json"
	AuditFileName        = "continuum_audit.json"
)

// Float is a float64 which marshals NaN and infinities as JSON null.
// Degenerate runs report NaN variances and encoding/json refuses to encode
// those, so the export layer owns the translation.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	value := float64(f)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(value)
}

func floats(values []float64) []Float {
	out := make([]Float, len(values))
	for i, value := range values {
		out[i] = Float(value)
	}
	return out
}

// TwoLevelExport is the variance-scaling document.
type TwoLevelExport struct {
	TRange          []int   `json:"t_range"`
	Correlator0PP   []Float `json:"correlator_0pp"`
	Correlator0MP   []Float `json:"correlator_0mp"`
	Variance0PP     []Float `json:"variance_0pp"`
	Variance0MP     []Float `json:"variance_0mp"`
	VarianceScaling Float   `json:"variance_scaling"`
	ExpectedScaling Float   `json:"expected_scaling"`
}

// NewTwoLevelExport converts a simulation result into its export document.
func NewTwoLevelExport(result *twolevel.SimulationResult) *TwoLevelExport {
	return &TwoLevelExport{
		TRange:          result.TRange,
		Correlator0PP:   floats(result.Correlator0PP),
		Correlator0MP:   floats(result.Correlator0MP),
		Variance0PP:     floats(result.Variance0PP),
		Variance0MP:     floats(result.Variance0MP),
		VarianceScaling: Float(result.VarianceScaling),
		ExpectedScaling: Float(result.ExpectedScaling),
	}
}

// SaturationExport is the boundary-saturation document. SaturationDistance
// is null when no saturation was detected within the scanned range.
type SaturationExport struct {
	Distances          []int   `json:"distances"`
	ErrorReduction     []Float `json:"error_reduction"`
	SaturationDistance *int    `json:"saturation_distance"`
	FrozenThickness    int     `json:"frozen_thickness"`
}

// NewSaturationExport converts a saturation analysis into its export document.
func NewSaturationExport(result *twolevel.BoundarySaturationResult) *SaturationExport {
	export := &SaturationExport{
		Distances:       result.Distances,
		ErrorReduction:  floats(result.ErrorReduction),
		FrozenThickness: result.FrozenThickness,
	}
	if result.Detected {
		distance := result.SaturationDistance
		export.SaturationDistance = &distance
	}
	return export
}

// EntanglementExport is the entropy stress-test document.
type EntanglementExport struct {
	Sizes     []int   `json:"sizes"`
	Entropies []Float `json:"entropies"`
	Alpha     Float   `json:"alpha"`
	Gamma     Float   `json:"gamma"`
	Success   bool    `json:"success"`
}

// NewEntanglementExport converts a stress-test result into its export document.
func NewEntanglementExport(result *entanglement.StressTestResult) *EntanglementExport {
	return &EntanglementExport{
		Sizes:     result.Sizes,
		Entropies: floats(result.Entropies),
		Alpha:     Float(result.Alpha),
		Gamma:     Float(result.Gamma),
		Success:   result.Success,
	}
}

// AuditExport is the continuum-audit document.
type AuditExport struct {
	P2             []Float `json:"p2"`
	Spectral       []Float `json:"spectral"`
	Asymptotic     []Float `json:"asymptotic"`
	Discrepancy    Float   `json:"discrepancy"`
	IsIncompatible bool    `json:"is_incompatible"`
	MassGap        Float   `json:"mass_gap"`
}

// NewAuditExport converts an incompatibility result into its export document.
func NewAuditExport(result *audit.IncompatibilityResult) *AuditExport {
	return &AuditExport{
		P2:             floats(result.P2),
		Spectral:       floats(result.Spectral),
		Asymptotic:     floats(result.Asymptotic),
		Discrepancy:    Float(result.Discrepancy),
		IsIncompatible: result.Incompatible,
		MassGap:        Float(result.MassGap),
	}
}

// WriteJSON serializes the document with indentation and writes it to path.
func WriteJSON(path string, document interface{}) error {
	bytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "cannot serialize visualization document %q", path)
	}

	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return errors.Wrapf(err, "cannot write visualization document %q", path)
	}

	return nil
}
