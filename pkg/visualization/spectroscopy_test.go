package visualization

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"glueball/pkg/audit"
	"glueball/pkg/entanglement"
	"glueball/pkg/twolevel"
)

func TestSimulationRendering(t *testing.T) {
	Convey("Given a two-level simulation result", t, func() {
		result := &twolevel.SimulationResult{
			TRange:          []int{10, 11, 12},
			Correlator0PP:   []float64{0.9, 0.8, 0.7},
			Correlator0MP:   []float64{0.6, 0.5, 0.4},
			Variance0PP:     []float64{1e-5, 2e-5, 3e-5},
			Variance0MP:     []float64{4e-5, 5e-5, 6e-5},
			VarianceScaling: 5e-5,
			ExpectedScaling: 1e-4,
			Verdict:         twolevel.VerdictPass,
		}

		Convey("The table holds one row per time step", func() {
			table := SimulationTable(result)
			So(table.headers, ShouldHaveLength, 5)
			So(table.data, ShouldHaveLength, 3)
			So(table.data[0][0], ShouldEqual, "10")
			So(table.data[2][0], ShouldEqual, "12")
			So(table.data[0][1], ShouldEqual, "9.000000e-01")
		})

		Convey("A passing run summarizes as PASS", func() {
			summary := SimulationSummary(result)
			So(summary.elements, ShouldHaveLength, 3)
			So(summary.elements[2], ShouldContainSubstring, "PASS")
		})

		Convey("A degenerate warning run lists the extra caveat", func() {
			result.Verdict = twolevel.VerdictWarn
			result.Degenerate = true
			result.VarianceScaling = math.NaN()

			summary := SimulationSummary(result)
			So(summary.elements, ShouldHaveLength, 4)
			So(summary.elements[2], ShouldContainSubstring, "WARN")
			So(summary.elements[3], ShouldContainSubstring, "Degenerate")
		})

		Convey("Drawing the table succeeds", func() {
			So(DrawTable(SimulationTable(result)), ShouldBeNil)
		})
	})
}

func TestSaturationRendering(t *testing.T) {
	Convey("Given a boundary saturation analysis", t, func() {
		result := &twolevel.BoundarySaturationResult{
			Distances:          []int{1, 2, 3, 4},
			ErrorReduction:     []float64{0.8, 0.7, 0.65, 0.65},
			SaturationDistance: 4,
			Detected:           true,
			FrozenThickness:    2,
		}

		Convey("The table holds one row per distance", func() {
			table := SaturationTable(result)
			So(table.data, ShouldHaveLength, 4)
			So(table.data[3], ShouldResemble, []string{"4", "0.6500"})
		})

		Convey("A detected saturation names the distance", func() {
			summary := SaturationSummary(result)
			So(summary.elements[1], ShouldContainSubstring, "detected at distance 4")
		})

		Convey("An undetected saturation says so", func() {
			result.Detected = false
			summary := SaturationSummary(result)
			So(summary.elements[1], ShouldContainSubstring, "not detected")
		})
	})
}

func TestEntanglementRendering(t *testing.T) {
	Convey("Given an entanglement stress test result", t, func() {
		result := &entanglement.StressTestResult{
			Sizes:     []int{2, 3, 4},
			Entropies: []float64{1.7, 3.9, 7.1},
			Alpha:     0.45,
			Gamma:     0.15,
			Success:   true,
		}

		Convey("The table holds one row per region size", func() {
			table := EntanglementTable(result)
			So(table.data, ShouldHaveLength, 3)
			So(table.data[0], ShouldResemble, []string{"2", "1.7000"})
		})

		Convey("A successful fit summarizes as PASS", func() {
			summary := EntanglementSummary(result)
			So(summary.elements[0], ShouldContainSubstring, "0.4500")
			So(summary.elements[2], ShouldContainSubstring, "PASS")
		})

		Convey("A failed fit summarizes as WARN", func() {
			result.Success = false
			summary := EntanglementSummary(result)
			So(summary.elements[2], ShouldContainSubstring, "WARN")
		})
	})
}

func TestAuditRendering(t *testing.T) {
	Convey("Given a continuum audit result", t, func() {
		result := &audit.IncompatibilityResult{
			Discrepancy:  0.9942,
			Incompatible: true,
			MassGap:      1.7,
		}

		Convey("An incompatible outcome is named", func() {
			summary := AuditSummary(result)
			So(summary.elements[0], ShouldContainSubstring, "1.70 GeV")
			So(summary.elements[1], ShouldContainSubstring, "0.9942")
			So(summary.elements[2], ShouldContainSubstring, "incompatibility detected")
		})

		Convey("A compatible outcome is flagged as unexpected", func() {
			result.Incompatible = false
			summary := AuditSummary(result)
			So(summary.elements[2], ShouldContainSubstring, "Unexpected")
		})
	})
}
