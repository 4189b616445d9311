package audit

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSpectralRepresentation(t *testing.T) {
	Convey("The gapped propagator vanishes below the mass gap", t, func() {
		auditor := NewAuditor(0.2)
		p2 := []float64{0.5, 2.0, 2.89, 3.0, 10.0}

		spectral := auditor.SpectralRepresentation(p2, 1.7)

		So(spectral[0], ShouldEqual, 0)
		So(spectral[1], ShouldEqual, 0)
		So(spectral[2], ShouldEqual, 0)
		So(spectral[3], ShouldAlmostEqual, 1.0/(3.0+2.89), 1e-12)
		So(spectral[4], ShouldAlmostEqual, 1.0/(10.0+2.89), 1e-12)
	})
}

func TestAsymptoticFreedom(t *testing.T) {
	Convey("The one-loop form divides by the running logarithm", t, func() {
		auditor := NewAuditor(0.2)

		values := auditor.AsymptoticFreedom([]float64{1.0, 100.0}, 1.0)

		So(values[0], ShouldAlmostEqual, 1.0/math.Log(25.0), 1e-12)
		So(values[1], ShouldAlmostEqual, 100.0/math.Log(2500.0), 1e-12)
	})

	Convey("Momenta at or below the QCD scale hit the logarithm guard", t, func() {
		auditor := NewAuditor(0.2)

		values := auditor.AsymptoticFreedom([]float64{0.01}, 1.0)

		// ln(0.01/0.04) < 0, so the guard takes over and the value blows up.
		So(values[0], ShouldAlmostEqual, 0.01/1e-10, 1)
	})
}

func TestVerifyIncompatibility(t *testing.T) {
	Convey("When auditing the canonical 1.7 GeV mass gap", t, func() {
		auditor := NewAuditor(0.2)

		result := auditor.VerifyIncompatibility(1.7)

		Convey("The momentum grid spans 0.1 to 1000 GeV^2", func() {
			So(result.P2, ShouldHaveLength, 500)
			So(result.P2[0], ShouldAlmostEqual, 0.1, 1e-9)
			So(result.P2[499], ShouldAlmostEqual, 1000.0, 1e-6)
		})

		Convey("Both shapes are normalized to a unit maximum", func() {
			maxSpectral, maxAsymptotic := 0.0, 0.0
			for i := range result.P2 {
				maxSpectral = math.Max(maxSpectral, result.Spectral[i])
				maxAsymptotic = math.Max(maxAsymptotic, result.Asymptotic[i])
			}
			So(maxSpectral, ShouldAlmostEqual, 1.0, 1e-12)
			So(maxAsymptotic, ShouldAlmostEqual, 1.0, 1e-12)
		})

		Convey("The spectral shape has no support below the gap", func() {
			gapSquared := 1.7 * 1.7
			for i, p := range result.P2 {
				if p <= gapSquared {
					So(result.Spectral[i], ShouldEqual, 0)
				}
			}
		})

		Convey("The shapes disagree almost maximally", func() {
			So(result.Discrepancy, ShouldBeGreaterThan, 0.98)
			So(result.Discrepancy, ShouldBeLessThan, 1.0)
			So(result.Incompatible, ShouldBeTrue)
			So(result.MassGap, ShouldEqual, 1.7)
		})
	})

	Convey("A gap beyond the scanned grid counts as maximal discrepancy", t, func() {
		auditor := NewAuditor(0.2)

		result := auditor.VerifyIncompatibility(100)

		for _, s := range result.Spectral {
			So(s, ShouldEqual, 0)
		}
		So(result.Discrepancy, ShouldEqual, 1.0)
		So(result.Incompatible, ShouldBeTrue)
	})

	Convey("The audit is deterministic", t, func() {
		auditor := NewAuditor(0.2)

		first := auditor.VerifyIncompatibility(1.7)
		second := auditor.VerifyIncompatibility(1.7)

		So(first, ShouldResemble, second)
	})
}
