package entanglement

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"glueball/pkg/lattice"
	"glueball/pkg/stats"
)

func TestRunStressTest(t *testing.T) {
	Convey("When running the entropy stress test up to l = 15", t, func() {
		analyzer := NewAnalyzer(lattice.DefaultConfig(), rand.New(rand.NewSource(42)))

		result, err := analyzer.RunStressTest(15)
		So(err, ShouldBeNil)

		Convey("Every region size from 2 to 15 is probed", func() {
			So(result.Sizes, ShouldHaveLength, 14)
			So(result.Sizes[0], ShouldEqual, 2)
			So(result.Sizes[13], ShouldEqual, 15)
			So(result.Entropies, ShouldHaveLength, 14)
		})

		Convey("Entropies stay physical and grow with the region area", func() {
			for _, s := range result.Entropies {
				So(s, ShouldBeGreaterThanOrEqualTo, 0)
			}
			So(result.Entropies[13], ShouldBeGreaterThan, result.Entropies[0])
		})

		Convey("The area coefficient is recovered tightly", func() {
			// The l^2 regressor towers over the noise, so alpha comes back
			// within a fraction of a percent.
			So(result.Alpha, ShouldAlmostEqual, 0.45, 0.02)
		})

		Convey("The logarithmic correction is recovered loosely", func() {
			// ln(l) is nearly collinear with the other regressors over
			// 2..15, which inflates the gamma uncertainty considerably.
			So(result.Gamma, ShouldAlmostEqual, 0.15, 0.4)
		})
	})

	Convey("The stress test is reproducible under a fixed seed", t, func() {
		first := NewAnalyzer(lattice.DefaultConfig(), rand.New(rand.NewSource(7)))
		second := NewAnalyzer(lattice.DefaultConfig(), rand.New(rand.NewSource(7)))

		a, err := first.RunStressTest(12)
		So(err, ShouldBeNil)
		b, err := second.RunStressTest(12)
		So(err, ShouldBeNil)

		So(a.Entropies, ShouldResemble, b.Entropies)
		So(a.Alpha, ShouldEqual, b.Alpha)
		So(a.Gamma, ShouldEqual, b.Gamma)
		So(a.Success, ShouldEqual, b.Success)
	})

	Convey("A nil random source falls back to a deterministic default", t, func() {
		first, err := NewAnalyzer(lattice.DefaultConfig(), nil).RunStressTest(10)
		So(err, ShouldBeNil)
		second, err := NewAnalyzer(lattice.DefaultConfig(), nil).RunStressTest(10)
		So(err, ShouldBeNil)

		So(first.Entropies, ShouldResemble, second.Entropies)
	})

	Convey("Too few region sizes fail the three-parameter fit", t, func() {
		analyzer := NewAnalyzer(lattice.DefaultConfig(), rand.New(rand.NewSource(42)))

		result, err := analyzer.RunStressTest(3)

		So(result, ShouldBeNil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "entropy scaling fit failed")
	})
}

func TestFitBasisMatchesModel(t *testing.T) {
	Convey("A noiseless entropy curve reproduces the model constants exactly", t, func() {
		// Feed the analyzer's own fit basis with the pure model values.
		var squared, logged, ones, entropies []float64
		for l := 2; l <= 15; l++ {
			size := float64(l)
			squared = append(squared, size*size)
			logged = append(logged, math.Log(size))
			ones = append(ones, 1)
			entropies = append(entropies, areaCoefficient*size*size-logCoefficient*math.Log(size)+constantEntropy)
		}

		coeffs, err := stats.FitLinear([][]float64{squared, logged, ones}, entropies)
		So(err, ShouldBeNil)
		So(coeffs[0], ShouldAlmostEqual, areaCoefficient, 1e-9)
		So(-coeffs[1], ShouldAlmostEqual, logCoefficient, 1e-9)
		So(coeffs[2], ShouldAlmostEqual, constantEntropy, 1e-9)
	})
}
