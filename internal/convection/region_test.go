package convection_test

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/auxi/internal/convection"
)

func weightSum(c convection.Classification) float64 {
	s := 0.0
	for _, ct := range c.Contributions {
		s += ct.Weight
	}
	return s
}

func weightOf(c convection.Classification, name string) float64 {
	for _, ct := range c.Contributions {
		if ct.Region.Name == name {
			return ct.Weight
		}
	}
	return 0
}

var _ = Describe("Table", func() {
	var table convection.Table

	BeforeEach(func() {
		table = convection.DefaultTable()
	})

	It("is valid", func() {
		Expect(table.Validate()).To(Succeed())
		Expect(table.Names()).To(ConsistOf(
			"vertical-laminar", "vertical-turbulent", "upper-laminar", "upper-turbulent", "lower-stable"))
	})

	It("rejects duplicate and malformed regions", func() {
		dup := append(table, table[0])
		Expect(dup.Validate()).To(MatchError(ContainSubstring("duplicate")))

		bad := convection.DefaultTable()
		bad[1].RaMax = bad[1].RaMin
		Expect(bad.Validate()).To(MatchError(ContainSubstring("Ra bounds")))

		Expect(convection.Table{}.Validate()).NotTo(Succeed())
	})

	It("classifies every point of the plane", func() {
		for _, ra := range []float64{0, 1, 1e2, 1e4, 1e6, 3e8, 1e9, 1e11, 1e13, 1e15} {
			for theta := -90.0; theta <= 90; theta += 7.5 {
				c := table.Classify(ra, theta)
				Expect(c.Contributions).NotTo(BeEmpty(), "Ra=%g θ=%g", ra, theta)
				Expect(weightSum(c)).To(BeNumerically("~", 1, 1e-12))
				for _, ct := range c.Contributions {
					Expect(ct.Weight).To(BeNumerically(">", 0))
				}
			}
		}
	})

	DescribeTable("status",
		func(ra, theta float64, status convection.Status, dominant string) {
			c := table.Classify(ra, theta)
			Expect(c.Status).To(Equal(status))
			Expect(c.Dominant().Name).To(Equal(dominant))
		},
		Entry("vertical laminar", 1e6, 0.0, convection.Proven, "vertical-laminar"),
		Entry("vertical turbulent", 1e11, 0.0, convection.Proven, "vertical-turbulent"),
		Entry("laminar/turbulent overlap", 5e8, 0.0, convection.Blended, "vertical-laminar"),
		Entry("hot roof", 1e9, 85.0, convection.Proven, "upper-turbulent"),
		Entry("stable underside", 1e6, -80.0, convection.Proven, "lower-stable"),
		Entry("small buoyant horizontal plate", 100.0, 80.0, convection.Extrapolated, "vertical-laminar"),
		Entry("beyond all Ra ranges", 1e14, 0.0, convection.Extrapolated, "vertical-turbulent"),
	)

	It("interpolates linearly in log10 Ra across a one-decade overlap", func() {
		c := table.Classify(math.Pow(10, 9.0), 0)
		Expect(c.Status).To(Equal(convection.Blended))
		// log10(3e9) - 9 = 0.477; 9 - log10(3e8) = 0.523.
		weights := map[string]float64{}
		for _, ct := range c.Contributions {
			weights[ct.Region.Name] = ct.Weight
		}
		const m = convection.FaceMargin
		Expect(weights["vertical-laminar"]).To(BeNumerically("~", (math.Log10(3e9)-9+m)/(1+2*m), 1e-12))
		Expect(weights["vertical-turbulent"]).To(BeNumerically("~", (9-math.Log10(3e8)+m)/(1+2*m), 1e-12))

		// Equal steps in log10 Ra move the weights by equal amounts.
		a := weightOf(table.Classify(math.Pow(10, 8.8), 0), "vertical-laminar")
		b := weightOf(table.Classify(math.Pow(10, 8.9), 0), "vertical-laminar")
		Expect(a - b).To(BeNumerically("~", b-weights["vertical-laminar"], 1e-12))
	})

	It("lets regions fade out across gaps", func() {
		// At -61° and Ra 3e9 no region applies and both vertical regions
		// are equally far away.
		c := table.Classify(3e9, -61)
		Expect(c.Status).To(Equal(convection.Extrapolated))
		Expect(c.Distance).To(BeNumerically("~", 1.0/convection.ThetaScale, 1e-12))
		Expect(weightOf(c, "vertical-laminar")).To(BeNumerically(">", 0.49))
		Expect(weightOf(c, "vertical-laminar")).To(Equal(weightOf(c, "vertical-turbulent")))
	})

	It("rejects points that cannot be placed", func() {
		for _, p := range [][2]float64{{-1, 0}, {math.NaN(), 0}, {math.Inf(1), 0}, {1e6, math.NaN()}} {
			c := table.Classify(p[0], p[1])
			Expect(c.Status).To(Equal(convection.Extrapolated))
			Expect(c.Contributions).To(BeEmpty())
			Expect(math.IsInf(c.Distance, 1)).To(BeTrue())
			Expect(c.Nusselt(convection.Average, 0.71)).To(BeZero())
		}
	})

	It("measures distance to the nearest region without NaN at Ra = 0", func() {
		c := table.Classify(0, 80)
		Expect(c.Status).To(Equal(convection.Extrapolated))
		Expect(c.Dominant().Name).To(Equal("vertical-laminar"))
		Expect(c.Distance).To(BeNumerically("~", 20.0/convection.ThetaScale, 1e-12))
	})

	DescribeTable("stays continuous across documented boundaries",
		func(kind convection.Kind, raBelow, raAbove, thetaBelow, thetaAbove float64) {
			const pr = 0.71
			lo := table.Classify(raBelow, thetaBelow).Nusselt(kind, pr)
			hi := table.Classify(raAbove, thetaAbove).Nusselt(kind, pr)
			Expect(lo).To(BeNumerically(">", 0))
			Expect(math.Abs(hi-lo) / lo).To(BeNumerically("<", 0.01))
		},
		Entry("turbulent lower bound, average", convection.Average, 3e8*(1-1e-9), 3e8*(1+1e-9), 0.0, 0.0),
		Entry("turbulent lower bound, local", convection.Local, 3e8*(1-1e-9), 3e8*(1+1e-9), 0.0, 0.0),
		Entry("laminar upper bound, average", convection.Average, 3e9*(1-1e-9), 3e9*(1+1e-9), 10.0, 10.0),
		Entry("laminar upper bound, local", convection.Local, 3e9*(1-1e-9), 3e9*(1+1e-9), 10.0, 10.0),
		Entry("upward tilt 45°", convection.Average, 1e7, 1e7, 45-1e-7, 45+1e-7),
		Entry("upward tilt 60°", convection.Average, 1e7, 1e7, 60-1e-7, 60+1e-7),
		Entry("upward tilt 60°, local", convection.Local, 1e9, 1e9, 60-1e-7, 60+1e-7),
		Entry("downward tilt -45°", convection.Average, 1e6, 1e6, -45-1e-7, -45+1e-7),
		Entry("downward tilt -60°", convection.Average, 1e6, 1e6, -60-1e-7, -60+1e-7),
		Entry("upper laminar ceiling", convection.Average, 2e7*(1-1e-9), 2e7*(1+1e-9), 75.0, 75.0),
		Entry("60° corner at Ra 1e4, average", convection.Average, 1e4*(1-1e-9), 1e4*(1+1e-9), 60.0, 60.0),
		Entry("60° corner at Ra 1e4, local", convection.Local, 1e4*(1-1e-9), 1e4*(1+1e-9), 60.0, 60.0),
		Entry("60° corner at Ra 1e11, average", convection.Average, 1e11*(1-1e-9), 1e11*(1+1e-9), 60.0, 60.0),
		Entry("60° corner at Ra 1e11, local", convection.Local, 1e11*(1-1e-9), 1e11*(1+1e-9), 60.0, 60.0),
		Entry("-60° corner at Ra 1e9, average", convection.Average, 1e9*(1-1e-9), 1e9*(1+1e-9), -60.0, -60.0),
		Entry("-60° corner at Ra 1e9, local", convection.Local, 1e9*(1-1e-9), 1e9*(1+1e-9), -60.0, -60.0),
	)

	It("has no jump across any face of any region", func() {
		const pr = 0.71
		var raFaces, thetaFaces []float64
		for _, r := range table {
			for _, ra := range []float64{r.RaMin, r.RaMax} {
				if ra > 0 && !math.IsInf(ra, 1) {
					raFaces = append(raFaces, ra)
				}
			}
			for _, th := range []float64{r.ThetaMin, r.ThetaMax} {
				if th > -convection.MaxTheta && th < convection.MaxTheta {
					thetaFaces = append(thetaFaces, th)
				}
			}
		}
		thetas := append([]float64(nil), thetaFaces...)
		for th := -89.0; th <= 89; th += 4 {
			thetas = append(thetas, th)
		}
		ras := append([]float64(nil), raFaces...)
		for e := 0.25; e <= 14; e += 0.5 {
			ras = append(ras, math.Pow(10, e))
		}

		expectClose := func(lo, hi convection.Classification, what string) {
			for _, kind := range []convection.Kind{convection.Local, convection.Average} {
				a, b := lo.Nusselt(kind, pr), hi.Nusselt(kind, pr)
				Expect(math.Abs(b-a)).To(BeNumerically("<=", 0.01*math.Max(math.Abs(a), math.Abs(b))),
					"%s %v: %g vs %g", what, kind, a, b)
			}
		}
		for _, f := range raFaces {
			for _, th := range thetas {
				expectClose(table.Classify(f*(1-1e-9), th), table.Classify(f*(1+1e-9), th),
					fmt.Sprintf("Ra face %g at θ=%g", f, th))
			}
		}
		for _, f := range thetaFaces {
			for _, ra := range ras {
				expectClose(table.Classify(ra, f-1e-7), table.Classify(ra, f+1e-7),
					fmt.Sprintf("θ face %g at Ra=%g", f, ra))
			}
		}
	})
})

var _ = Describe("Region", func() {
	It("keeps a margin of weight on interior faces only", func() {
		r, ok := convection.DefaultTable().Lookup("upper-laminar")
		Expect(ok).To(BeTrue())
		Expect(r.Depth(1e4, 70)).To(BeZero())
		Expect(r.Weight(1e4, 70)).To(BeNumerically("~", convection.FaceMargin, 1e-12))
		Expect(r.Weight(1e6, 45)).To(BeNumerically("~", convection.FaceMargin, 1e-12))
		// 90° is the physical limit, not a face.
		Expect(r.Weight(1e6, 90)).To(BeNumerically("~", 1, 1e-12))
	})

	It("fades out just beyond its faces", func() {
		r, _ := convection.DefaultTable().Lookup("upper-laminar")
		half := math.Pow(10, 4-convection.FaceMargin/2)
		Expect(r.Depth(half, 70)).To(BeNumerically("~", -convection.FaceMargin/2, 1e-12))
		Expect(r.Weight(half, 70)).To(BeNumerically("~", convection.FaceMargin*math.Exp(-0.5), 1e-12))
		Expect(r.Depth(1e3, 70)).To(BeNumerically("~", -1, 1e-12))
		Expect(r.Weight(1e3, 70)).To(BeNumerically("<", 1e-9))
		Expect(r.Weight(1e3, 70)).To(BeNumerically(">", 0))
	})

	It("prints its bounds", func() {
		r, _ := convection.DefaultTable().Lookup("vertical-turbulent")
		Expect(r.String()).To(ContainSubstring("3e+08"))
		Expect(r.String()).To(ContainSubstring("-60°"))
	})
})
