package convection_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/fluid"
	"github.com/san-kum/auxi/internal/thermo"
)

var _ = Describe("Engine", func() {
	var air *fluid.Air

	BeforeEach(func() {
		var err error
		air, err = fluid.NewAir(thermo.StandardPressure)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("rejects a nil fluid", func() {
			_, err := convection.New(nil)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown forced region", func() {
			_, err := convection.New(air, convection.WithForcedRegion("chimney"))
			Expect(errors.Is(err, convection.ErrUnknownRegion)).To(BeTrue())
		})

		It("rejects an invalid custom table", func() {
			_, err := convection.New(air, convection.WithRegions(convection.Table{}))
			Expect(err).To(HaveOccurred())
		})

		It("defaults to extrapolation and classification", func() {
			eng, err := convection.New(air)
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.AllowsExtrapolation()).To(BeTrue())
			Expect(eng.ForcedRegion()).To(BeEmpty())
			Expect(eng.Regions()).To(HaveLen(5))
		})
	})

	Describe("a 0.4 m vertical wall at 313 K in air at 283 K", func() {
		var eng *convection.Engine

		BeforeEach(func() {
			var err error
			eng, err = convection.New(air)
			Expect(err).NotTo(HaveOccurred())
		})

		It("is in the laminar vertical regime", func() {
			ra, pr, err := eng.Dimensionless(0.4, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			Expect(ra).To(BeNumerically("~", 2.35e8, 0.3e8))
			Expect(pr).To(BeNumerically("~", 0.71, 0.02))

			r, err := eng.Evaluate(convection.Average, 0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Classification.Status).To(Equal(convection.Proven))
			Expect(r.Region()).To(Equal("vertical-laminar"))
			Expect(r.Extrapolated()).To(BeFalse())
			Expect(r.Gr * r.Pr).To(BeNumerically("~", r.Ra, 1e-6*r.Ra))
			Expect(thermo.Nusselt(r.H, 0.4, r.Properties.K)).To(BeNumerically("~", r.Nu, 1e-9))
		})

		It("gives finite positive numbers with Nu_L above Nu_x", func() {
			nuX, err := eng.NusseltLocal(0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			nuL, err := eng.NusseltAverage(0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			hX, err := eng.CoefficientLocal(0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			hL, err := eng.CoefficientAverage(0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())

			for _, v := range []float64{nuX, nuL, hX, hL} {
				Expect(math.IsInf(v, 0) || math.IsNaN(v)).To(BeFalse())
				Expect(v).To(BeNumerically(">", 0))
			}
			Expect(nuL).To(BeNumerically(">", nuX))
			Expect(hL).To(BeNumerically(">", hX))
			Expect(nuL).To(BeNumerically("~", 64, 4))
			Expect(hL).To(BeNumerically("~", 4, 0.5))

			// Without the conduction offset the ratio is 4/3, up to the small
			// share the turbulent correlation keeps a tenth of a decade away.
			Expect((nuL - 0.68) / nuX).To(BeNumerically("~", 0.670/0.503, 0.02))

			laminar, err := convection.New(air, convection.WithForcedRegion("vertical-laminar"))
			Expect(err).NotTo(HaveOccurred())
			nuX, err = laminar.NusseltLocal(0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			nuL, err = laminar.NusseltAverage(0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			Expect((nuL - 0.68) / nuX).To(BeNumerically("~", 0.670/0.503, 1e-9))
		})

		It("reports the heat flowing into the fluid", func() {
			q, err := eng.HeatRate(0.4, 0, 313, 283, 2)
			Expect(err).NotTo(HaveOccurred())
			hL, _ := eng.CoefficientAverage(0.4, 0, 313, 283)
			Expect(q).To(BeNumerically("~", hL*2*30, 1e-9))

			q, err = eng.HeatRate(0.4, 0, 283, 313, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(q).To(BeNumerically("<", 0))

			_, err = eng.HeatRate(0.4, 0, 313, 283, 0)
			Expect(errors.Is(err, thermo.ErrDomain)).To(BeTrue())
		})

		It("uses film temperature properties when asked", func() {
			film, err := convection.New(air, convection.WithFilmTemperature())
			Expect(err).NotTo(HaveOccurred())
			r, err := film.Evaluate(convection.Average, 0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Properties.T).To(BeNumerically("~", 298, 1e-12))
		})
	})

	Describe("inputs", func() {
		DescribeTable("non-physical values fail with a domain error",
			func(length, theta, ts, tf float64) {
				eng, err := convection.New(air)
				Expect(err).NotTo(HaveOccurred())
				_, err = eng.NusseltAverage(length, theta, ts, tf)
				var de *thermo.DomainError
				Expect(errors.As(err, &de)).To(BeTrue())
				Expect(errors.Is(err, thermo.ErrDomain)).To(BeTrue())
			},
			Entry("zero length", 0.0, 0.0, 313.0, 283.0),
			Entry("negative length", -1.0, 0.0, 313.0, 283.0),
			Entry("angle beyond horizontal", 0.4, 91.0, 313.0, 283.0),
			Entry("NaN angle", 0.4, math.NaN(), 313.0, 283.0),
			Entry("zero surface temperature", 0.4, 0.0, 0.0, 283.0),
			Entry("negative fluid temperature", 0.4, 0.0, 313.0, -1.0),
			Entry("NaN length", math.NaN(), 0.0, 313.0, 283.0),
		)

		It("wraps fluid table range errors", func() {
			eng, err := convection.New(air)
			Expect(err).NotTo(HaveOccurred())
			_, err = eng.NusseltAverage(0.4, 0, 313, 50)
			Expect(errors.Is(err, fluid.ErrTemperatureRange)).To(BeTrue())
		})
	})

	Describe("effective angle", func() {
		It("flips the inclination for a cooled surface", func() {
			Expect(convection.EffectiveAngle(80, 313, 283)).To(Equal(80.0))
			Expect(convection.EffectiveAngle(80, 283, 313)).To(Equal(-80.0))
			Expect(convection.EffectiveAngle(80, 300, 300)).To(Equal(80.0))
		})

		It("selects the stable correlation for a cooled upward-facing plate", func() {
			eng, err := convection.New(air)
			Expect(err).NotTo(HaveOccurred())
			r, err := eng.Evaluate(convection.Average, 0.4, 80, 283, 313)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Theta).To(Equal(-80.0))
			Expect(r.Region()).To(Equal("lower-stable"))
		})
	})

	Describe("gaps", func() {
		// Ra is about 100 for a 3 mm plate at 30 K difference.
		const length = 0.003

		It("extrapolates by default and flags the result", func() {
			eng, err := convection.New(air)
			Expect(err).NotTo(HaveOccurred())
			r, err := eng.Evaluate(convection.Average, length, 80, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Ra).To(BeNumerically("<", 1e4))
			Expect(r.Extrapolated()).To(BeTrue())
			Expect(r.Nu).To(BeNumerically(">", 0))
		})

		It("fails when extrapolation is disabled", func() {
			eng, err := convection.New(air, convection.WithExtrapolation(false))
			Expect(err).NotTo(HaveOccurred())
			_, err = eng.NusseltAverage(length, 80, 313, 283)
			Expect(errors.Is(err, thermo.ErrOutOfRange)).To(BeTrue())

			var oor *convection.OutOfRangeError
			Expect(errors.As(err, &oor)).To(BeTrue())
			Expect(oor.Theta).To(Equal(80.0))
			Expect(oor.Nearest.Name).To(Equal("vertical-laminar"))
			Expect(err.Error()).To(ContainSubstring("vertical-laminar"))
		})

		It("still evaluates covered points when extrapolation is disabled", func() {
			eng, err := convection.New(air, convection.WithExtrapolation(false))
			Expect(err).NotTo(HaveOccurred())
			_, err = eng.NusseltAverage(0.4, 80, 313, 283)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("forced region", func() {
		It("bypasses classification", func() {
			eng, err := convection.New(air,
				convection.WithForcedRegion("upper-turbulent"),
				convection.WithExtrapolation(false))
			Expect(err).NotTo(HaveOccurred())

			// A vertical wall: classification would pick vertical-laminar.
			r, err := eng.Evaluate(convection.Average, 0.4, 0, 313, 283)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Forced).To(BeTrue())
			Expect(r.Classification.Status).To(Equal(convection.Forced))
			Expect(r.Region()).To(Equal("upper-turbulent"))

			// Even inside a gap.
			_, err = eng.NusseltAverage(0.003, 80, 313, 283)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("surface at fluid temperature", func() {
		for _, region := range convection.DefaultTable() {
			It("returns the declared limits of "+region.Name, func() {
				eng, err := convection.New(air, convection.WithForcedRegion(region.Name))
				Expect(err).NotTo(HaveOccurred())
				for _, theta := range []float64{-80, 0, 80} {
					local, err := eng.NusseltLocal(0.4, theta, 300, 300)
					Expect(err).NotTo(HaveOccurred())
					Expect(local).To(Equal(region.Correlation.LocalLimit))
					avg, err := eng.NusseltAverage(0.4, theta, 300, 300)
					Expect(err).NotTo(HaveOccurred())
					Expect(avg).To(Equal(region.Correlation.AverageLimit))
				}
			})
		}

		It("is not an error in a gap without extrapolation", func() {
			eng, err := convection.New(air, convection.WithExtrapolation(false))
			Expect(err).NotTo(HaveOccurred())
			r, err := eng.Evaluate(convection.Average, 0.4, 80, 300, 300)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Ra).To(BeZero())
			Expect(r.Nu).To(Equal(0.68))
		})
	})
})
