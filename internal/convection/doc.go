// Package convection computes natural-convection heat transfer from an
// isothermal flat surface.
//
// The package selects among empirical Nusselt-number correlations by the
// operating point's Rayleigh number and inclination:
//
//   - [Region]: an immutable record of a correlation and its validity box
//   - [Table]: an ordered list of regions; [DefaultTable] holds the built-in set
//   - [Classification]: which regions apply to a point, and with what weight
//   - [Engine]: evaluates local and average Nusselt numbers, heat-transfer
//     coefficients and heat rates for a fluid
//
// # Angles
//
// Inclination θ is measured in degrees from vertical; positive values face
// upward. Regions are declared in the effective angle φ, which equals θ for a
// heated surface and −θ for a cooled one, so that φ > 0 is always the side on
// which buoyant fluid rises away from the surface.
//
// # Overlaps and gaps
//
// Where regions overlap, correlations are blended with weights that fall to
// zero at each region's own edges, which keeps the prediction continuous
// across documented boundaries. A point covered by no region is either
// evaluated with the nearest region's correlation and flagged as
// extrapolated, or rejected with an [OutOfRangeError].
//
// # Example
//
//	air, _ := fluid.NewAir(thermo.StandardPressure)
//	eng, _ := convection.New(air)
//	h, _ := eng.CoefficientAverage(0.4, 0, 313, 283)
//
// # Thread Safety
//
// An Engine is immutable after construction and may be shared between
// goroutines provided its fluid source is reentrant.
package convection
