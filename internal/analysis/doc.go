// Package analysis runs the convection engine over ranges of operating
// points.
//
//   - [LogSpace]: logarithmically spaced samples
//   - [SweepLength]: Nusselt numbers and coefficients over plate lengths
//   - [MaxRelativeJump]: largest step between neighbouring samples
//   - [NewRegionMap]: classification of a grid over log10 Ra and angle
//
// # Continuity
//
// Sweeping across a region boundary and measuring the largest relative
// jump checks that blending keeps predictions continuous:
//
//	pts, _ := analysis.SweepLength(eng, analysis.LogSpace(0.1, 10, 400), 0, 313, 283)
//	jump := analysis.MaxRelativeJump(analysis.AverageNusselt(pts))
//
// Sweeps and maps split their work across goroutines; the engine must be
// safe for concurrent use.
package analysis
