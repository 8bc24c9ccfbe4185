// Package viz renders convection results in the terminal.
//
//   - [RenderRegionMap]: coloured map of correlation regions over log10 Ra
//     and effective angle, with a legend of bounds and validity status
//   - [PlotSweep]: asciigraph curves of Nu_x and Nu_L along a sweep
//   - [Sparkline]: one-line trend used by the explorer
//   - Theme selection with 3 built-in colour schemes
//
// # Glyphs
//
//	█ - one region applies (proven)
//	▒ - regions overlap, coloured by the dominant one (blended)
//	· - no region applies (extrapolated)
package viz
