package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/auxi/internal/analysis"
)

// PlotSweep draws Nu_x and Nu_L against the sweep index. Sweeps built with
// analysis.LogSpace are evenly spaced in log10 Ra.
func PlotSweep(points []analysis.SweepPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	caption := fmt.Sprintf("Nu vs log10 Ra  [%.2f … %.2f]",
		log10(points[0].Ra), log10(points[len(points)-1].Ra))
	return asciigraph.PlotMany(
		[][]float64{analysis.LocalNusselt(points), analysis.AverageNusselt(points)},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.SeriesLegends("Nu_x", "Nu_L"),
	)
}

func log10(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return math.Log10(v)
}
