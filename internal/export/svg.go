package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/auxi/internal/analysis"
	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/viz"
)

const (
	svgMargin = 40.0
	legendRow = 18.0
)

// RegionMapSVG draws a region map with one square of side cell per grid
// cell. Blended cells are drawn at reduced opacity, gaps in the muted
// colour.
func RegionMapSVG(m *analysis.RegionMap, theme viz.Theme, cell float64) string {
	if m == nil || cell <= 0 {
		return ""
	}

	plotW := float64(m.Cols) * cell
	plotH := float64(m.Rows) * cell
	width := plotW + 2*svgMargin
	height := plotH + 2*svgMargin + legendRow*float64(len(m.Table)+1)

	index := make(map[string]int, len(m.Table))
	for i, r := range m.Table {
		index[r.Name] = i
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="11" fill="%s">
`, width, height, width, height, theme.Text))

	for r, row := range m.Cells {
		y := svgMargin + float64(r)*cell
		for c, cl := range row {
			x := svgMargin + float64(c)*cell
			fill, opacity := string(theme.Muted), 0.35
			switch cl.Status {
			case convection.Proven, convection.Forced:
				fill, opacity = string(theme.RegionColor(index[cl.Dominant().Name])), 1
			case convection.Blended:
				fill, opacity = string(theme.RegionColor(index[cl.Dominant().Name])), 0.6
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%.2f"/>
`, x, y, cell, cell, fill, opacity))
		}
	}

	// Axes: angle on the left, decades of Ra along the bottom.
	for _, theta := range []float64{90, 45, 0, -45, -90} {
		y := svgMargin + (convection.MaxTheta-theta)/(2*convection.MaxTheta)*plotH
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">%g°</text>
`, svgMargin-4, y+4, theta))
	}
	lo, hi := math.Log10(m.RaMin), math.Log10(m.RaMax)
	for d := math.Ceil(lo); d <= hi; d++ {
		x := svgMargin + (d-lo)/(hi-lo)*plotW
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%g</text>
`, x, svgMargin+plotH+14, d))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">log10 Ra</text>
`, svgMargin+plotW/2, svgMargin+plotH+28))

	y := svgMargin + plotH + 2*legendRow
	for i, r := range m.Table {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="10" height="10" fill="%s"/>
<text x="%.1f" y="%.1f">%s</text>
`, svgMargin, y-9, theme.RegionColor(i), svgMargin+16, y, html.EscapeString(r.String())))
		y += legendRow
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SweepSVG plots Nu_L (solid) and Nu_x (dashed) against log10 Ra.
func SweepSVG(points []analysis.SweepPoint, width, height int, theme viz.Theme) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.Ra <= 0 {
			continue
		}
		x := math.Log10(p.Ra)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY = math.Min(minY, math.Min(p.NuX, p.NuL))
		maxY = math.Max(maxY, math.Max(p.NuX, p.NuL))
	}
	if math.IsInf(minX, 0) {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	margin := 20.0
	scaleX := (float64(width) - 2*margin) / rangeX
	scaleY := (float64(height) - 2*margin) / rangeY

	path := func(nu func(analysis.SweepPoint) float64) string {
		var b strings.Builder
		for _, p := range points {
			if p.Ra <= 0 {
				continue
			}
			x := margin + (math.Log10(p.Ra)-minX)*scaleX
			y := float64(height) - margin - (nu(p)-minY)*scaleY
			b.WriteString(fmt.Sprintf("%.1f,%.1f ", x, y))
		}
		return strings.TrimSpace(b.String())
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>
<polyline points="%s" fill="none" stroke="%s" stroke-width="2" stroke-dasharray="6 4"/>
</svg>`, width, height, width, height,
		path(func(p analysis.SweepPoint) float64 { return p.NuL }), theme.Primary,
		path(func(p analysis.SweepPoint) float64 { return p.NuX }), theme.Secondary)
}
