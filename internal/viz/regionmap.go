package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/auxi/internal/analysis"
	"github.com/san-kum/auxi/internal/convection"
)

// Cell glyphs by classification status.
const (
	GlyphProven  = '█'
	GlyphBlended = '▒'
	GlyphGap     = '·'
)

// RenderRegionMap draws a classified grid with angle labels on the left,
// decades of Ra underneath and a legend of regions and statuses.
func RenderRegionMap(m *analysis.RegionMap, theme Theme) string {
	index := make(map[string]int, len(m.Table))
	for i, r := range m.Table {
		index[r.Name] = i
	}
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	var b strings.Builder
	b.WriteString(Title.Render("Correlation regions") + "\n")
	b.WriteString(muted.Render("φ (deg)") + "\n")

	for r, row := range m.Cells {
		label := "     "
		if r == 0 || r == len(m.Cells)-1 || r == len(m.Cells)/2 {
			label = fmt.Sprintf("%4.0f ", m.ThetaAt(r))
		}
		b.WriteString(muted.Render(label + "│"))
		for _, c := range row {
			b.WriteString(renderCell(c, index, theme))
		}
		b.WriteByte('\n')
	}

	b.WriteString(muted.Render("     └" + strings.Repeat("─", m.Cols)))
	b.WriteByte('\n')
	b.WriteString(muted.Render("      " + raAxis(m)))
	b.WriteByte('\n')
	b.WriteString(muted.Render(fmt.Sprintf("%*s", m.Cols+6, "log10 Ra")))
	b.WriteString("\n\n")
	b.WriteString(Legend(m.Table, theme))
	return b.String()
}

func renderCell(c convection.Classification, index map[string]int, theme Theme) string {
	color := theme.Muted
	glyph := GlyphGap
	switch c.Status {
	case convection.Proven, convection.Forced:
		color, glyph = theme.RegionColor(index[c.Dominant().Name]), GlyphProven
	case convection.Blended:
		color, glyph = theme.RegionColor(index[c.Dominant().Name]), GlyphBlended
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(glyph))
}

// raAxis places integer decades under their columns.
func raAxis(m *analysis.RegionMap) string {
	line := []rune(strings.Repeat(" ", m.Cols+3))
	lo, hi := math.Log10(m.RaMin), math.Log10(m.RaMax)
	span := hi - lo
	every := int(math.Max(1, math.Ceil(span*3/float64(m.Cols))))
	for d := int(math.Ceil(lo)); float64(d) <= hi; d++ {
		if d%every != 0 {
			continue
		}
		col := int((float64(d) - lo) / span * float64(m.Cols))
		for i, ch := range fmt.Sprint(d) {
			if col+i < len(line) {
				line[col+i] = ch
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}

// Legend lists each region with its colour, bounds and source, followed
// by the status key.
func Legend(table convection.Table, theme Theme) string {
	var b strings.Builder
	for i, r := range table {
		swatch := lipgloss.NewStyle().Foreground(theme.RegionColor(i)).Render(string(GlyphProven))
		b.WriteString(fmt.Sprintf("%s %s\n", swatch, r))
		b.WriteString(Subtle.Render("    "+r.Description+"; "+r.Source) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%c %s   %c %s   %c %s\n",
		GlyphProven, StatusStyle(theme, convection.Proven.String()).Render("proven"),
		GlyphBlended, StatusStyle(theme, convection.Blended.String()).Render("blended"),
		GlyphGap, StatusStyle(theme, convection.Extrapolated.String()).Render("extrapolated")))
	return b.String()
}
