package viz

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/auxi/internal/analysis"
	"github.com/san-kum/auxi/internal/convection"
)

func TestRenderRegionMap(t *testing.T) {
	m, err := analysis.NewRegionMap(convection.DefaultTable(), 1, 1e14, 42, 12)
	if err != nil {
		t.Fatal(err)
	}
	out := RenderRegionMap(m, ThemeMinimal)

	for _, name := range convection.DefaultTable().Names() {
		if !strings.Contains(out, name) {
			t.Errorf("legend missing region %s", name)
		}
	}
	for _, status := range []string{"proven", "blended", "extrapolated"} {
		if !strings.Contains(out, status) {
			t.Errorf("legend missing status %s", status)
		}
	}
	for _, g := range []rune{GlyphProven, GlyphBlended, GlyphGap} {
		if !strings.ContainsRune(out, g) {
			t.Errorf("map has no %q cells", g)
		}
	}
	if !strings.Contains(out, "φ (deg)") || !strings.Contains(out, "log10 Ra") {
		t.Error("expected axis titles")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("thermal").Name != "thermal" {
		t.Error("expected thermal theme")
	}
	if GetTheme("nonexistent").Name != DefaultTheme.Name {
		t.Error("expected fallback to default theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
	th := Theme{Regions: nil, Text: "#ffffff"}
	if th.RegionColor(3) != "#ffffff" {
		t.Error("empty palette should fall back to text colour")
	}
	if ThemeCyberpunk.RegionColor(len(ThemeCyberpunk.Regions)) != ThemeCyberpunk.Regions[0] {
		t.Error("palette should cycle")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	if Sparkline([]float64{1, 2}, 0) != "" {
		t.Error("zero width should render nothing")
	}

	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	out := Sparkline(values, 20)
	if n := strings.Count(out, "▁") + strings.Count(out, "█"); n == 0 {
		t.Errorf("expected low and high bars in %q", out)
	}
	if !utf8.ValidString(out) {
		t.Error("invalid utf-8")
	}
}

func TestPlotSweep(t *testing.T) {
	if PlotSweep(nil, 40, 10) != "" {
		t.Error("empty sweep should render nothing")
	}

	pts := []analysis.SweepPoint{
		{Ra: 1e6, NuX: 10, NuL: 14},
		{Ra: 1e7, NuX: 18, NuL: 25},
		{Ra: 1e8, NuX: 32, NuL: 43},
	}
	out := PlotSweep(pts, 40, 8)
	if !strings.Contains(out, "log10 Ra") {
		t.Errorf("missing caption in\n%s", out)
	}
	if !strings.Contains(out, "6.00") || !strings.Contains(out, "8.00") {
		t.Errorf("caption should give the Ra range:\n%s", out)
	}
}
