package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/auxi/internal/config"
	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/fluid"
	"github.com/san-kum/auxi/internal/thermo"
)

func newTestExplorer(t *testing.T) model {
	t.Helper()
	air, err := fluid.NewAir(thermo.StandardPressure)
	if err != nil {
		t.Fatal(err)
	}
	return *NewExplorer(air, config.GetPreset("wall"))
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestExplorer_InitialResult(t *testing.T) {
	m := newTestExplorer(t)
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.average.Nu <= m.local.Nu {
		t.Errorf("expected Nu_L > Nu_x, got %g and %g", m.average.Nu, m.local.Nu)
	}
	if len(m.sweep) != sparkPoints {
		t.Errorf("expected %d sweep points, got %d", sparkPoints, len(m.sweep))
	}

	view := m.View()
	for _, want := range []string{"Nu_L", "h_L", "vertical-laminar", "proven"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExplorer_AdjustRecomputes(t *testing.T) {
	m := newTestExplorer(t)
	before := m.average.Ra

	m = press(m, "right")
	if m.values["length"] <= 0.4 {
		t.Errorf("length not increased: %g", m.values["length"])
	}
	if m.average.Ra <= before {
		t.Errorf("Ra should grow with length: %g -> %g", before, m.average.Ra)
	}

	m = press(m, "down")
	for i := 0; i < 30; i++ {
		m = press(m, "right")
	}
	if m.values["angle"] != convection.MaxTheta {
		t.Errorf("angle should clamp at 90, got %g", m.values["angle"])
	}
}

func TestExplorer_EditValue(t *testing.T) {
	m := newTestExplorer(t)

	m = press(m, "enter")
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	for range m.editBuf {
		m = press(m, "backspace")
	}
	m = press(m, "2", ".", "5", "enter")
	if m.editing {
		t.Error("edit mode should end on enter")
	}
	if m.values["length"] != 2.5 {
		t.Errorf("expected length 2.5, got %g", m.values["length"])
	}
}

func TestExplorer_ToggleExtrapolation(t *testing.T) {
	m := newTestExplorer(t)

	// A 3 mm plate tilted to 80° sits in the low-Ra gap.
	m.values["length"] = 0.003
	m.values["angle"] = 80
	m.recompute()
	if m.err != nil || !m.average.Extrapolated() {
		t.Fatalf("expected extrapolated result, err=%v", m.err)
	}

	m = press(m, "x")
	if m.extrapolate {
		t.Fatal("extrapolation should be off")
	}
	if m.err == nil {
		t.Fatal("expected out-of-range error")
	}
	if !strings.Contains(m.View(), "outside all correlation regions") {
		t.Error("view should show the error")
	}
}
