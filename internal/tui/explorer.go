package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/auxi/internal/analysis"
	"github.com/san-kum/auxi/internal/config"
	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/thermo"
	"github.com/san-kum/auxi/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type param struct {
	name  string
	unit  string
	step  float64
	ratio bool // step multiplies instead of adds
}

var params = []param{
	{name: "length", unit: "m", step: 1.25, ratio: true},
	{name: "angle", unit: "°", step: 5},
	{name: "surface_temperature", unit: "K", step: 1},
	{name: "fluid_temperature", unit: "K", step: 1},
	{name: "area", unit: "m²", step: 1.25, ratio: true},
}

const sparkPoints = 60

type model struct {
	fluid thermo.FluidPropertySource
	opts  []convection.Option

	values      map[string]float64
	cursor      int
	editing     bool
	editBuf     string
	extrapolate bool
	film        bool

	eng     *convection.Engine
	local   convection.Result
	average convection.Result
	heat    float64
	sweep   []float64
	err     error

	width int
}

// NewExplorer builds the explorer model for fluid starting from cfg. opts
// are applied to every engine the explorer builds.
func NewExplorer(fluid thermo.FluidPropertySource, cfg *config.Config, opts ...convection.Option) *model {
	m := &model{
		fluid: fluid,
		opts:  opts,
		values: map[string]float64{
			"length":              cfg.Surface.Length,
			"angle":               cfg.Surface.Angle,
			"surface_temperature": cfg.State.SurfaceTemperature,
			"fluid_temperature":   cfg.State.FluidTemperature,
			"area":                cfg.Surface.Area,
		},
		extrapolate: cfg.AllowExtrapolation,
		film:        cfg.FilmTemperature,
		width:       80,
	}
	m.rebuild()
	return m
}

func (m *model) rebuild() {
	opts := append([]convection.Option{convection.WithExtrapolation(m.extrapolate)}, m.opts...)
	if m.film {
		opts = append(opts, convection.WithFilmTemperature())
	}
	m.eng, m.err = convection.New(m.fluid, opts...)
	m.recompute()
}

func (m *model) recompute() {
	if m.eng == nil {
		return
	}
	l, th := m.values["length"], m.values["angle"]
	ts, tf := m.values["surface_temperature"], m.values["fluid_temperature"]

	m.local, m.err = m.eng.Evaluate(convection.Local, l, th, ts, tf)
	if m.err != nil {
		return
	}
	m.average, m.err = m.eng.Evaluate(convection.Average, l, th, ts, tf)
	if m.err != nil {
		return
	}
	m.heat, m.err = m.eng.HeatRate(l, th, ts, tf, m.values["area"])
	if m.err != nil {
		return
	}

	m.sweep = nil
	if pts, err := analysis.SweepLength(m.eng, analysis.LogSpace(l/10, l*10, sparkPoints), th, ts, tf); err == nil {
		m.sweep = analysis.AverageNusselt(pts)
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	name := params[m.cursor].name

	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.values[name] = v
				m.recompute()
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.values[name], 'g', -1, 64)
	case "x":
		m.extrapolate = !m.extrapolate
		m.rebuild()
	case "f":
		m.film = !m.film
		m.rebuild()
	}
	return m, nil
}

func (m *model) adjust(dir float64) {
	p := params[m.cursor]
	v := m.values[p.name]
	if p.ratio {
		v *= math.Pow(p.step, dir)
	} else {
		v += dir * p.step
	}
	if p.name == "angle" {
		v = math.Max(-convection.MaxTheta, math.Min(convection.MaxTheta, v))
	}
	m.values[p.name] = v
	m.recompute()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("              " + cyan.Render("a u x i") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, p := range params {
		val := fmt.Sprintf("%10.4g %s", m.values[p.name], p.unit)
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-22s", p.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-22s", p.name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n        " + dim.Render(fmt.Sprintf("%-22s", "extrapolation")) + onOff(m.extrapolate) + "\n")
	b.WriteString("        " + dim.Render(fmt.Sprintf("%-22s", "film temperature")) + onOff(m.film) + "\n\n")

	if m.err != nil {
		b.WriteString("      " + red.Render(m.err.Error()) + "\n")
	} else {
		b.WriteString(m.viewResult())
	}

	b.WriteString("\n" + dim.Render("      ↑↓ select  ←→ adjust  enter edit  x extrapolation  f film  q quit") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	r := m.average
	status := r.Classification.Status.String()

	row := func(label, value string) {
		b.WriteString("      " + viz.MetricLabel.Render(fmt.Sprintf("%-8s", label)) + viz.MetricValue.Render(value) + "\n")
	}
	row("Ra", fmt.Sprintf("%.4g", r.Ra))
	row("Pr", fmt.Sprintf("%.4g", r.Pr))
	row("φ", fmt.Sprintf("%g°", r.Theta))
	row("Nu_x", fmt.Sprintf("%.4g", m.local.Nu))
	row("Nu_L", fmt.Sprintf("%.4g", r.Nu))
	row("h_x", fmt.Sprintf("%.4g W/m²K", m.local.H))
	row("h_L", fmt.Sprintf("%.4g W/m²K", r.H))
	row("q", fmt.Sprintf("%.4g W", m.heat))

	statusStyle := green
	switch r.Classification.Status {
	case convection.Blended:
		statusStyle = yellow
	case convection.Extrapolated, convection.Forced:
		statusStyle = red
	}
	b.WriteString("\n      " + dim.Render("region  ") + white.Render(r.Region()) + "  " + statusStyle.Render(status) + "\n")
	if len(r.Classification.Contributions) > 1 {
		for _, c := range r.Classification.Contributions {
			b.WriteString("        " + dimmer.Render(fmt.Sprintf("%-20s %5.1f%%", c.Region.Name, 100*c.Weight)) + "\n")
		}
	}

	if len(m.sweep) > 1 {
		b.WriteString("\n      " + dim.Render("Nu_L  L/10…10L ") + viz.Sparkline(m.sweep, 40) + "\n")
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return green.Render("on")
	}
	return dim.Render("off")
}

// RunExplorer starts the explorer in the alternate screen.
func RunExplorer(fluid thermo.FluidPropertySource, cfg *config.Config, opts ...convection.Option) error {
	p := tea.NewProgram(NewExplorer(fluid, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
