package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for maps and the explorer.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	// Regions colours correlation regions in table order, cycling if the
	// table is longer.
	Regions []lipgloss.Color
}

// RegionColor returns the colour of the i-th region.
func (t Theme) RegionColor(i int) lipgloss.Color {
	if len(t.Regions) == 0 {
		return t.Text
	}
	return t.Regions[i%len(t.Regions)]
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		Regions: []lipgloss.Color{
			"#00ffff", "#ff00ff", "#ffff00", "#ff8800", "#00ff88",
		},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
		Regions: []lipgloss.Color{
			"#0088ff", "#00aa55", "#ffaa00", "#cc4444", "#aa66cc",
		},
	}

	// Cool tones for the stable side, warm for the plume side.
	ThemeThermal = Theme{
		Name:      "thermal",
		Primary:   lipgloss.Color("#ff6b35"),
		Secondary: lipgloss.Color("#f7c59f"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#fff5f0"),
		Muted:     lipgloss.Color("#8b6b6b"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
		Regions: []lipgloss.Color{
			"#ff9f1c", "#e71d36", "#ffd166", "#ef476f", "#118ab2",
		},
	}

	DefaultTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeThermal,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DefaultTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
