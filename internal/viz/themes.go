package viz

import "github.com/charmbracelet/lipgloss"

// DiskPalette is cycled by disk rank.
var DiskPalette = []lipgloss.Color{"#59b5d9", "#ff5966", "#ffde59", "#77bf56", "#cef19e"}

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Base      lipgloss.Color
	Rod       lipgloss.Color
	Disks     []lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		Base:      lipgloss.Color("#848484"),
		Rod:       lipgloss.Color("#d2d1d6"),
		Disks:     DiskPalette,
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Base:      lipgloss.Color("#005500"),
		Rod:       lipgloss.Color("#00aa00"),
		Disks:     []lipgloss.Color{"#00ff00", "#88ff88", "#00cc00"},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
		Base:      lipgloss.Color("#888888"),
		Rod:       lipgloss.Color("#cccccc"),
		Disks:     []lipgloss.Color{"#ffffff"},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Base:      lipgloss.Color("#4488aa"),
		Rod:       lipgloss.Color("#e0f0ff"),
		Disks:     []lipgloss.Color{"#0077be", "#00a8cc", "#ffd700", "#00ff88"},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
		Base:      lipgloss.Color("#8b6b8c"),
		Rod:       lipgloss.Color("#fff5f5"),
		Disks:     []lipgloss.Color{"#ff6b6b", "#feca57", "#ff9ff3", "#ffc048"},
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, cyberpunk when unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Pens returns the canvas pen styles for the theme: base, rod, then the
// disk colours in order.
func (t Theme) Pens() []lipgloss.Style {
	pens := make([]lipgloss.Style, 0, PenDisk+len(t.Disks))
	pens = append(pens,
		lipgloss.NewStyle().Foreground(t.Base),
		lipgloss.NewStyle().Foreground(t.Rod),
	)
	for _, c := range t.Disks {
		pens = append(pens, lipgloss.NewStyle().Foreground(c))
	}
	return pens
}

// Colors returns the pen colours of the theme as hex strings, in pen order.
func (t Theme) Colors() []string {
	out := make([]string, 0, PenDisk+len(t.Disks))
	out = append(out, string(t.Base), string(t.Rod))
	for _, c := range t.Disks {
		out = append(out, string(c))
	}
	return out
}
