package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/san-kum/hanoi/internal/config"
)

const (
	stateMenu = iota
	stateLive
)

const customEntry = "custom"

var presetInfo = map[string]string{
	"small":    "3 disks, 7 moves",
	"classic":  "8 disks, 255 moves",
	"tall":     "12 disks, 4095 moves",
	"marathon": "25 disks, 33554431 moves",
}

type menu struct {
	state  int
	cursor int
	items  []string
	disks  int
	base   config.Config
	live   Model
	log    zerolog.Logger
}

// NewMenu lists the presets plus a custom entry whose disk count starts
// at base.Disks.
func NewMenu(base *config.Config, log zerolog.Logger) *menu {
	return &menu{
		state: stateMenu,
		items: append(config.ListPresets(), customEntry),
		disks: config.ClampDisks(base.Disks),
		base:  *base,
		log:   log,
	}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.menuKey(msg)
	}
	return m, nil
}

func (m menu) menuKey(msg tea.KeyMsg) (menu, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.items[m.cursor] == customEntry {
			m.disks = config.ClampDisks(m.disks - 1)
		}
	case "right", "l":
		if m.items[m.cursor] == customEntry {
			m.disks = config.ClampDisks(m.disks + 1)
		}
	case "enter", " ":
		cfg := m.selected()
		m.live = NewModel(cfg, m.log)
		m.state = stateLive
		return m, m.live.Init()
	}
	return m, nil
}

// selected builds the config for the highlighted entry. Presets keep the
// base logging and strictness settings.
func (m menu) selected() *config.Config {
	name := m.items[m.cursor]
	if name == customEntry {
		cfg := m.base
		cfg.Disks = m.disks
		return &cfg
	}
	cfg := config.GetPreset(name)
	cfg.LogLevel, cfg.Strict = m.base.LogLevel, m.base.Strict
	return cfg
}

func (m menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}
	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	key, hint := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	b.WriteString("\n\n    " + h.Render("HANOI") + "\n    " + sub.Render("towers of hanoi in 3d") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.items {
		desc := presetInfo[name]
		if name == customEntry {
			desc = fmt.Sprintf("◂ %d disks ▸", m.disks)
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(fmt.Sprintf("%-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(desc)))
		}
	}
	b.WriteString("\n    " + key.Render("j/k") + hint.Render(" navigate  ") + key.Render("h/l") + hint.Render(" disks  ") + key.Render("enter") + hint.Render(" play  ") + key.Render("q") + hint.Render(" quit") + "\n")
	return b.String()
}

// RunMenu starts the preset picker, which hands over to the live player.
func RunMenu(base *config.Config, log zerolog.Logger) error {
	_, err := tea.NewProgram(NewMenu(base, log), tea.WithAltScreen()).Run()
	return err
}
