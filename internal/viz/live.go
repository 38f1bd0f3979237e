package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/metrics"
	"github.com/san-kum/hanoi/internal/playback"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 46
	historyCapacity = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// planMsg carries a plan solved off the frame loop.
type planMsg struct {
	seq  int
	n    int
	plan hanoi.Plan
	took time.Duration
}

// feed collects scheduler notifications for the view. It is shared by all
// copies of the Model.
type feed struct {
	state   playback.State
	last    playback.Event
	err     error
	now     float64
	metrics *metrics.Set
}

func (f *feed) observe(c playback.Change) {
	f.metrics.Observe(c, f.now)
	f.state = c.To
	f.last = c.Event
	if c.Err != nil {
		f.err = c.Err
	}
	if c.Event == playback.EventLoad {
		f.err = nil
	}
}

// Model is the live player: it owns the scheduler and feeds it the frame
// clock.
type Model struct {
	sched    *playback.Scheduler
	cfg      config.Config
	theme    Theme
	styles   Styles
	pens     []lipgloss.Style
	canvas   *Canvas
	camera   *Camera
	start    time.Time
	delta    float64
	loadSeq  int
	pending  int
	solveDur time.Duration
	heights  []float64
	feed     *feed
	showHelp bool
	log      zerolog.Logger
}

func NewModel(cfg *config.Config, log zerolog.Logger) Model {
	f := &feed{metrics: metrics.Default()}
	sched := playback.New(
		playback.WithLogger(log),
		playback.WithStepDuration(cfg.StepMs),
		playback.WithStrict(cfg.Strict),
	)
	sched.Subscribe(f.observe)

	theme := GetTheme(cfg.Theme)
	return Model{
		sched:   sched,
		cfg:     *cfg,
		theme:   theme,
		styles:  theme.Styles(),
		pens:    theme.Pens(),
		canvas:  NewCanvas(width-panelWidth, height-2),
		camera:  CameraFor(cfg),
		start:   time.Now(),
		loadSeq: 1,
		pending: config.ClampDisks(cfg.Disks),
		heights: make([]float64, 0, historyCapacity),
		feed:    f,
		log:     log,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(solve(m.loadSeq, m.pending), m.tick())
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// solve computes the plan outside the frame loop; 25 disks take seconds.
func solve(seq, n int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		plan := hanoi.Solve(n, playback.Home, playback.Goal, playback.Spare)
		return planMsg{seq: seq, n: n, plan: plan, took: time.Since(start)}
	}
}

// DiskCount is the requested disk count, including one still being solved.
func (m Model) DiskCount() int {
	if m.pending > 0 {
		return m.pending
	}
	return m.sched.DiskCount()
}

func (m Model) Scheduler() *playback.Scheduler { return m.sched }

// Loading reports whether a plan is being solved.
func (m Model) Loading() bool { return m.pending > 0 }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		w, h := msg.Width-panelWidth-6, msg.Height-4
		m.canvas = NewCanvas(max(w, 20), max(h, 10))
		return m, nil
	case planMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.pending = 0
		m.solveDur = msg.took
		m.heights = m.heights[:0]
		if err := m.sched.LoadPlan(msg.n, msg.plan); err != nil {
			m.feed.err = err
			return m, nil
		}
		m.log.Info().Int("disks", msg.n).Int("moves", msg.plan.Len()).Dur("took", msg.took).Msg("plan ready")
		if m.cfg.Autostart {
			m.sched.Start()
		}
		return m, nil
	case TickMsg:
		m.advance(time.Time(msg))
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "s":
		if !m.Loading() {
			m.sched.Toggle()
		}
	case "r":
		return m, m.load(m.DiskCount())
	case "+", "=":
		if n := config.ClampDisks(m.DiskCount() + 1); n != m.DiskCount() {
			return m, m.load(n)
		}
	case "-", "_":
		if n := config.ClampDisks(m.DiskCount() - 1); n != m.DiskCount() {
			return m, m.load(n)
		}
	case "x":
		m.camera.RotateX(0.1)
	case "X":
		m.camera.RotateX(-0.1)
	case "y":
		m.camera.RotateY(0.1)
	case "Y":
		m.camera.RotateY(-0.1)
	case "z", "]":
		m.camera.ZoomIn()
	case "Z", "[":
		m.camera.ZoomOut()
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.pens = m.theme.Pens()
		m.styles = m.theme.Styles()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// load stops playback and solves n disks in the background. A newer load
// supersedes any still running.
func (m *Model) load(n int) tea.Cmd {
	m.sched.Stop()
	m.loadSeq++
	m.pending = n
	m.log.Debug().Int("disks", n).Int("seq", m.loadSeq).Msg("solving")
	return solve(m.loadSeq, n)
}

// advance feeds the frame clock to the scheduler. delta is milliseconds
// since the model was created and never decreases.
func (m *Model) advance(now time.Time) {
	if d := float64(now.Sub(m.start)) / float64(time.Millisecond); d > m.delta {
		m.delta = d
	}
	m.feed.now = m.delta
	if err := m.sched.Tick(m.delta); err != nil {
		m.log.Error().Err(err).Msg("tick")
	}
	if _, rank, ok := m.sched.LastMove(); ok {
		m.heights = append(m.heights, m.sched.Disks()[rank].Position.Y)
		if len(m.heights) > historyCapacity {
			m.heights = m.heights[1:]
		}
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	wf := SceneWireframe(m.sched.Layout(), m.sched.Disks(), len(m.theme.Disks))
	Render3D(m.canvas, wf, m.camera)
}

func (m Model) status() string {
	switch {
	case m.Loading():
		return m.styles.Paused.Render(fmt.Sprintf("SOLVING %d DISKS", m.pending))
	case m.feed.err != nil:
		return m.styles.Error.Render("ABORTED")
	case m.sched.Total() > 0 && m.sched.Drained():
		return m.styles.Running.Render("SOLVED")
	}
	switch m.sched.State() {
	case playback.Running:
		return m.styles.Running.Render("RUNNING")
	case playback.Paused:
		return m.styles.Paused.Render("PAUSED")
	}
	return m.styles.Idle.Render("READY")
}

func (m Model) metric(label, value string) string {
	return m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n"
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render(m.pens))

	var s strings.Builder
	s.WriteString(GradientText("TOWERS OF HANOI", m.theme.Primary, m.theme.Secondary) + "\n")
	s.WriteString(m.status() + "\n\n")

	s.WriteString(m.metric("Disks", fmt.Sprintf("%d", m.DiskCount())))
	s.WriteString(m.metric("Step", fmt.Sprintf("%d / %d", m.sched.Step(), m.sched.Total())))
	last := "-"
	if mv, rank, ok := m.sched.LastMove(); ok {
		last = fmt.Sprintf("%s (disk %d)", mv, rank+1)
	}
	s.WriteString(m.metric("Last", last))
	h := m.sched.Tower().Heights()
	s.WriteString(m.metric("Rods", fmt.Sprintf("A:%d B:%d C:%d", h[0], h[1], h[2])))
	s.WriteString(m.metric("Clock", fmt.Sprintf("%.1fs", m.delta/1000)))
	v := m.feed.metrics.Values()
	s.WriteString(m.metric("Rate", fmt.Sprintf("%.2f mv/s", v["move_rate"])))
	s.WriteString(m.metric("Travel", fmt.Sprintf("%.2f rods", v["travel"])))
	if m.solveDur > 0 {
		s.WriteString(m.metric("Solved in", m.solveDur.Round(time.Millisecond).String()))
	}
	s.WriteString("\n" + ProgressBar(m.sched.Progress(), panelWidth-8) + "\n")

	if len(m.heights) > 1 {
		chart := asciigraph.Plot(m.heights, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("lift height"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.feed.err != nil {
		s.WriteString(m.styles.Error.Width(panelWidth-6).Render(m.feed.err.Error()) + "\n")
	}

	s.WriteString(Separator(panelWidth-6) + "\n")
	s.WriteString(m.styles.KeyHint.MarginTop(1).Render("SP:Start/Stop R:Reload Q:Quit\n+/-:Disks T:Theme ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space/S  - Start/Stop playback      ║
║  R        - Reload puzzle            ║
║  + / -    - More / fewer disks       ║
║  x/X y/Y  - Rotate camera            ║
║  z/Z  ] [ - Zoom in / out            ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the live player on the alternate screen.
func Run(cfg *config.Config, log zerolog.Logger) error {
	_, err := tea.NewProgram(NewModel(cfg, log), tea.WithAltScreen()).Run()
	return err
}
