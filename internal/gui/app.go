//go:build !nogui

package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/metrics"
	"github.com/san-kum/hanoi/internal/playback"
	"github.com/san-kum/hanoi/internal/viz"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	historyLen   = 200
)

type planResult struct {
	seq  int
	n    int
	plan hanoi.Plan
	took time.Duration
}

type App struct {
	sched   *playback.Scheduler
	cfg     config.Config
	log     zerolog.Logger
	metrics *metrics.Set

	theme   viz.Theme
	palette Palette
	font    rl.Font
	orbit   Orbit
	camera  rl.Camera3D

	start   time.Time
	delta   float64
	plans   chan planResult
	loadSeq int
	pending int
	err     error
	heights []float64
	quit    bool
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(screenWidth, screenHeight, "hanoi")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	theme := viz.GetTheme(cfg.Theme)
	a := &App{
		sched: playback.New(
			playback.WithLogger(log),
			playback.WithStepDuration(cfg.StepMs),
			playback.WithStrict(cfg.Strict),
		),
		cfg:     *cfg,
		log:     log,
		metrics: metrics.Default(),
		theme:   theme,
		palette: NewPalette(theme),
		font:    rl.GetFontDefault(),
		start:   time.Now(),
		plans:   make(chan planResult, 1),
		heights: make([]float64, 0, historyLen),
	}
	a.sched.Subscribe(a.observe)
	a.setOrbit(OrbitFor(anim.NewLayout(config.ClampDisks(cfg.Disks)), cfg.Camera))
	a.camera = rl.NewCamera3D(vec(a.orbit.Eye()), vec(a.orbit.Target), rl.NewVector3(0, 1, 0), 45.0, rl.CameraPerspective)
	a.load(config.ClampDisks(cfg.Disks))
	return a
}

// Run opens the window and plays cfg until it is closed or Q is pressed.
func Run(cfg *config.Config, log zerolog.Logger) error {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window could not be opened")
	}
	NewApp(cfg, log).RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) observe(c playback.Change) {
	a.metrics.Observe(c, a.delta)
	if c.Err != nil {
		a.err = c.Err
	}
	if c.Event == playback.EventLoad {
		a.err = nil
	}
}

// load stops playback and solves n disks on a goroutine. Results from an
// older load are dropped when they arrive.
func (a *App) load(n int) {
	a.sched.Stop()
	a.loadSeq++
	a.pending = n
	seq := a.loadSeq
	a.log.Debug().Int("disks", n).Int("seq", seq).Msg("solving")
	go func() {
		start := time.Now()
		plan := hanoi.Solve(n, playback.Home, playback.Goal, playback.Spare)
		a.plans <- planResult{seq: seq, n: n, plan: plan, took: time.Since(start)}
	}()
}

func (a *App) receive() {
	select {
	case p := <-a.plans:
		if p.seq != a.loadSeq {
			return
		}
		a.pending = 0
		a.heights = a.heights[:0]
		if err := a.sched.LoadPlan(p.n, p.plan); err != nil {
			a.err = err
			return
		}
		a.setOrbit(OrbitFor(a.sched.Layout(), a.cfg.Camera))
		a.log.Info().Int("disks", p.n).Int("moves", p.plan.Len()).Dur("took", p.took).Msg("plan ready")
		if a.cfg.Autostart {
			a.sched.Start()
		}
	default:
	}
}

// setOrbit keeps the user's angles when the layout changes size.
func (a *App) setOrbit(o Orbit) {
	if a.orbit.Distance > 0 {
		o.Yaw, o.Pitch = a.orbit.Yaw, a.orbit.Pitch
	}
	a.orbit = o
}

func (a *App) diskCount() int {
	if a.pending > 0 {
		return a.pending
	}
	return a.sched.DiskCount()
}

func (a *App) Update() {
	a.receive()

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) && a.pending == 0 {
		a.sched.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.load(a.diskCount())
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		if n := config.ClampDisks(a.diskCount() + 1); n != a.diskCount() {
			a.load(n)
		}
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		if n := config.ClampDisks(a.diskCount() - 1); n != a.diskCount() {
			a.load(n)
		}
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.theme = viz.NextTheme(a.theme.Name)
		a.palette = NewPalette(a.theme)
	}

	// Camera
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		a.orbit.Rotate(-0.03, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		a.orbit.Rotate(0.03, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		a.orbit.Rotate(0, 0.02)
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		a.orbit.Rotate(0, -0.02)
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		a.orbit.Rotate(float64(d.X)*0.005, float64(d.Y)*0.005)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.orbit.Zoom(1 - float64(wheel)*0.1)
	}

	lerp := rl.GetFrameTime() * 8
	if lerp > 1 {
		lerp = 1
	}
	a.camera.Position = rl.Vector3Lerp(a.camera.Position, vec(a.orbit.Eye()), lerp)
	a.camera.Target = rl.Vector3Lerp(a.camera.Target, vec(a.orbit.Target), lerp)

	a.advance(time.Now())
}

// advance feeds the wall clock to the scheduler in milliseconds since start.
func (a *App) advance(now time.Time) {
	if d := float64(now.Sub(a.start)) / float64(time.Millisecond); d > a.delta {
		a.delta = d
	}
	if err := a.sched.Tick(a.delta); err != nil {
		a.log.Error().Err(err).Msg("tick")
	}
	if _, rank, ok := a.sched.LastMove(); ok {
		a.heights = append(a.heights, a.sched.Disks()[rank].Position.Y)
		if len(a.heights) > historyLen {
			a.heights = a.heights[1:]
		}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.palette.Background)

	rl.BeginMode3D(a.camera)
	a.drawScene(BuildScene(a.sched.Layout(), a.sched.Disks(), a.palette))
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) drawScene(s Scene) {
	b := s.Base
	rl.DrawCube(vec(b.Center), float32(b.Size.X), float32(b.Size.Y), float32(b.Size.Z), b.Color)
	rl.DrawCubeWires(vec(b.Center), float32(b.Size.X), float32(b.Size.Y), float32(b.Size.Z), a.palette.Dim)

	for _, r := range s.Rods {
		rl.DrawCylinder(vec(r.Foot), float32(r.Radius), float32(r.Radius), float32(r.Height), int32(r.Slices), r.Color)
	}
	for _, d := range s.Disks {
		rl.DrawCylinder(vec(d.Foot), float32(d.Radius), float32(d.Radius), float32(d.Height), int32(d.Slices), d.Color)
		rl.DrawCylinderWires(vec(d.Foot), float32(d.Radius), float32(d.Radius), float32(d.Height), int32(d.Slices), darken(d.Color))
		if d.Lifted {
			top := d.Foot.Add(anim.Vec3{Y: d.Height})
			rl.DrawCircle3D(vec(top), float32(d.Radius)+0.3, rl.NewVector3(1, 0, 0), 90, a.palette.Accent)
		}
	}
}

func (a *App) DrawHUD() {
	a.drawText("hanoi", 30, 30, 24, a.palette.Text)
	a.drawText(":: "+a.theme.Name, 110, 34, 16, a.palette.Dim)

	status, col := a.status()
	a.drawText(status, screenWidth-160, 30, 16, col)
	a.drawText(StatusLine(a.sched), 30, 64, 16, a.palette.Text)
	if mv, rank, ok := a.sched.LastMove(); ok {
		a.drawText(fmt.Sprintf("last %s (disk %d)", mv, rank+1), 30, 86, 16, a.palette.Dim)
	}
	v := a.metrics.Values()
	a.drawText(fmt.Sprintf("%.2f mv/s  %.2f rods", v["move_rate"], v["travel"]), 30, 108, 16, a.palette.Dim)
	if a.err != nil {
		a.drawText(a.err.Error(), 30, 130, 16, a.palette.Error)
	}

	a.drawHeights()

	a.drawText("[SPACE] PLAY  [R] RELOAD  [+/-] DISKS  [T] THEME  [ARROWS/DRAG] ORBIT  [Q] QUIT", 560, 680, 14, a.palette.Dim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, 680, 14, a.palette.Dim)
}

func (a *App) status() (string, rl.Color) {
	switch {
	case a.pending > 0:
		return fmt.Sprintf("SOLVING %d", a.pending), a.palette.Paused
	case a.err != nil:
		return "ABORTED", a.palette.Error
	case a.sched.Total() > 0 && a.sched.Drained():
		return "SOLVED", a.palette.Running
	}
	switch a.sched.State() {
	case playback.Running:
		return "RUNNING", a.palette.Running
	case playback.Paused:
		return "PAUSED", a.palette.Paused
	}
	return "READY", a.palette.Dim
}

// drawHeights plots the lift height of the moving disk over recent frames.
func (a *App) drawHeights() {
	if len(a.heights) < 2 {
		return
	}
	rectX, rectY := 30, 600
	width, height := 400, 60
	top := a.sched.Layout().LiftHeight()
	if top <= 0 {
		return
	}

	points := make([]rl.Vector2, len(a.heights))
	for i, h := range a.heights {
		px := float32(rectX) + float32(i)/float32(historyLen)*float32(width)
		py := float32(rectY+height) - float32(h/top)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, a.palette.Accent)
	a.drawText("lift height", rectX+width+10, rectY+height-10, 14, a.palette.Dim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func vec(v anim.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func darken(c rl.Color) rl.Color {
	return rl.NewColor(c.R/2, c.G/2, c.B/2, c.A)
}
