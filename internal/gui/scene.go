package gui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/playback"
	"github.com/san-kum/hanoi/internal/viz"
)

const (
	rodRadius   = 0.5
	rodSlices   = 16
	diskSlices  = 48
	minPitch    = -0.2
	maxPitch    = 1.5
	minDistance = 5.0
)

// Box is the base slab, centred on Center.
type Box struct {
	Center anim.Vec3
	Size   anim.Vec3
	Color  color.RGBA
}

// Cylinder stands upright on Foot.
type Cylinder struct {
	Foot   anim.Vec3
	Radius float64
	Height float64
	Slices int
	Color  color.RGBA
	Lifted bool
}

// Scene is one frame worth of solids.
type Scene struct {
	Base  Box
	Rods  []Cylinder
	Disks []Cylinder
}

// Palette holds the window colours derived from a theme.
type Palette struct {
	Background color.RGBA
	Base       color.RGBA
	Rod        color.RGBA
	Disks      []color.RGBA
	Text       color.RGBA
	Dim        color.RGBA
	Accent     color.RGBA
	Running    color.RGBA
	Paused     color.RGBA
	Error      color.RGBA
}

// ParseColor reads "#rrggbb" or "rrggbb".
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// colorOr falls back to def for anything ParseColor rejects, such as the
// ANSI colour numbers lipgloss also accepts.
func colorOr(hex string, def color.RGBA) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return def
	}
	return c
}

var (
	gray   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	white  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	bgDark = color.RGBA{R: 10, G: 10, B: 10, A: 255}
)

func NewPalette(t viz.Theme) Palette {
	p := Palette{
		Background: bgDark,
		Base:       colorOr(string(t.Base), gray),
		Rod:        colorOr(string(t.Rod), white),
		Text:       colorOr(string(t.Text), white),
		Dim:        colorOr(string(t.Muted), gray),
		Accent:     colorOr(string(t.Accent), white),
		Running:    colorOr(string(t.Success), white),
		Paused:     colorOr(string(t.Warning), gray),
		Error:      colorOr(string(t.Error), white),
	}
	for _, c := range t.Disks {
		p.Disks = append(p.Disks, colorOr(string(c), white))
	}
	if len(p.Disks) == 0 {
		p.Disks = []color.RGBA{white}
	}
	return p
}

// BuildScene places the base, the three rods and every disk. A disk is a
// short cylinder one row high centred on its animated position.
func BuildScene(layout anim.Layout, disks []playback.DiskView, p Palette) Scene {
	s := Scene{
		Base: Box{Center: anim.Vec3{Y: -1}, Size: layout.BaseSize(), Color: p.Base},
	}
	for col := 0; col < 3; col++ {
		s.Rods = append(s.Rods, Cylinder{
			Foot:   layout.RodPosition(col),
			Radius: rodRadius,
			Height: layout.RodHeight(),
			Slices: rodSlices,
			Color:  p.Rod,
		})
	}

	thick := diskThickness(layout)
	tube := layout.DiskTube()
	for _, d := range disks {
		s.Disks = append(s.Disks, Cylinder{
			Foot:   d.Position.Sub(anim.Vec3{Y: thick / 2}),
			Radius: d.Radius + tube,
			Height: thick,
			Slices: diskSlices,
			Color:  p.Disks[viz.DiskColor(layout.N, d.Rank, len(p.Disks))],
			Lifted: d.Animating,
		})
	}
	return s
}

// diskThickness is the rise between stacked slots.
func diskThickness(layout anim.Layout) float64 {
	return layout.SlotPosition(1, 0).Y - layout.SlotPosition(0, 0).Y
}

// Orbit is a camera circling a target point.
type Orbit struct {
	Target   anim.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
}

// OrbitFor frames the layout from the configured angles and zoom.
func OrbitFor(layout anim.Layout, cam config.CameraConfig) Orbit {
	target := anim.Vec3{Y: layout.RodHeight() / 2}
	dist := layout.CameraPosition().Sub(target).Length()
	if cam.Zoom > 0 {
		dist /= cam.Zoom
	}
	o := Orbit{Target: target, Yaw: cam.RotY, Distance: dist}
	o.Rotate(0, cam.RotX)
	return o
}

// Eye is the camera position.
func (o Orbit) Eye() anim.Vec3 {
	cp := math.Cos(o.Pitch)
	return o.Target.Add(anim.Vec3{
		X: o.Distance * math.Sin(o.Yaw) * cp,
		Y: o.Distance * math.Sin(o.Pitch),
		Z: o.Distance * math.Cos(o.Yaw) * cp,
	})
}

// Rotate turns the camera, keeping it above the floor and short of the pole.
func (o *Orbit) Rotate(yaw, pitch float64) {
	o.Yaw += yaw
	o.Pitch = math.Max(minPitch, math.Min(maxPitch, o.Pitch+pitch))
}

// Zoom scales the distance by f, never closer than minDistance.
func (o *Orbit) Zoom(f float64) {
	if f <= 0 {
		return
	}
	o.Distance = math.Max(minDistance, o.Distance*f)
}

// StatusLine is the HUD summary for the scheduler.
func StatusLine(s *playback.Scheduler) string {
	return fmt.Sprintf("%d disks  move %d/%d  %.0f%%",
		s.DiskCount(), s.Step(), s.Total(), s.Progress()*100)
}
