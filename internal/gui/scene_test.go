package gui

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/playback"
	"github.com/san-kum/hanoi/internal/viz"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#59b5d9")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x59, G: 0xb5, B: 0xd9, A: 255}, c)

	c, err = ParseColor("ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c)

	for _, bad := range []string{"", "#fff", "240", "#zzzzzz"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewPalette(t *testing.T) {
	p := NewPalette(viz.ThemeCyberpunk)
	require.Len(t, p.Disks, len(viz.DiskPalette))
	assert.Equal(t, color.RGBA{R: 0x59, G: 0xb5, B: 0xd9, A: 255}, p.Disks[0])
	assert.Equal(t, color.RGBA{R: 0x84, G: 0x84, B: 0x84, A: 255}, p.Base)

	// lipgloss also takes ANSI numbers; those fall back to a neutral colour
	odd := viz.ThemeMinimal
	odd.Rod = "240"
	odd.Disks = nil
	p = NewPalette(odd)
	assert.Equal(t, white, p.Rod)
	assert.Equal(t, []color.RGBA{white}, p.Disks)
}

func TestBuildScene_StartingStack(t *testing.T) {
	layout := anim.NewLayout(4)
	disks := viz.RestingDisks(layout, hanoi.NewTower(4, hanoi.A).Snapshot())
	p := NewPalette(viz.ThemeCyberpunk)

	s := BuildScene(layout, disks, p)
	require.Len(t, s.Rods, 3)
	require.Len(t, s.Disks, 4)
	assert.Equal(t, layout.BaseSize(), s.Base.Size)
	assert.Equal(t, -1.0, s.Base.Center.Y)

	for col, r := range s.Rods {
		assert.Equal(t, layout.RodPosition(col), r.Foot)
		assert.InDelta(t, layout.RodHeight(), r.Height, 1e-9)
	}

	// the largest disk sits lowest and takes the first colour
	largest := s.Disks[3]
	assert.Equal(t, p.Disks[0], largest.Color)
	for rank, d := range s.Disks {
		assert.InDelta(t, disks[rank].Radius+layout.DiskTube(), d.Radius, 1e-9)
		assert.InDelta(t, disks[rank].Position.Y, d.Foot.Y+d.Height/2, 1e-9)
		assert.False(t, d.Lifted)
		if rank > 0 {
			assert.Greater(t, d.Radius, s.Disks[rank-1].Radius)
			assert.Less(t, d.Foot.Y, s.Disks[rank-1].Foot.Y)
		}
	}
	// stacked disks touch without overlapping
	assert.InDelta(t, s.Disks[3].Foot.Y+s.Disks[3].Height, s.Disks[2].Foot.Y, 1e-9)
}

func TestBuildScene_LiftedDisk(t *testing.T) {
	sched := playback.New(playback.WithStepDuration(1000))
	require.NoError(t, sched.Load(3))
	sched.Start()
	require.NoError(t, sched.Tick(0))
	require.NoError(t, sched.Tick(100))

	s := BuildScene(sched.Layout(), sched.Disks(), NewPalette(viz.ThemeOcean))
	assert.True(t, s.Disks[0].Lifted)
	assert.False(t, s.Disks[2].Lifted)
}

func TestOrbit(t *testing.T) {
	layout := anim.NewLayout(5)
	o := OrbitFor(layout, config.CameraConfig{Zoom: 1})
	eye := o.Eye()
	assert.InDelta(t, 0, eye.X, 1e-9)
	assert.InDelta(t, o.Target.Y, eye.Y, 1e-9)
	assert.InDelta(t, layout.CameraPosition().Sub(o.Target).Length(), eye.Sub(o.Target).Length(), 1e-9)

	zoomed := OrbitFor(layout, config.CameraConfig{Zoom: 2})
	assert.InDelta(t, o.Distance/2, zoomed.Distance, 1e-9)

	o.Rotate(math.Pi/2, 0)
	assert.InDelta(t, o.Distance, o.Eye().X, 1e-9)

	o.Rotate(0, 10)
	assert.Equal(t, maxPitch, o.Pitch)
	o.Rotate(0, -10)
	assert.Equal(t, minPitch, o.Pitch)

	o.Zoom(0.0001)
	assert.Equal(t, minDistance, o.Distance)
	o.Zoom(-1)
	assert.Equal(t, minDistance, o.Distance)
}

func TestStatusLine(t *testing.T) {
	sched := playback.New()
	require.NoError(t, sched.Load(3))
	assert.Equal(t, "3 disks  move 0/7  0%", StatusLine(sched))
}
