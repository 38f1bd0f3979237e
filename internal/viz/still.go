package viz

import (
	"fmt"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/playback"
)

// CameraFor returns a camera set up from the config's camera section.
func CameraFor(cfg *config.Config) *Camera {
	cam := NewCamera()
	cam.RotX, cam.RotY = cfg.Camera.RotX, cfg.Camera.RotY
	if cfg.Camera.Zoom > 0 {
		cam.Zoom = cfg.Camera.Zoom
	}
	return cam
}

// RestingDisks places every disk of snap in its slot, as the scene looks
// once all animation has settled.
func RestingDisks(layout anim.Layout, snap hanoi.Snapshot) []playback.DiskView {
	out := make([]playback.DiskView, snap.DiskCount())
	for r := hanoi.A; r < hanoi.NumRods; r++ {
		for row, d := range snap.Disks(r) {
			out[d] = playback.DiskView{
				Rank:     int(d),
				Radius:   layout.DiskRadius(int(d)),
				Position: layout.SlotPosition(row, r.Index()),
			}
		}
	}
	return out
}

// Still draws the n-disk scene after the first step moves of the optimal
// plan onto a w x h canvas.
func Still(cfg *config.Config, n, step, w, h int) (*Canvas, error) {
	if err := config.CheckDisks(n); err != nil {
		return nil, err
	}
	if total := hanoi.MoveCount(n); step < 0 || uint64(step) > total {
		return nil, fmt.Errorf("step %d outside [0, %d]", step, total)
	}

	t := hanoi.NewTower(n, playback.Home)
	t.Strict = true
	var err error
	hanoi.Walk(n, playback.Home, playback.Goal, playback.Spare, func(i int, m hanoi.Move) bool {
		if i >= step {
			return false
		}
		_, err = t.ApplyAt(i, m)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	theme := GetTheme(cfg.Theme)
	layout := anim.NewLayout(n)
	c := NewCanvas(w, h)
	Render3D(c, SceneWireframe(layout, RestingDisks(layout, t.Snapshot()), len(theme.Disks)), CameraFor(cfg))
	return c, nil
}
