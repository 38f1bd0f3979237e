package viz

import (
	"math"
	"testing"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/playback"
)

func TestCameraProjectCentre(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(Vec3{}, 100, 80)
	if !ok || x != 50 || y != 40 {
		t.Errorf("origin should land in the centre, got (%d,%d,%v)", x, y, ok)
	}
}

func TestCameraBehind(t *testing.T) {
	cam := NewCamera()
	if _, _, _, ok := cam.Project(Vec3{Z: 10}, 100, 80); ok {
		t.Error("point behind the camera must be invisible")
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom != 10 {
		t.Errorf("zoom should cap at 10, got %f", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom != 0.1 {
		t.Errorf("zoom should floor at 0.1, got %f", cam.Zoom)
	}
}

func TestRotatePointKeepsLength(t *testing.T) {
	cam := NewCamera()
	cam.RotX, cam.RotY, cam.RotZ = 0.3, 1.1, -0.4
	p := Vec3{X: 1, Y: 2, Z: 3}
	if d := math.Abs(cam.RotatePoint(p).Length() - p.Length()); d > 1e-9 {
		t.Errorf("rotation changed length by %g", d)
	}
}

func TestSceneWireframe(t *testing.T) {
	s := playback.New()
	if err := s.Load(3); err != nil {
		t.Fatal(err)
	}

	wf := SceneWireframe(s.Layout(), s.Disks(), len(DiskPalette))
	want := 12 + 3 + 3*2*ringSegments
	if len(wf.Edges) != want {
		t.Errorf("expected %d edges, got %d", want, len(wf.Edges))
	}

	pens := map[int]int{}
	for _, e := range wf.Edges {
		pens[e.Pen]++
	}
	if pens[PenBase] != 12 || pens[PenRod] != 3 {
		t.Errorf("unexpected pen counts %v", pens)
	}
	for rank := 0; rank < 3; rank++ {
		if pens[PenDisk+rank] != 2*ringSegments {
			t.Errorf("disk %d: expected %d edges, got %d", rank, 2*ringSegments, pens[PenDisk+rank])
		}
	}

	for _, e := range wf.Edges {
		for _, p := range []Vec3{e.Start, e.End} {
			if math.Abs(p.X) > 1.3 || math.Abs(p.Y) > 1.3 {
				t.Fatalf("edge outside the fitted scene: %+v", p)
			}
		}
	}
}

func TestRender3DDrawsScene(t *testing.T) {
	c := NewCanvas(60, 20)
	layout := anim.NewLayout(5)
	wf := SceneWireframe(layout, nil, 0)
	Render3D(c, wf, NewCamera())
	if c.Dots() == 0 {
		t.Error("expected the base and rods to be drawn")
	}
	Render3D(nil, wf, NewCamera())
}

func TestRestingDisks(t *testing.T) {
	tw := hanoi.NewTower(3, hanoi.A)
	for _, m := range hanoi.Solve(3, hanoi.A, hanoi.C, hanoi.B)[:4] {
		if _, err := tw.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	layout := anim.NewLayout(3)
	disks := RestingDisks(layout, tw.Snapshot())
	if len(disks) != 3 {
		t.Fatalf("expected 3 disks, got %d", len(disks))
	}
	// after four moves: largest alone on C, the other two stacked on B
	if got, want := disks[2].Position, layout.SlotPosition(0, 2); got != want {
		t.Errorf("disk 2 at %v, want %v", got, want)
	}
	if got, want := disks[0].Position, layout.SlotPosition(1, 1); got != want {
		t.Errorf("disk 0 at %v, want %v", got, want)
	}
	if disks[0].Radius >= disks[2].Radius {
		t.Error("expected radius to grow with rank")
	}
}

func TestStill(t *testing.T) {
	cfg := config.DefaultConfig()
	c, err := Still(cfg, 3, 7, 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dots() == 0 {
		t.Error("expected a drawn scene")
	}
	if _, err := Still(cfg, 3, 8, 40, 20); err == nil {
		t.Error("expected error for step past the end")
	}
	if _, err := Still(cfg, 2, 0, 40, 20); err == nil {
		t.Error("expected error for too few disks")
	}
}

func TestDiskColorFollowsStackOrder(t *testing.T) {
	tests := []struct {
		n, rank, want int
	}{
		{3, 2, 0},
		{3, 0, 2},
		{7, 6, 0},
		{7, 1, 0},
		{7, 0, 1},
		{8, 0, 2},
	}
	for _, tt := range tests {
		if got := DiskColor(tt.n, tt.rank, len(DiskPalette)); got != tt.want {
			t.Errorf("DiskColor(%d, %d) = %d, want %d", tt.n, tt.rank, got, tt.want)
		}
	}
}

func TestSceneLargestDiskTakesFirstColour(t *testing.T) {
	s := playback.New()
	if err := s.Load(7); err != nil {
		t.Fatal(err)
	}
	disks := s.Disks()
	wf := SceneWireframe(s.Layout(), disks[6:], len(DiskPalette))
	for _, e := range wf.Edges {
		if e.Pen > PenDisk {
			t.Fatalf("largest disk drawn with pen %d, want %d", e.Pen, PenDisk)
		}
	}
}
