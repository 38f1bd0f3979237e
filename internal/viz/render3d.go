package viz

import (
	"math"
	"sort"

	"github.com/san-kum/hanoi/internal/anim"
	"github.com/san-kum/hanoi/internal/playback"
)

type Vec3 = anim.Vec3

// Camera manages 3D projection to a 2D plane.
type Camera struct {
	Position         Vec3
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Position: Vec3{X: 0, Y: 0, Z: 5}, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
	Pen        int
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                  { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, pen int) { w.Edges = append(w.Edges, Edge{s, e, pen}) }
func (w *Wireframe) AddPoint(p Vec3, pen int)   { w.Edges = append(w.Edges, Edge{p, p, pen}) }
func (w *Wireframe) Clear()                     { w.Edges = w.Edges[:0] }

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Pen            int
}

// Render3D draws the wireframe to the canvas, far edges first, so nearer
// edges own the colour of shared cells.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.SubWidth(), c.SubHeight()
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Pen})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		c.SetPen(e.Pen)
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Set(e.X1, e.Y1)
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
	c.SetPen(NoPen)
}

// Pens used by the scene: base and rods first, then one per disk colour.
const (
	PenBase = iota
	PenRod
	PenDisk
)

const ringSegments = 24

// SceneWireframe builds the base box, the three rods and every disk as a
// pair of rings (outer and inner edge of the torus), all scaled so the
// scene spans roughly [-1.2, 1.2] regardless of disk count.
func SceneWireframe(layout anim.Layout, disks []playback.DiskView, diskColors int) *Wireframe {
	w := NewWireframe()
	size := layout.BaseSize()
	fit := 2.4 / math.Max(size.X, layout.LiftHeight()+2)
	centre := Vec3{Y: layout.LiftHeight() / 2}
	tr := func(p Vec3) Vec3 { return p.Sub(centre).Scale(fit) }

	// base box centred at (0, -1, 0)
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	v := []Vec3{
		{X: -hx, Y: -1 - hy, Z: -hz}, {X: hx, Y: -1 - hy, Z: -hz}, {X: hx, Y: -1 + hy, Z: -hz}, {X: -hx, Y: -1 + hy, Z: -hz},
		{X: -hx, Y: -1 - hy, Z: hz}, {X: hx, Y: -1 - hy, Z: hz}, {X: hx, Y: -1 + hy, Z: hz}, {X: -hx, Y: -1 + hy, Z: hz},
	}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for _, e := range ei {
		w.AddEdge(tr(v[e[0]]), tr(v[e[1]]), PenBase)
	}

	for col := 0; col < 3; col++ {
		foot := layout.RodPosition(col)
		top := foot.Add(Vec3{Y: layout.RodHeight()})
		w.AddEdge(tr(foot), tr(top), PenRod)
	}

	tube := layout.DiskTube()
	for _, d := range disks {
		pen := PenDisk
		if diskColors > 0 {
			pen += DiskColor(layout.N, d.Rank, diskColors)
		}
		addRing(w, d.Position, d.Radius+tube, pen, tr)
		addRing(w, d.Position, math.Max(d.Radius-tube, 0.2), pen, tr)
	}
	return w
}

// DiskColor picks the palette slot for a disk. Colours are dealt from the
// bottom of the starting stack up, so the largest disk always takes the
// first colour whatever the disk count.
func DiskColor(n, rank, colors int) int {
	i := (n - 1 - rank) % colors
	if i < 0 {
		i += colors
	}
	return i
}

// addRing adds a horizontal circle of radius r around centre.
func addRing(w *Wireframe, centre Vec3, r float64, pen int, tr func(Vec3) Vec3) {
	prev := centre.Add(Vec3{X: r})
	for i := 1; i <= ringSegments; i++ {
		a := float64(i) * 2 * math.Pi / ringSegments
		p := centre.Add(Vec3{X: r * math.Cos(a), Z: r * math.Sin(a)})
		w.AddEdge(tr(prev), tr(p), pen)
		prev = p
	}
}
