package anim

// Layout derives the scene geometry from the disk count. All values are in
// scene units; rods stand on the XZ plane at y=0, spaced along X.
type Layout struct {
	N int
}

func NewLayout(n int) Layout { return Layout{N: n} }

// Gap is the distance between neighbouring rods.
func (l Layout) Gap() float64 { return 10 * float64(l.N) / 3 }

func (l Layout) RodHeight() float64 {
	return 2*float64(l.N) - float64(l.N-1)*0.75
}

// LiftHeight is the travel height of a disk moving between rods.
func (l Layout) LiftHeight() float64 { return l.RodHeight() + 3 }

// SlotPosition returns the centre of the disk at stack depth row on rod
// column col.
func (l Layout) SlotPosition(row, col int) Vec3 {
	gap := l.Gap()
	r := float64(row)
	return Vec3{
		X: -gap + float64(col)*gap,
		Y: r*2 + 1 - r*0.75,
		Z: 0,
	}
}

// RodPosition is the foot of rod col.
func (l Layout) RodPosition(col int) Vec3 {
	gap := l.Gap()
	return Vec3{X: -gap + gap*float64(col)}
}

// DiskUnit is the radius step between consecutive disk ranks.
func (l Layout) DiskUnit() float64 {
	if l.N == 0 {
		return 0
	}
	return ((l.Gap() - 3) / 2) / float64(l.N)
}

// DiskRadius of rank 0 is one unit, each larger rank adds one more.
func (l Layout) DiskRadius(rank int) float64 {
	u := l.DiskUnit()
	return u + float64(rank)*u
}

// DiskTube is the torus tube radius.
func (l Layout) DiskTube() float64 { return 1 }

// BaseSize is the width, height and depth of the base box, centred at
// (0, -1, 0).
func (l Layout) BaseSize() Vec3 {
	gap := l.Gap()
	return Vec3{X: gap*3 + 4, Y: 2, Z: gap + 4}
}

// CameraPosition is the initial eye point for the scene.
func (l Layout) CameraPosition() Vec3 {
	return Vec3{X: 0, Y: l.RodHeight(), Z: l.Gap()*2 + 10}
}
