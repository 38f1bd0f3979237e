package anim

// Disk is the rendered side of a puzzle disk: a position that chases a
// list of keyframes.
type Disk struct {
	Rank   int
	Radius float64

	pos      Vec3
	keys     []Keyframe
	keyIndex int
	timer    float64
	armed    bool
}

func NewDisk(rank int, radius float64, pos Vec3) *Disk {
	return &Disk{Rank: rank, Radius: radius, pos: pos}
}

func (d *Disk) Position() Vec3     { return d.pos }
func (d *Disk) SetPosition(p Vec3) { d.pos = p }

// SetTarget installs a new set of keyframes and rewinds the cursor.
func (d *Disk) SetTarget(keys []Keyframe) {
	d.keys = keys
	d.keyIndex = 0
	d.armed = false
}

// Animating reports whether a keyframe is still pending.
func (d *Disk) Animating() bool { return d.keyIndex < len(d.keys) }

func (d *Disk) KeyIndex() int { return d.keyIndex }

// Current returns the active keyframe, if any.
func (d *Disk) Current() (Keyframe, bool) {
	if !d.Animating() {
		return Keyframe{}, false
	}
	return d.keys[d.keyIndex], true
}

// Update advances the disk by one tick. The position moves Smoothing of the
// way toward the current keyframe; the keyframe ends when its duration has
// elapsed since the first tick it was current, whether or not the position
// has arrived.
func (d *Disk) Update(delta float64) {
	k, ok := d.Current()
	if !ok {
		return
	}
	d.pos = d.pos.Lerp(k.Target, Smoothing)

	if !d.armed {
		d.timer = delta + k.Duration
		d.armed = true
	}
	if delta >= d.timer {
		d.armed = false
		d.keyIndex++
		if d.keyIndex == len(d.keys) {
			d.keys = nil
			d.keyIndex = 0
		}
	}
}
