package anim

const (
	// Smoothing is the per-tick exponential smoothing factor.
	Smoothing = 0.3

	LiftDuration      = 250.0
	TranslateDuration = 500.0
	LowerDuration     = 250.0

	// StepDuration is the time one move occupies before the next may start.
	StepDuration = LiftDuration + TranslateDuration + LowerDuration
)

// Keyframe is one waypoint of a disk transition. Duration is in the same
// unit as the tick delta (milliseconds in the live view).
type Keyframe struct {
	Origin   Vec3
	Target   Vec3
	Duration float64
}

// ArcKeyframes builds the lift, translate, lower arc from "from" to "to",
// travelling at height lift.
func ArcKeyframes(from, to Vec3, lift float64) []Keyframe {
	return []Keyframe{
		{Origin: from, Target: Vec3{from.X, lift, from.Z}, Duration: LiftDuration},
		{Origin: from, Target: Vec3{to.X, lift, to.Z}, Duration: TranslateDuration},
		{Origin: from, Target: to, Duration: LowerDuration},
	}
}

// Scale returns a copy of keys with every duration multiplied by f.
func Scale(keys []Keyframe, f float64) []Keyframe {
	out := make([]Keyframe, len(keys))
	for i, k := range keys {
		k.Duration *= f
		out[i] = k
	}
	return out
}
