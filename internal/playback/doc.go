// Package playback steps a solved plan through time.
//
// A [Scheduler] is Idle after a load, Running while it dispatches moves and
// Paused when stopped part way. The frame loop calls Tick with a
// monotonically increasing clock; one move is dispatched per step duration
// and every disk in flight keeps easing toward its keyframes whatever the
// state. UI code observes transitions through Subscribe instead of being
// called from the scheduler.
package playback
