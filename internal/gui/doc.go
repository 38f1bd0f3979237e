// Package gui opens the scene in a raylib window: solid base, rods and
// disks lit in 3D, with an orbit camera and a small heads-up display.
//
// Geometry and colours are worked out in scene.go without touching the
// window, so they can be checked headless. Build with -tags nogui to leave
// raylib (and cgo) out entirely.
package gui
