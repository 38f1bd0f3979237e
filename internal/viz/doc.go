// Package viz renders the puzzle in the terminal.
//
// The scene (base, rods and ring-shaped disks) is built as a wireframe,
// projected through a simple perspective [Camera] and rasterised onto a
// braille [Canvas], one colour pen per cell. [Model] is the Bubble Tea
// program that owns a playback.Scheduler and drives it from the frame clock.
//
// # Key Bindings
//
//	Space - Start/Stop playback
//	R     - Reload the puzzle
//	+/-   - Change the disk count (3 to 25)
//	x/y   - Rotate the camera (shift reverses)
//	z/Z ] [ - Zoom in and out
//	T     - Cycle color themes
//	?     - Show help overlay
//
// Plans are solved in a command off the frame loop: 25 disks means
// 33554431 moves, which takes a noticeable moment.
package viz
