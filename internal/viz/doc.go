// Package viz is the terminal visualizer for the solar-system simulation.
//
// It implements an interactive session on the Bubble Tea framework:
//
//   - [Session]: owns playback state (pause, time scale, focus, view) and
//     polls the simulation core once per animation tick
//   - [Canvas]: Braille-based pixel canvas for orbit and trail rendering
//
// The session never mutates the core's internals directly; pause and time
// scale are purely multipliers on the dt handed to Simulate.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	+/-   - Time scale up/down
//	Tab   - Cycle focused body
//	I     - Toggle inner/outer view
//	T     - Toggle trails
//	Q     - Quit
package viz
