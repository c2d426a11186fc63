// Package viz provides terminal output for ring simulations.
//
//   - [Summary]: lipgloss panel with run parameters and metrics
//   - [PlotDensity], [PlotEvolution]: asciigraph plots of densities
//   - [LiveModel]: Bubble Tea program that animates a running system
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	+/-   - More/fewer steps per frame
//	Q     - Quit
package viz
