// Package stopwatch holds the timing state behind the stopwatch display:
// accumulated elapsed time across start/stop cycles, the lap boundary
// sequence and the pure derivations (formatted time, lap rows, control
// availability) that the view recomputes on every redraw.
package stopwatch
