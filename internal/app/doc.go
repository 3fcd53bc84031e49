// Package app wires the monitor together: it builds the logger, runs the
// explicit registration phase over the compiled-in metric modules, loads
// and binds the layout, and drives the sample-then-render cycle.
package app
