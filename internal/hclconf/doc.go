// Package hclconf loads the monitor layout from HCL and binds each row to
// a constructed data source.
//
// Row value expressions are evaluated against the constructors the bridge
// exports, so a layout instantiates sources by name exactly as it would
// call a function. Loading happens once, single-threaded, before the render
// loop starts; a diagnostic from any expression aborts the load.
package hclconf
