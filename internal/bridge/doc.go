// Package bridge adapts the registry's factory protocol to the cty calling
// convention the layout runtime uses.
//
// Every registered source name becomes a callable cty function; calling it
// from a layout expression constructs the source and returns it as a single
// capsule value carrying the bridge's type tag, so later evaluation stages
// can recognize and unwrap it. This is the only package that speaks the
// runtime's calling convention; everything else is convention-agnostic.
package bridge
