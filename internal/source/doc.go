// Package source defines the data source capability: anything that can
// report a current numeric and textual reading.
//
// A data source is queried on every render cycle, potentially many times per
// second, so both accessors must be cheap, allocation-light reads over state
// that is owned and updated elsewhere. Sources never sample, block, or do
// I/O themselves; the per-cycle samplers in modules/ do that before any
// source is queried.
package source
