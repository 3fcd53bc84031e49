// Package registry provides the central "glue" for the data source system.
//
// The Registry maps the string names used in layout files (e.g.
// "disk_used") to compiled Go factory functions that construct the matching
// data source. During application startup every metric module registers its
// factories and per-cycle samplers here; once configuration loading begins
// the table is read-only, which is what makes later lookups safe without
// locking.
package registry
