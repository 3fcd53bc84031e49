package source

import (
	"math"
	"strconv"
)

// Source is the capability every data source implements.
//
// Number returns the current numeric reading, or NaN when the source has no
// numeric meaning. Text returns the current human-facing string. Both are
// pure accessors: no side effects, no blocking, safe to call at render
// frequency.
type Source interface {
	// Name returns the name the source was constructed under.
	Name() string

	Number() float64
	Text() string
}

// Format renders a numeric reading the way the default Text implementation
// does: fixed six-decimal notation, locale-independent. NaN renders as the
// empty string so a source with no numeric meaning displays as blank unless
// it overrides Text.
func Format(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
