package source

import (
	"fmt"
	"math"
)

// disabledValue is the shared sentinel every disabled source points at.
var disabledValue = math.NaN()

// Disabled stands in for a source that was compiled out. Its numeric
// reading is always NaN and its text names the build option that would
// bring the real source back, so a layout referencing it degrades to a
// diagnostic instead of failing to load.
type Disabled struct {
	Numeric[float64]
	option string
}

// NewDisabled returns a placeholder source for name, naming option as the
// build option that enables the real implementation.
func NewDisabled(name, option string) *Disabled {
	return &Disabled{
		Numeric: Numeric[float64]{name: name, v: &disabledValue},
		option:  option,
	}
}

func (d *Disabled) Text() string {
	return fmt.Sprintf("data source %q was disabled at build time, rebuild with %q enabled", d.Name(), d.option)
}
