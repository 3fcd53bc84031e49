// Package uptime exposes the host uptime, with a human-readable textual
// form on top of the raw seconds reading.
package uptime

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/vk/sysglance/internal/registry"
	"github.com/vk/sysglance/internal/source"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var seconds uint64

func sample(ctx context.Context) error {
	up, err := host.UptimeWithContext(ctx)
	if err != nil {
		return err
	}
	seconds = up
	return nil
}

// prettySource overrides the default text with a days/hours/minutes
// rendering while keeping the raw seconds as the numeric reading.
type prettySource struct {
	*source.Numeric[uint64]
}

func (s *prettySource) Text() string {
	secs := uint64(s.Number())
	days := secs / 86400
	hours := secs % 86400 / 3600
	mins := secs % 3600 / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// Register registers the package's sources and sampler with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterVariable(r, "uptime_secs", &seconds)
	r.Register("uptime", registry.Typed(func(_ context.Context, name string, _ struct{}) (source.Source, error) {
		return &prettySource{Numeric: source.NewNumeric(name, &seconds)}, nil
	}))
	r.AddSampler("uptime", sample)
}
