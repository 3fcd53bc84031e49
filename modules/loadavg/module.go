// Package loadavg exposes the system load averages.
package loadavg

import (
	"context"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/vk/sysglance/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var load1, load5, load15 float64

func sample(ctx context.Context) error {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return err
	}
	load1 = avg.Load1
	load5 = avg.Load5
	load15 = avg.Load15
	return nil
}

// Register registers the package's sources and sampler with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterVariable(r, "load_avg_1", &load1)
	registry.RegisterVariable(r, "load_avg_5", &load5)
	registry.RegisterVariable(r, "load_avg_15", &load15)
	r.AddSampler("loadavg", sample)
}
