// Package cpu exposes processor utilization data sources.
package cpu

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/vk/sysglance/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Package-owned readings, refreshed once per cycle by sample. Sources wrap
// these directly; the render loop never queries while sample is running.
var (
	usagePercent float64
	coreCount    int
)

// sample refreshes the readings. cpu.Percent with a zero interval reports
// utilization since the previous call, so the first cycle reads as zero.
func sample(ctx context.Context) error {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return err
	}
	if len(percents) > 0 {
		usagePercent = percents[0]
	}

	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return err
	}
	coreCount = count
	return nil
}

// Register registers the package's sources and sampler with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterVariable(r, "cpu_usage", &usagePercent)
	registry.RegisterVariable(r, "cpu_count", &coreCount)
	r.AddSampler("cpu", sample)
}
