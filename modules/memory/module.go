// Package memory exposes physical memory and swap data sources.
package memory

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/vk/sysglance/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Package-owned readings, refreshed once per cycle by sample.
var (
	total       uint64
	used        uint64
	available   uint64
	usedPercent float64
	swapTotal   uint64
	swapUsed    uint64
)

func sample(ctx context.Context) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	total = vm.Total
	used = vm.Used
	available = vm.Available
	usedPercent = vm.UsedPercent

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	swapTotal = swap.Total
	swapUsed = swap.Used
	return nil
}

// Register registers the package's sources and sampler with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterVariable(r, "mem_total", &total)
	registry.RegisterVariable(r, "mem_used", &used)
	registry.RegisterVariable(r, "mem_available", &available)
	registry.RegisterVariable(r, "mem_used_perc", &usedPercent)
	registry.RegisterVariable(r, "swap_total", &swapTotal)
	registry.RegisterVariable(r, "swap_used", &swapUsed)
	r.AddSampler("memory", sample)
}
