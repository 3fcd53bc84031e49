// Package disk exposes filesystem usage data sources. The layout picks the
// mount point per row, e.g. disk_used_perc("/home"), so the constructors
// take a path argument.
package disk

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/vk/sysglance/internal/registry"
	"github.com/vk/sysglance/internal/source"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// stats holds the readings for one watched mount point.
type stats struct {
	total       uint64
	used        uint64
	free        uint64
	usedPercent float64
}

// watched collects every mount point the layout referenced. Construction
// happens single-threaded at load time, the sampler walks the map each
// cycle afterwards, so no locking is needed.
var watched = map[string]*stats{}

func watch(path string) *stats {
	if st, ok := watched[path]; ok {
		return st
	}
	st := &stats{}
	watched[path] = st
	return st
}

func sample(ctx context.Context) error {
	var firstErr error
	for path, st := range watched {
		usage, err := disk.UsageWithContext(ctx, path)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		st.total = usage.Total
		st.used = usage.Used
		st.free = usage.Free
		st.usedPercent = usage.UsedPercent
	}
	return firstErr
}

// pathArgs is the argument spec shared by all disk constructors.
type pathArgs struct {
	Path string `cty:"path"`
}

// Register registers the package's sources and sampler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("disk_total", registry.Typed(func(_ context.Context, name string, args pathArgs) (source.Source, error) {
		return source.NewNumeric(name, &watch(args.Path).total), nil
	}))
	r.Register("disk_used", registry.Typed(func(_ context.Context, name string, args pathArgs) (source.Source, error) {
		return source.NewNumeric(name, &watch(args.Path).used), nil
	}))
	r.Register("disk_free", registry.Typed(func(_ context.Context, name string, args pathArgs) (source.Source, error) {
		return source.NewNumeric(name, &watch(args.Path).free), nil
	}))
	r.Register("disk_used_perc", registry.Typed(func(_ context.Context, name string, args pathArgs) (source.Source, error) {
		return source.NewNumeric(name, &watch(args.Path).usedPercent), nil
	}))
	r.AddSampler("disk", sample)
}
