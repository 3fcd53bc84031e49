package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/sysglance/internal/ctxlog"
	"github.com/vk/sysglance/internal/source"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all metric modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Factory constructs a data source from the raw argument list a layout
// expression supplied. Implementations report *TypeMismatchError when the
// arguments don't fit; use Typed to get that decoding for free.
type Factory func(ctx context.Context, name string, args []cty.Value) (source.Source, error)

// SampleFunc refreshes the variables a module's sources read. The render
// loop runs every registered sampler once per cycle, strictly before any
// source is queried.
type SampleFunc func(ctx context.Context) error

type sampler struct {
	name string
	fn   SampleFunc
}

// Registry holds the registered data source factories and samplers for a
// single application instance.
type Registry struct {
	sources  map[string]Factory
	samplers []sampler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		sources: make(map[string]Factory),
	}
}

// Register inserts a factory under name. Registering an already-present
// name replaces the previous factory: last registration wins. This is
// deliberate, so a build-tag variant of a module can re-register a name as
// a disabled placeholder.
func (r *Registry) Register(name string, factory Factory) {
	if name == "" {
		panic("data source registered with an empty name")
	}
	if _, exists := r.sources[name]; exists {
		slog.Warn("Data source name registered twice, keeping the later factory.", "name", name)
	} else {
		slog.Debug("Registering data source factory.", "name", name)
	}
	r.sources[name] = factory
}

// Construct looks up the factory for name and invokes it with args. An
// unregistered name fails with *NotFoundError and constructs nothing; any
// other failure comes from the factory itself.
func (r *Registry) Construct(ctx context.Context, name string, args []cty.Value) (source.Source, error) {
	factory, ok := r.sources[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return factory(ctx, name, args)
}

// Names returns every registered source name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddSampler registers a per-cycle update hook. Samplers run in
// registration order.
func (r *Registry) AddSampler(name string, fn SampleFunc) {
	slog.Debug("Registering sampler.", "name", name)
	r.samplers = append(r.samplers, sampler{name: name, fn: fn})
}

// Sample runs every registered sampler once. A failing sampler does not
// stop the others; its sources simply keep their previous readings for
// this cycle.
func (r *Registry) Sample(ctx context.Context) error {
	var firstErr error
	for _, s := range r.samplers {
		if err := s.fn(ctx); err != nil {
			ctxlog.FromContext(ctx).Error("Sampler failed.", "name", s.name, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("sampler %q: %w", s.name, err)
			}
		}
	}
	return firstErr
}
