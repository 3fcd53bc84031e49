package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sysglance/internal/ctxlog"
	"github.com/vk/sysglance/internal/hclconf"
	"github.com/vk/sysglance/internal/registry"
)

// App encapsulates the monitor's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *hclconf.Model
	cfg      *Config
}

// New is the constructor for the main application. It runs the whole
// startup sequence: logger, module registration, layout load. When modules
// is empty the compiled-in core modules are used. A failure to load the
// layout is a fatal startup error and panics; main recovers and turns it
// into a clean exit.
func New(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Explicit registration phase. The registry is read-only once this
	// loop finishes.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All metric modules registered.", "count", len(modules), "sources", len(reg.Names()))

	model, err := hclconf.Load(ctx, reg, cfg.LayoutPath)
	if err != nil {
		panic(fmt.Errorf("failed to load layout: %w", err))
	}
	logger.Debug("Layout loaded and bound.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		cfg:      cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the bound layout. This is primarily for testing.
func (a *App) Model() *hclconf.Model {
	return a.model
}
