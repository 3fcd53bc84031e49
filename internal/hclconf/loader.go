package hclconf

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sysglance/internal/bridge"
	"github.com/vk/sysglance/internal/ctxlog"
	"github.com/vk/sysglance/internal/registry"
)

// defaultInterval is used when the layout does not set one.
const defaultInterval = time.Second

// Load parses the layout file at path and binds it against the sources
// registered in reg.
func Load(ctx context.Context, reg *registry.Registry, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading layout file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout file %s: %s", path, diags.Error())
	}
	return bind(ctx, reg, file)
}

// LoadSource is Load over an in-memory layout, used by tests and embedders.
func LoadSource(ctx context.Context, reg *registry.Registry, filename string, src []byte) (*Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout %s: %s", filename, diags.Error())
	}
	return bind(ctx, reg, file)
}

// bind decodes the raw schema and evaluates every row's value expression
// against the exported constructors. The first failing expression aborts
// the load; the caller decides what to tell the user.
func bind(ctx context.Context, reg *registry.Registry, file *hcl.File) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode layout: %s", diags.Error())
	}

	interval := defaultInterval
	if raw.Monitor.Interval != "" {
		parsed, err := time.ParseDuration(raw.Monitor.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", raw.Monitor.Interval, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("interval must be positive, got %q", raw.Monitor.Interval)
		}
		interval = parsed
	}

	evalCtx := &hcl.EvalContext{
		Functions: bridge.ExportAll(ctx, reg),
	}

	model := &Model{Interval: interval}
	for _, p := range raw.Monitor.Panels {
		panel := Panel{Title: p.Title}
		for _, r := range p.Rows {
			val, diags := r.Value.Value(evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("panel %q, row %q: %s", p.Title, r.Label, diags.Error())
			}
			src, err := bridge.FromValue(val)
			if err != nil {
				return nil, fmt.Errorf("panel %q, row %q: %w", p.Title, r.Label, err)
			}
			panel.Rows = append(panel.Rows, Row{Label: r.Label, Source: src, Format: r.Format})
		}
		model.Panels = append(model.Panels, panel)
	}

	logger.Debug("Layout bound successfully.", "panels", len(model.Panels), "interval", interval)
	return model, nil
}
