package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/sysglance/internal/ctxlog"
)

// Run drives the render cycle: refresh every sampler, then query and print
// every bound row. It returns when the context is cancelled or, if
// Config.Cycles is positive, after that many cycles.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Starting render loop.", "interval", a.model.Interval, "panels", len(a.model.Panels))

	ticker := time.NewTicker(a.model.Interval)
	defer ticker.Stop()

	cycle := 0
	for {
		// Samplers run strictly before any source is queried within a
		// cycle; that ordering is the synchronization contract sources
		// rely on.
		if err := a.registry.Sample(ctx); err != nil {
			a.logger.Warn("Sampling cycle reported an error.", "error", err)
		}
		a.render()

		cycle++
		if a.cfg.Cycles > 0 && cycle >= a.cfg.Cycles {
			a.logger.Info("Cycle limit reached, stopping.", "cycles", cycle)
			return nil
		}

		select {
		case <-ctx.Done():
			a.logger.Info("Render loop cancelled.")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// render prints one frame of the layout to the output writer.
func (a *App) render() {
	for _, panel := range a.model.Panels {
		fmt.Fprintf(a.outW, "[%s]\n", panel.Title)
		for _, row := range panel.Rows {
			text := row.Source.Text()
			if row.Format != "" {
				text = fmt.Sprintf(row.Format, row.Source.Number())
			}
			fmt.Fprintf(a.outW, "  %-16s %s\n", row.Label, text)
		}
	}
}
