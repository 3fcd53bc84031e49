//go:build !nohttp

// Package httpprobe exposes HTTP endpoint probe data sources:
// http_status(url) and http_latency_ms(url). Probing happens in the
// per-cycle sampler, never in the source accessors.
//
// Building with the nohttp tag swaps the whole package for disabled
// placeholder registrations.
package httpprobe

import (
	"context"
	"time"

	"github.com/vk/sysglance/internal/registry"
	"github.com/vk/sysglance/internal/source"
	"resty.dev/v3"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// probe holds the readings for one watched endpoint.
type probe struct {
	status    float64
	latencyMS float64
}

var (
	client  = resty.New().SetTimeout(5 * time.Second)
	watched = map[string]*probe{}
)

func watch(url string) *probe {
	if p, ok := watched[url]; ok {
		return p
	}
	p := &probe{}
	watched[url] = p
	return p
}

func sample(ctx context.Context) error {
	var firstErr error
	for url, p := range watched {
		res, err := client.R().SetContext(ctx).Get(url)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		p.status = float64(res.StatusCode())
		p.latencyMS = float64(res.Duration()) / float64(time.Millisecond)
	}
	return firstErr
}

// urlArgs is the argument spec shared by both probe constructors.
type urlArgs struct {
	URL string `cty:"url"`
}

// Register registers the package's sources and sampler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register("http_status", registry.Typed(func(_ context.Context, name string, args urlArgs) (source.Source, error) {
		return source.NewNumeric(name, &watch(args.URL).status), nil
	}))
	r.Register("http_latency_ms", registry.Typed(func(_ context.Context, name string, args urlArgs) (source.Source, error) {
		return source.NewNumeric(name, &watch(args.URL).latencyMS), nil
	}))
	r.AddSampler("httpprobe", sample)
}
