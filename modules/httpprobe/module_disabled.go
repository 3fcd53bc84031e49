//go:build nohttp

package httpprobe

import "github.com/vk/sysglance/internal/registry"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers disabled placeholders so layouts referencing the
// probe sources still load and show a diagnostic instead of failing.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterDisabled(r, "http_status", "http probe support")
	registry.RegisterDisabled(r, "http_latency_ms", "http probe support")
}
