// Package testutil provides shared helpers for tests that need a layout
// file on disk or a deterministic metric module.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sysglance/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteLayout writes content to a temp layout file and returns its path.
// The file is removed when the test finishes.
func WriteLayout(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// StaticModule is a deterministic metric module for tests. Its sampler
// copies Value into the variable the registered source reads, and counts
// how many cycles ran.
type StaticModule struct {
	Name  string
	Value float64

	Cycles  int
	current float64
}

// Register registers the module's source and sampler with the registry.
func (m *StaticModule) Register(r *registry.Registry) {
	registry.RegisterVariable(r, m.Name, &m.current)
	r.AddSampler(m.Name, func(context.Context) error {
		m.current = m.Value
		m.Cycles++
		return nil
	})
}
