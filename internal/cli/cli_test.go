package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionalLayoutPath(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"layout.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "layout.hcl", cfg.LayoutPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Cycles)
}

func TestParseFlagsWinOverPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"--layout", "a.hcl", "--cycles", "3", "--log-level", "debug"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "a.hcl", cfg.LayoutPath)
	assert.Equal(t, 3, cfg.Cycles)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseMissingLayoutIsExitError(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse(nil, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseHelpExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"--help"}, &out)
	require.NoError(t, err)

	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "sysglance")
}
