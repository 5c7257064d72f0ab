package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "https://api.sr.se/api/v2", cfg.API.BaseURL)
	assert.Equal(t, Duration(30*time.Second), cfg.API.Timeout)
	assert.Equal(t, Duration(time.Hour), cfg.Refresh.Interval)
	assert.Equal(t, "www.google.com:443", cfg.Probe.Address)
	assert.Equal(t, Duration(5*time.Second), cfg.Probe.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverridesAndEnvExpansion(t *testing.T) {
	t.Setenv("RADIOPLAN_BASE_URL", "http://localhost:9999/v2")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: ${RADIOPLAN_BASE_URL}
  timeout: 10s
refresh:
  interval: 30m
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v2", cfg.API.BaseURL)
	assert.Equal(t, Duration(10*time.Second), cfg.API.Timeout)
	assert.Equal(t, Duration(30*time.Minute), cfg.Refresh.Interval)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys still get defaults
	assert.Equal(t, "www.google.com:443", cfg.Probe.Address)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not: a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
