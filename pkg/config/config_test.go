package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 7000, cfg.Frequency.MaxLength)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL)
}

func TestLoadFrom_File(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "127.0.0.1:9000"
  shutdown_timeout: 3s
frequency:
  max_length: 12
log:
  level: debug
  format: text
rate_limit:
  rps: 0
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 12, cfg.Frequency.MaxLength)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Zero(t, cfg.RateLimit.RPS)

	// 未設定的欄位使用預設值
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "frequency:\n  max_length: 12\n")
	t.Setenv("CHARFREQ_FREQUENCY_MAX_LENGTH", "42")
	t.Setenv("CHARFREQ_SERVER_ADDRESS", ":9999")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Frequency.MaxLength)
	assert.Equal(t, ":9999", cfg.Server.Address)
}

func TestLoadFrom_Errors(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFrom(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}
