package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, []string{DefaultAllowedOrigin}, cfg.AllowedOrigins)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.Log.JSON)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.CheckLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.CheckWindow)
	assert.Empty(t, cfg.RateLimit.Whitelist)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_PATH", "/etc/roles.json")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, http://localhost:5173")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_CHECK_WINDOW", "2m")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1,10.0.0.2")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/etc/roles.json", cfg.CatalogPath)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.CheckWindow)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.Whitelist)
}

func TestLoad_ConfigFile(t *testing.T) {
	content := `
port: 7000
allowed_origins:
  - https://prep.example.com
log:
  debug: true
rate_limit:
  check_limit: 5
  check_burst: 1
`
	path := filepath.Join(t.TempDir(), "resume_matcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, []string{"https://prep.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 5, cfg.RateLimit.CheckLimit)
	assert.Equal(t, 1, cfg.RateLimit.CheckBurst)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 7000}`), 0o600))
	t.Setenv("PORT", "7001")

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Port)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "PORT", "70000"},
		{"zero upload cap", "MAX_UPLOAD_BYTES", "0"},
		{"negative limit", "RATE_LIMIT_CHECK_LIMIT", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			cfg, err := Load(NewViper(), "")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{" a , b", "", "c "}))
	assert.Empty(t, splitList(nil))
}
