package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/artable/internal/artwork"
	"github.com/rshade/artable/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		config.EnvAPIURL, config.EnvUserAgent, config.EnvLogLevel,
		config.EnvLogFormat, config.EnvLogFile, config.EnvMetricsAddr,
	} {
		t.Setenv(env, "")
	}
}

func TestNew_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	cfg := config.New()

	assert.Equal(t, artwork.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, artwork.DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, filepath.Join(home, "logs", "artable.log"), cfg.Logging.File)
	assert.Empty(t, cfg.Metrics.Listen)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, artwork.DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoad_FileThenDefaultsFillGaps(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	clearEnv(t)
	path := writeOverlay(t, `
api:
  base_url: http://localhost:8080/api/v1
logging:
  level: warn
metrics:
  listen: 127.0.0.1:9464
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
	// Replaced sections get their defaults back.
	assert.Equal(t, artwork.DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Listen)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	clearEnv(t)
	path := writeOverlay(t, "logging:\n  level: warn\n")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvAPIURL, "http://127.0.0.1:1/api/v1")
	t.Setenv(config.EnvMetricsAddr, ":9999")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "http://127.0.0.1:1/api/v1", cfg.API.BaseURL)
	assert.Equal(t, ":9999", cfg.Metrics.Listen)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "relative url", content: "api:\n  base_url: api.artic.edu\n", wantErr: "api.base_url"},
		{name: "ftp url", content: "api:\n  base_url: ftp://api.artic.edu\n", wantErr: "api.base_url"},
		{name: "bad format", content: "logging:\n  format: xml\n", wantErr: "logging.format"},
		{name: "corrupt yaml", content: "api: [\n", wantErr: "parsing config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeOverlay(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv_IgnoresBlank(t *testing.T) {
	cfg := newDefaultTarget()
	env := map[string]string{
		config.EnvLogLevel:  "   ",
		config.EnvUserAgent: "custom-agent",
	}

	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "custom-agent", cfg.API.UserAgent)
}

func TestConfig_YAML(t *testing.T) {
	out, err := newDefaultTarget().YAML()
	require.NoError(t, err)

	assert.Contains(t, out, "base_url: https://api.example.test/v1")
	assert.Contains(t, out, "9464")
	assert.Contains(t, out, "level: info")
}

func TestGlobalConfig(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	first := config.GetGlobalConfig()
	require.NotNil(t, first)
	assert.Same(t, first, config.GetGlobalConfig())

	custom := newDefaultTarget()
	config.SetGlobalConfig(custom)
	assert.Same(t, custom, config.GetGlobalConfig())
	assert.Equal(t, custom.Logging, config.GetLoggingConfig())
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	dir, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	path, err := config.GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)
}

func TestEnsureLogDir(t *testing.T) {
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	cfg := newDefaultTarget()
	cfg.Logging.File = filepath.Join(t.TempDir(), "nested", "logs", "artable.log")
	config.SetGlobalConfig(cfg)

	require.NoError(t, config.EnsureLogDir())
	assert.DirExists(t, filepath.Dir(cfg.Logging.File))

	cfg.Logging.File = ""
	require.NoError(t, config.EnsureLogDir())
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "console", File: "/tmp/a.log"}

	toFile := lc.ToLoggingConfig(true)
	assert.Equal(t, "file", toFile.Output)
	assert.Equal(t, "/tmp/a.log", toFile.File)
	assert.Equal(t, "debug", toFile.Level)

	assert.Equal(t, "stderr", lc.ToLoggingConfig(false).Output)

	lc.File = ""
	assert.Equal(t, "stderr", lc.ToLoggingConfig(true).Output)
}
