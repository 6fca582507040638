// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644), "failed to write test config")
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 8080
log_level = "debug"

[catalog]
path = "/srv/moviecat/db.json"

[stats]
url = "https://stats.example.com/stats.json"
ttl = "2m"
timeout = "3s"
warm_interval = "1m"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/srv/moviecat/db.json", cfg.Catalog.Path)
	assert.Equal(t, "https://stats.example.com/stats.json", cfg.Stats.URL)
	assert.Equal(t, 2*time.Minute, cfg.Stats.TTL)
	assert.Equal(t, 3*time.Second, cfg.Stats.Timeout)
	assert.Equal(t, time.Minute, cfg.Stats.WarmInterval)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "./db.json", cfg.Catalog.Path)
	assert.Equal(t, 5*time.Minute, cfg.Stats.TTL)
	assert.Equal(t, 10*time.Second, cfg.Stats.Timeout)
	assert.Zero(t, cfg.Stats.WarmInterval)
	assert.Empty(t, cfg.Stats.URL, "statistics stay disabled unless configured")
}

func TestLoad_MissingEnvVar(t *testing.T) {
	cfgPath := writeConfig(t, `
[stats]
url = "${MOVIECAT_TEST_MISSING_URL_98765}"
`)

	_, err := Load(cfgPath)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"MOVIECAT_TEST_MISSING_URL_98765"}, cfgErr.Missing)
	assert.Equal(t, cfgPath, cfgErr.Path)
}

func TestLoad_EnvVarSubstituted(t *testing.T) {
	t.Setenv("MOVIECAT_TEST_STATS_URL", "http://localhost:9000/stats")

	cfg, err := Load(writeConfig(t, `
[stats]
url = "${MOVIECAT_TEST_STATS_URL}"
`))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/stats", cfg.Stats.URL)
}

func TestLoad_EnvVarDefault(t *testing.T) {
	t.Setenv("MOVIECAT_TEST_OPTIONAL_HOST", "")

	cfg, err := Load(writeConfig(t, `
[server]
host = "${MOVIECAT_TEST_OPTIONAL_HOST:-localhost}"
`))
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_ValidationError(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
port = 99999
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, `[server`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutValidation(t *testing.T) {
	cfg, err := LoadWithoutValidation(writeConfig(t, `
[server]
port = 99999
`))
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.Server.Port)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultStatsURL, cfg.Stats.URL)
	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Empty(t, cfg.Validate())
}
