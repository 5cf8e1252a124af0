package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Store.ConnectAttempts)
	assert.Equal(t, "https://en.wikipedia.org/w/api.php", cfg.Reference.APIURL)
	assert.Equal(t, "https://logo.clearbit.com", cfg.Logo.BaseURL)
	assert.Equal(t, 15, cfg.Fetch.TimeoutSecs)
	assert.Equal(t, 3, cfg.Fetch.MaxRetries)
	assert.Equal(t, "enrich-cli/1.0", cfg.Fetch.UserAgent)
	assert.True(t, cfg.Render.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Batch.CompanyDelay())
	assert.Equal(t, 3*time.Second, cfg.Batch.SourceDelay())
	assert.Equal(t, 1, cfg.Batch.MaxConcurrentCompanies)
	assert.Equal(t, "companies.xlsx", cfg.Export.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chTempDir(t)

	yaml := `
store:
  driver: sqlite
  sqlite_path: /tmp/test.db
batch:
  company_delay_secs: 1
  source_delay_secs: 0
  max_concurrent_companies: 4
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Store.SQLitePath)
	assert.Equal(t, time.Second, cfg.Batch.CompanyDelay())
	assert.Equal(t, time.Duration(0), cfg.Batch.SourceDelay())
	assert.Equal(t, 4, cfg.Batch.MaxConcurrentCompanies)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	chTempDir(t)
	t.Setenv("ENRICH_STORE_DRIVER", "sqlite")
	t.Setenv("ENRICH_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.Error(t, InitLogger(LogConfig{Level: "not-a-level", Format: "json"}))
}
