package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test, restoring the previous
// working directory on cleanup (stand-in for testing.T.Chdir on older Go).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultRequestTimeout, cfg.Crawler.RequestTimeout)
	assert.Equal(t, DefaultMaxRetries, cfg.Crawler.MaxRetries)
	assert.Equal(t, DefaultRequestDelay, cfg.Crawler.RequestDelay)
	assert.Equal(t, DefaultWorkers, cfg.Crawler.Workers)
	assert.Equal(t, DefaultMaxPages, cfg.Crawler.MaxPages)
	assert.Equal(t, DefaultAcceptLanguage, cfg.Crawler.AcceptLanguage)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "newspaper_db", cfg.Database.Database)
	assert.True(t, cfg.Output.SaveDB)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
crawler:
  workers: 12
  max_pages: 4
  request_delay: 2s
database:
  host: db.internal
  port: 6432
output:
  save_db: false
  path: articles.ndjson
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Crawler.Workers)
	assert.Equal(t, 4, cfg.Crawler.MaxPages)
	assert.Equal(t, 2*time.Second, cfg.Crawler.RequestDelay)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.False(t, cfg.Output.SaveDB)
	assert.Equal(t, "articles.ndjson", cfg.Output.Path)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultMaxRetries, cfg.Crawler.MaxRetries)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_HOST", "env.internal")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.internal", cfg.Database.Host)
}
