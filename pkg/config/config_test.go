package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SCRAPER_MODE", "SCRAPER_BASE_URL", "API_KEY", "API_BASE_URL"} {
		t.Setenv(key, "")
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config file should be written")

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFrom_MergesMissingValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[scraper]
mode = "remote"
base_url = "http://scraper:3000"

[urls]
seed = []
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ScraperModeRemote, cfg.Scraper.Mode)
	assert.Equal(t, "http://scraper:3000", cfg.Scraper.BaseURL)
	assert.Equal(t, 30, cfg.Scraper.Timeout)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 4, cfg.CLI.ScrapeConcurrency)
	assert.Empty(t, cfg.URLs.Seed, "explicit empty seed list is kept")
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRAPER_BASE_URL", "http://override:3000")
	t.Setenv("API_KEY", "secret")
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override:3000", cfg.Scraper.BaseURL)
	assert.Equal(t, "secret", cfg.API.APIKey)
}

func TestLoadFrom_RejectsUnknownMode(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scraper]\nmode = \"browser\"\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadFrom_BadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scraper\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.API.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Scraper.Timeout = 0
	assert.Error(t, cfg.Validate())
}
