package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_ADDRESS", "")

	// The missing CONFIG_PATH file is a hard error; point at a real file.
	path := writeConfig(t, "")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, "data/state.json", cfg.Storage.StatePath)
	require.Equal(t, 200, cfg.Wellness.HistoryLimit)
	require.Equal(t, 2200, cfg.Plan.BaselineCalories)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":9999"
storage:
  statePath: "custom/state.json"
plan:
  baselineCalories: 2600
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7777")
	t.Setenv("WELLNESS_HISTORY_LIMIT", "50")
	t.Setenv("FITCOACH_PROVIDER_WHOOP_URL", "https://example.com/whoop.json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7777", cfg.HTTP.Address, "env wins over file")
	require.Equal(t, "custom/state.json", cfg.Storage.StatePath)
	require.Equal(t, 2600, cfg.Plan.BaselineCalories)
	require.Equal(t, 50, cfg.Wellness.HistoryLimit)
	require.Equal(t, "https://example.com/whoop.json", cfg.Wellness.ProviderURLs["whoop"])
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig()
		return cfg
	}

	cfg := base()
	require.NoError(t, cfg.Validate())

	cfg = base()
	cfg.HTTP.Address = " "
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Storage.StatePath = ""
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Cache.Enabled = true
	cfg.Cache.Addr = ""
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Wellness.HistoryLimit = 0
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.Plan.BaselineCalories = 900
	require.Error(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
