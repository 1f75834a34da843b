package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	cfg, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Duration)
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	body := `[server]
addr = ":9090"

[logging]
level = "debug"
format = "text"

[cache]
ttl = "30s"
capacity = 5

[store]
driver = "postgres"
dsn = "postgres://localhost/wealth?sslmode=disable"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("WEALTH_LOG_LEVEL", "warn")
	t.Setenv("WEALTH_CACHE_TTL", "2m")
	t.Setenv("WEALTH_MC_WORKERS", "4")

	cfg, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level, "env wins over file")
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL.Duration)
	assert.Equal(t, 5, cfg.Cache.Capacity)
	assert.Equal(t, "@every 1m", cfg.Cache.SweepSchedule, "unset keys keep defaults")
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 4, cfg.Engine.MonteCarloWorkers)
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "reading settings")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cache]\nttl = \"soon\"\n"), 0o600))
	_, err = LoadSettings(path)
	assert.ErrorContains(t, err, "parsing settings")

	t.Setenv("WEALTH_CACHE_CAPACITY", "many")
	_, err = LoadSettings("")
	assert.ErrorContains(t, err, "parse env")
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := DefaultSettings()
	cfg.Server.Addr = "127.0.0.1:7000"
	cfg.Cache.TTL = Duration{90 * time.Second}

	require.NoError(t, SaveSettings(path, cfg))
	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
