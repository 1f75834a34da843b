package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Settings configure the CLI and the HTTP host. Values come from defaults, then an optional
// TOML file, then WEALTH_* environment variables.
type Settings struct {
	Server  ServerSettings `toml:"server"`
	Logging LogSettings    `toml:"logging"`
	Cache   CacheSettings  `toml:"cache"`
	Store   StoreSettings  `toml:"store"`
	Engine  EngineSettings `toml:"engine"`
}

// ServerSettings holds the HTTP listener settings.
type ServerSettings struct {
	Addr string `toml:"addr" env:"WEALTH_ADDR"`
}

// LogSettings selects the log level and the json or text format.
type LogSettings struct {
	Level  string `toml:"level" env:"WEALTH_LOG_LEVEL"`
	Format string `toml:"format" env:"WEALTH_LOG_FORMAT"`
}

// CacheSettings bound the simulation result cache. A zero TTL or capacity disables it.
type CacheSettings struct {
	TTL           Duration `toml:"ttl" env:"WEALTH_CACHE_TTL"`
	Capacity      int      `toml:"capacity" env:"WEALTH_CACHE_CAPACITY"`
	SweepSchedule string   `toml:"sweep_schedule" env:"WEALTH_CACHE_SWEEP"`
}

// StoreSettings select the preset database.
type StoreSettings struct {
	Driver string `toml:"driver" env:"WEALTH_DB_DRIVER"`
	DSN    string `toml:"dsn" env:"WEALTH_DB_DSN"`
}

// EngineSettings tune the calculation engine.
type EngineSettings struct {
	MonteCarloWorkers int `toml:"monte_carlo_workers" env:"WEALTH_MC_WORKERS"`
}

// Duration is a time.Duration written as "5m" in TOML and environment variables.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Server:  ServerSettings{Addr: ":8080"},
		Logging: LogSettings{Level: "info", Format: "json"},
		Cache: CacheSettings{
			TTL:           Duration{5 * time.Minute},
			Capacity:      200,
			SweepSchedule: "@every 1m",
		},
		Store:  StoreSettings{Driver: "sqlite", DSN: "wealthplan.db"},
		Engine: EngineSettings{MonteCarloWorkers: 10},
	}
}

// LoadSettings reads path (skipped when empty) over the defaults and then applies the
// environment.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading settings: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing settings: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SaveSettings writes cfg as TOML.
func SaveSettings(path string, cfg Settings) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
