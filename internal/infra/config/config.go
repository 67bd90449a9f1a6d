package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Cache    CacheConfig    `yaml:"cache"`
	Database DatabaseConfig `yaml:"database"`
	Wellness WellnessConfig `yaml:"wellness"`
	Plan     PlanConfig     `yaml:"plan"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// StorageConfig points at the state file behind the persistence gateway.
type StorageConfig struct {
	StatePath string `yaml:"statePath"`
}

// CacheConfig enables the Valkey-backed schedule store.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// DatabaseConfig contains DSN and pooling settings for the record store.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// WellnessConfig controls the wellness history and provider sources.
type WellnessConfig struct {
	HistoryLimit int               `yaml:"historyLimit"`
	ProviderURLs map[string]string `yaml:"providerUrls"`
}

// PlanConfig holds the planner defaults.
type PlanConfig struct {
	BaselineCalories int `yaml:"baselineCalories"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("STATE_PATH"); v != "" {
		cfg.Storage.StatePath = v
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DATABASE_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Database.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("DATABASE_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Database.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("WELLNESS_HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Wellness.HistoryLimit = parsed
		}
	}
	if v := os.Getenv("PLAN_BASELINE_CALORIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Plan.BaselineCalories = parsed
		}
	}

	// FITCOACH_PROVIDER_<NAME>_URL=https://... wires a remote wellness source.
	for _, pair := range os.Environ() {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		name, found := strings.CutPrefix(key, "FITCOACH_PROVIDER_")
		if !found {
			continue
		}
		name, found = strings.CutSuffix(name, "_URL")
		if !found || name == "" {
			continue
		}
		if cfg.Wellness.ProviderURLs == nil {
			cfg.Wellness.ProviderURLs = make(map[string]string)
		}
		cfg.Wellness.ProviderURLs[strings.ToLower(name)] = value
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			AllowedOrigins: []string{"http://localhost:4200", "http://127.0.0.1:4200"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Storage: StorageConfig{
			StatePath: "data/state.json",
		},
		Wellness: WellnessConfig{
			HistoryLimit: 200,
		},
		Plan: PlanConfig{
			BaselineCalories: 2200,
		},
	}
}

// Validate rejects configurations that cannot serve requests.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address must not be empty")
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 {
		return errors.New("http timeouts must be positive")
	}
	if strings.TrimSpace(c.Storage.StatePath) == "" {
		return errors.New("storage.statePath must not be empty")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr must be set when cache is enabled")
	}
	if c.Wellness.HistoryLimit <= 0 {
		return errors.New("wellness.historyLimit must be positive")
	}
	if c.Plan.BaselineCalories < 1200 || c.Plan.BaselineCalories > 4500 {
		return errors.New("plan.baselineCalories must be between 1200 and 4500")
	}
	return nil
}
