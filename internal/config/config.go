// Package config loads server configuration from an optional YAML file
// and environment variables. Env vars win over file values; flags applied
// by the CLI win over both.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// eRegulations API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Cache
	CacheTTL           time.Duration
	ListCacheTTL       time.Duration
	CacheSweepInterval time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors Config with YAML keys; durations are strings in
// time.ParseDuration syntax.
type fileConfig struct {
	APIURL             string `yaml:"api_url"`
	HTTPTimeout        string `yaml:"http_timeout"`
	CacheTTL           string `yaml:"cache_ttl"`
	ListCacheTTL       string `yaml:"list_cache_ttl"`
	CacheSweepInterval string `yaml:"cache_sweep_interval"`
	LogFile            string `yaml:"log_file"`
	LogLevel           string `yaml:"log_level"`
}

// Load reads configuration from the optional YAML file named by
// EREGULATIONS_MCP_CONFIG, then applies environment variable overrides.
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL:         "https://api-tanzania.tradeportal.org",
		HTTPTimeout:        30 * time.Second,
		CacheTTL:           5 * time.Minute,
		ListCacheTTL:       30 * time.Minute,
		CacheSweepInterval: 10 * time.Minute,
		LogFile:            "/tmp/eregulations-mcp.log",
		LogLevel:           slog.LevelInfo,
	}

	if path := os.Getenv("EREGULATIONS_MCP_CONFIG"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	cfg.APIBaseURL = getEnv("EREGULATIONS_API_URL", cfg.APIBaseURL)
	cfg.LogFile = getEnv("EREGULATIONS_MCP_LOG_FILE", cfg.LogFile)
	if v := os.Getenv("EREGULATIONS_MCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = ParseLogLevel(v)
	}

	var err error
	if cfg.HTTPTimeout, err = envDuration("EREGULATIONS_HTTP_TIMEOUT", cfg.HTTPTimeout); err != nil {
		return cfg, err
	}
	if cfg.CacheTTL, err = envDuration("EREGULATIONS_CACHE_TTL", cfg.CacheTTL); err != nil {
		return cfg, err
	}
	if cfg.ListCacheTTL, err = envDuration("EREGULATIONS_LIST_CACHE_TTL", cfg.ListCacheTTL); err != nil {
		return cfg, err
	}
	if cfg.CacheSweepInterval, err = envDuration("EREGULATIONS_CACHE_SWEEP_INTERVAL", cfg.CacheSweepInterval); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyFile merges a YAML config file into cfg. Only keys present in the
// file override the current values.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.APIURL != "" {
		cfg.APIBaseURL = fc.APIURL
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = ParseLogLevel(fc.LogLevel)
	}

	for _, d := range []struct {
		raw string
		dst *time.Duration
	}{
		{fc.HTTPTimeout, &cfg.HTTPTimeout},
		{fc.CacheTTL, &cfg.CacheTTL},
		{fc.ListCacheTTL, &cfg.ListCacheTTL},
		{fc.CacheSweepInterval, &cfg.CacheSweepInterval},
	} {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("parse duration %q in %s: %w", d.raw, path, err)
		}
		*d.dst = parsed
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal, fmt.Errorf("parse %s=%q: %w", key, val, err)
	}
	return parsed, nil
}

// ParseLogLevel maps a level name to its slog level, defaulting to INFO.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
