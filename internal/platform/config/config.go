// Package config loads the application configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// WatchlistItem is one configured watchlist entry. Disabled entries stay in
// the file but are hidden from the API.
type WatchlistItem struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Disabled bool   `yaml:"disabled"`
}

// Config holds all application configuration.
type Config struct {
	Listen   string `yaml:"listen"`
	Provider string `yaml:"provider"` // yahoo, twelvedata or stooq
	Fetch    struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"fetch"`
	Analytics struct {
		VolatilityWindow int `yaml:"volatility_window"`
		ForecastHorizon  int `yaml:"forecast_horizon"`
	} `yaml:"analytics"`
	TwelveData struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"twelve_data"`
	Cache struct {
		RedisAddr     string `yaml:"redis_addr"` // empty disables caching
		RedisPassword string `yaml:"redis_password"`
		TTLSeconds    int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	// DefaultSymbols is the dashboard's symbol set when a request names none.
	// When empty, the enabled watchlist codes are used instead.
	DefaultSymbols []string        `yaml:"default_symbols"`
	Watchlist      []WatchlistItem `yaml:"watchlist"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults alone
// describe a working setup.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Listen = ":" + v
	}
	if v := os.Getenv("PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("TWELVE_DATA_API_KEY"); v != "" {
		cfg.TwelveData.APIKey = v
	}
	if v := os.Getenv("TWELVE_DATA_BASE_URL"); v != "" {
		cfg.TwelveData.BaseURL = v
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		port := os.Getenv("REDIS_PORT")
		if port == "" {
			port = "6379"
		}
		cfg.Cache.RedisAddr = host + ":" + port
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}

	// Defaults
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.Provider == "" {
		cfg.Provider = "yahoo"
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 15
	}
	if cfg.Analytics.VolatilityWindow == 0 {
		cfg.Analytics.VolatilityWindow = 20
	}
	if cfg.Analytics.ForecastHorizon == 0 {
		cfg.Analytics.ForecastHorizon = 10
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []WatchlistItem{
			{Code: "AAPL", Name: "Apple Inc."},
			{Code: "MSFT", Name: "Microsoft Corporation"},
			{Code: "NVDA", Name: "NVIDIA Corporation"},
			{Code: "GOOGL", Name: "Alphabet Inc."},
			{Code: "AMZN", Name: "Amazon.com, Inc."},
			{Code: "META", Name: "Meta Platforms, Inc."},
		}
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable setup.
func (c *Config) Validate() error {
	switch c.Provider {
	case "yahoo", "twelvedata", "stooq":
	default:
		return fmt.Errorf("provider %q is not one of yahoo, twelvedata, stooq", c.Provider)
	}
	if c.Provider == "twelvedata" && c.TwelveData.APIKey == "" {
		return fmt.Errorf("twelve_data.api_key is required for the twelvedata provider")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive")
	}
	if c.Analytics.VolatilityWindow <= 0 {
		return fmt.Errorf("analytics.volatility_window must be positive")
	}
	if c.Analytics.ForecastHorizon <= 0 {
		return fmt.Errorf("analytics.forecast_horizon must be positive")
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive")
	}
	for i, w := range c.Watchlist {
		if w.Code == "" {
			return fmt.Errorf("watchlist entry %d: code is required", i)
		}
	}
	return nil
}

// FetchTimeout returns the outbound request timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// CacheTTL returns the cache entry lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// CacheEnabled reports whether a Redis cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Cache.RedisAddr != ""
}
