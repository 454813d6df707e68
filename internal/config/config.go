// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package config

import (
	"time"

	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/ml"
	"github.com/tomtom215/indradhanu/internal/predictor"
	"github.com/tomtom215/indradhanu/internal/weather"
)

// Config is the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Model    ModelConfig    `koanf:"model"`
	Weather  WeatherConfig  `koanf:"weather"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatasetConfig locates the historical crop table.
type DatasetConfig struct {
	// Path is a .xlsx, .xlsm or .csv file.
	Path string `koanf:"path"`

	// Sheet selects a workbook sheet. Empty uses the first sheet.
	Sheet string `koanf:"sheet"`
}

// ModelConfig controls training.
type ModelConfig struct {
	Trees           int    `koanf:"trees"`
	Seed            int64  `koanf:"seed"`
	MaxDepth        int    `koanf:"max_depth"`
	MinSamplesSplit int    `koanf:"min_samples_split"`
	Workers         int    `koanf:"workers"`
	CacheDir        string `koanf:"cache_dir"`
}

// WeatherConfig configures the OpenWeatherMap integration. An empty APIKey
// disables it; the endpoint then answers 503.
type WeatherConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`

	// StorePath enables the persistent last-known-good store.
	StorePath string `koanf:"store_path"`

	// StoreGCInterval spaces value log collections on that store.
	StoreGCInterval time.Duration `koanf:"store_gc_interval"`
}

// SecurityConfig holds CORS and inbound rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error. Default: info
	Level string `koanf:"level"`

	// Format is json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in each event.
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// Predictor converts the model section into a predictor configuration.
func (m ModelConfig) Predictor() predictor.Config {
	forest := ml.DefaultForestConfig()
	forest.Trees = m.Trees
	forest.Seed = m.Seed
	forest.MaxDepth = m.MaxDepth
	forest.MinSamplesSplit = m.MinSamplesSplit
	forest.Workers = m.Workers
	return predictor.Config{Forest: forest, CacheDir: m.CacheDir}
}

// Client converts the weather section into a client configuration.
func (w WeatherConfig) Client() weather.Config {
	return weather.Config{
		APIKey:            w.APIKey,
		BaseURL:           w.BaseURL,
		Timeout:           w.Timeout,
		RequestsPerSecond: w.RequestsPerSecond,
		Burst:             w.Burst,
		CacheTTL:          w.CacheTTL,
	}
}

// Logger converts the logging section into a logger configuration.
func (l LoggingConfig) Logger() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
