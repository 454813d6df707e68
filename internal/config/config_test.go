// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Dataset.Path != DefaultDatasetPath {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Model.Trees != 100 || cfg.Model.Seed != 42 {
		t.Errorf("Model = %+v", cfg.Model)
	}
	if cfg.Weather.Timeout != 10*time.Second || cfg.Weather.APIKey != "" {
		t.Errorf("Weather = %+v", cfg.Weather)
	}
	if !slices.Equal(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

// Tests below use t.Setenv and cannot run in parallel.

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
}

func TestLoadFile_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_PATH", "/data/crops.csv")
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("MODEL_TREES", "25")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "/data/crops.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Weather.APIKey != "secret" || cfg.Weather.Timeout != 3*time.Second {
		t.Errorf("Weather = %+v", cfg.Weather)
	}
	if cfg.Model.Trees != 25 {
		t.Errorf("Model.Trees = %d", cfg.Model.Trees)
	}
	if want := []string{"https://a.example", "https://b.example"}; !slices.Equal(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 8081
model:
  trees: 50
  cache_dir: /tmp/models
weather:
  cache_ttl: 5m
security:
  cors_origins:
    - https://farm.example.org
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MODEL_TREES", "75")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Port = %d, want 8081 from file", cfg.Server.Port)
	}
	if cfg.Model.Trees != 75 {
		t.Errorf("Trees = %d, want 75 from environment", cfg.Model.Trees)
	}
	if cfg.Model.CacheDir != "/tmp/models" || cfg.Weather.CacheTTL != 5*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.Security.CORSOrigins, []string{"https://farm.example.org"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Port = %d, want 7000", cfg.Server.Port)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad port", map[string]string{"PORT": "70000"}, "server.port"},
		{"bad dataset", map[string]string{"DATASET_PATH": "crops.json"}, "dataset.path"},
		{"no trees", map[string]string{"MODEL_TREES": "0"}, "model.trees"},
		{"bad weather url", map[string]string{"OPENWEATHER_BASE_URL": "ftp://x"}, "weather.base_url"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "logging.level"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "logging.format"},
		{"bad rate limit", map[string]string{"RATE_LIMIT_REQS": "0"}, "rate_limit_reqs"},
		{"bad store gc", map[string]string{"WEATHER_STORE_PATH": "/tmp/wx", "WEATHER_STORE_GC_INTERVAL": "0s"}, "weather.store_gc_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile("")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile_RateLimitDisabledSkipsChecks(t *testing.T) {
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("RATE_LIMIT_REQS", "0")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("RateLimitDisabled = false")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit file accepted")
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Model.Trees = 7
	cfg.Model.CacheDir = "/cache"
	p := cfg.Model.Predictor()
	if p.Forest.Trees != 7 || p.Forest.Seed != 42 || !p.Forest.Bootstrap || p.CacheDir != "/cache" {
		t.Errorf("Predictor = %+v", p)
	}

	w := cfg.Weather.Client()
	if w.Timeout != 10*time.Second || w.BaseURL != cfg.Weather.BaseURL {
		t.Errorf("Client = %+v", w)
	}

	l := cfg.Logging.Logger()
	if l.Level != "info" || l.Format != "json" {
		t.Errorf("Logger = %+v", l)
	}
}
