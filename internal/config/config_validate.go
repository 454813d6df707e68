// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tomtom215/indradhanu/internal/logging"
)

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateWeather(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 {
		return errors.New("server read, write and idle timeouts must be positive")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", s.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return errors.New("dataset.path is required")
	}
	switch ext := strings.ToLower(filepath.Ext(c.Dataset.Path)); ext {
	case ".xlsx", ".xlsm", ".csv":
		return nil
	default:
		return fmt.Errorf("dataset.path must be .xlsx, .xlsm or .csv, got %q", ext)
	}
}

func (c *Config) validateModel() error {
	m := c.Model
	if m.Trees < 1 {
		return fmt.Errorf("model.trees must be at least 1, got %d", m.Trees)
	}
	if m.MaxDepth < 0 {
		return fmt.Errorf("model.max_depth must not be negative, got %d", m.MaxDepth)
	}
	if m.MinSamplesSplit < 2 {
		return fmt.Errorf("model.min_samples_split must be at least 2, got %d", m.MinSamplesSplit)
	}
	if m.Workers < 0 {
		return fmt.Errorf("model.workers must not be negative, got %d", m.Workers)
	}
	return nil
}

func (c *Config) validateWeather() error {
	w := c.Weather
	u, err := url.Parse(w.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("weather.base_url must be an http(s) URL, got %q", w.BaseURL)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("weather.timeout must be positive, got %s", w.Timeout)
	}
	if w.RequestsPerSecond < 0 {
		return fmt.Errorf("weather.requests_per_second must not be negative, got %v", w.RequestsPerSecond)
	}
	if w.CacheTTL <= 0 {
		return fmt.Errorf("weather.cache_ttl must be positive, got %s", w.CacheTTL)
	}
	if w.StorePath != "" && w.StoreGCInterval <= 0 {
		return fmt.Errorf("weather.store_gc_interval must be positive, got %s", w.StoreGCInterval)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := c.Security
	if len(s.CORSOrigins) == 0 {
		return errors.New("security.cors_origins must list at least one origin")
	}
	if s.RateLimitDisabled {
		return nil
	}
	if s.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", s.RateLimitReqs)
	}
	if s.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %s", s.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
}
