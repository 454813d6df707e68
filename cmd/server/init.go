// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/indradhanu/internal/config"
	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/predictor"
	"github.com/tomtom215/indradhanu/internal/weather"
)

// initPredictor loads the dataset and fits (or restores) the models.
func initPredictor(ctx context.Context, cfg *config.Config) (*predictor.Store, error) {
	start := time.Now()
	table, err := dataset.Load(cfg.Dataset.Path, dataset.Options{Sheet: cfg.Dataset.Sheet})
	if err != nil {
		return nil, err
	}
	logging.Info().
		Str("path", cfg.Dataset.Path).
		Int("records", table.Len()).
		Dur("took", time.Since(start)).
		Msg("Dataset loaded")

	store, err := predictor.Build(ctx, table, cfg.Model.Predictor())
	if err != nil {
		return nil, fmt.Errorf("build predictor: %w", err)
	}

	stats := store.Stats()
	logging.Info().
		Int("crops", stats.Crops).
		Int("trees", stats.Trees).
		Bool("from_cache", stats.FromCache).
		Dur("took", time.Since(start)).
		Msg("Models ready")
	return store, nil
}

// weatherDeps is the weather client plus the optional durable store the
// supervisor keeps compacted.
type weatherDeps struct {
	client     *weather.Client
	store      *weather.BadgerStore
	closeStore func() error
}

func (w *weatherDeps) Close() {
	w.client.Close()
	if w.closeStore != nil {
		if err := w.closeStore(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close weather store")
		}
	}
}

// initWeather builds the OpenWeatherMap client. Without an API key the client
// still exists and every lookup answers not configured.
func initWeather(cfg *config.Config) (*weatherDeps, error) {
	deps := &weatherDeps{}

	var opts []weather.Option
	if path := cfg.Weather.StorePath; path != "" {
		store, closeStore, err := weather.OpenBadgerStore(path)
		if err != nil {
			return nil, err
		}
		deps.store, deps.closeStore = store, closeStore
		opts = append(opts, weather.WithStore(store))
	}

	deps.client = weather.NewClient(cfg.Weather.Client(), opts...)
	if deps.client.Configured() {
		logging.Info().
			Bool("durable_store", deps.store != nil).
			Dur("cache_ttl", cfg.Weather.CacheTTL).
			Msg("Weather integration enabled")
	} else {
		logging.Info().Msg("Weather integration disabled (OPENWEATHER_API_KEY not set)")
	}
	return deps, nil
}
