// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/config"
	"github.com/tomtom215/indradhanu/internal/testinfra"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DATASET_PATH", testinfra.WriteCropCSV(t, t.TempDir()))
	t.Setenv("MODEL_TREES", "10")
	cfg, err := config.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return cfg
}

func TestInitPredictor(t *testing.T) {
	cfg := testConfig(t)

	store, err := initPredictor(context.Background(), cfg)
	if err != nil {
		t.Fatalf("initPredictor: %v", err)
	}
	if !store.Ready() {
		t.Fatal("store not ready")
	}
	if got := store.Stats(); got.Trees != 10 || got.Records != 3*testinfra.RowsPerCrop {
		t.Errorf("stats = %+v", got)
	}
}

func TestInitPredictor_MissingDataset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "absent.csv")

	if _, err := initPredictor(context.Background(), cfg); err == nil {
		t.Fatal("expected error for a missing dataset")
	}
}

func TestInitWeather(t *testing.T) {
	cfg := testConfig(t)

	t.Run("without key or store", func(t *testing.T) {
		wx, err := initWeather(cfg)
		if err != nil {
			t.Fatalf("initWeather: %v", err)
		}
		defer wx.Close()

		if wx.store != nil || wx.client.Configured() {
			t.Errorf("store=%v configured=%v", wx.store, wx.client.Configured())
		}
		if _, err := wx.client.Current(context.Background(), "Pune"); !errors.Is(err, apperrors.ErrNotConfigured) {
			t.Errorf("Current = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("with durable store", func(t *testing.T) {
		withStore := *cfg
		withStore.Weather.APIKey = "key"
		withStore.Weather.StorePath = t.TempDir()

		wx, err := initWeather(&withStore)
		if err != nil {
			t.Fatalf("initWeather: %v", err)
		}
		defer wx.Close()

		if wx.store == nil || !wx.client.Configured() {
			t.Fatal("expected a configured client with a badger store")
		}
		if err := wx.store.CollectGarbage(0.5); err != nil {
			t.Errorf("CollectGarbage: %v", err)
		}
	})
}
