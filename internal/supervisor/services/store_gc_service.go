// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package services

import (
	"context"
	"time"

	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/metrics"
)

// GarbageCollector reclaims space in a persistent store.
// Satisfied by *weather.BadgerStore.
type GarbageCollector interface {
	CollectGarbage(discardRatio float64) error
}

// StoreGCConfig controls a StoreGCService.
type StoreGCConfig struct {
	// Name labels log lines and the store_gc_runs_total metric.
	Name string

	// Interval between passes. Default: 10m
	Interval time.Duration

	// DiscardRatio is handed to badger's value log GC. Default: 0.5
	DiscardRatio float64
}

// StoreGCService periodically runs value log garbage collection. A failed
// pass is logged and counted; the next tick tries again.
type StoreGCService struct {
	store  GarbageCollector
	config StoreGCConfig
}

// NewStoreGCService builds the service, filling zero config fields.
func NewStoreGCService(store GarbageCollector, config StoreGCConfig) *StoreGCService {
	if config.Name == "" {
		config.Name = "store"
	}
	if config.Interval <= 0 {
		config.Interval = 10 * time.Minute
	}
	if config.DiscardRatio <= 0 || config.DiscardRatio >= 1 {
		config.DiscardRatio = 0.5
	}
	return &StoreGCService{store: store, config: config}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	log := logging.WithComponent("store-gc")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			err := s.store.CollectGarbage(s.config.DiscardRatio)
			metrics.RecordStoreGC(s.config.Name, err)
			if err != nil {
				log.Warn().Err(err).Str("store", s.config.Name).Msg("Garbage collection failed")
				continue
			}
			log.Debug().Str("store", s.config.Name).Dur("took", time.Since(start)).Msg("Garbage collection pass complete")
		}
	}
}

func (s *StoreGCService) String() string { return s.config.Name + "-gc" }
