// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package weather

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Reading is the subset of current conditions the service uses.
type Reading struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Rainfall    float64   `json:"rainfall"`
	FetchedAt   time.Time `json:"fetched_at"`

	// Stale is set when the reading was served from the Store because the
	// upstream call failed.
	Stale bool `json:"stale"`
}

// ErrNoReading is returned by a Store that holds nothing for a key.
var ErrNoReading = errors.New("no stored reading")

// Store keeps the last good reading per city.
type Store interface {
	Load(ctx context.Context, key string) (*Reading, error)
	Save(ctx context.Context, key string, r Reading) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu       sync.RWMutex
	readings map[string]Reading
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{readings: make(map[string]Reading)}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, key string) (*Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.readings[key]
	if !ok {
		return nil, ErrNoReading
	}
	return &r, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, key string, r Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings[key] = r
	return nil
}
