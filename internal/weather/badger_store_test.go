// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package weather

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/indradhanu/internal/testinfra"
)

func newMemoryBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStores(t *testing.T) {
	t.Parallel()

	stores := map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemoryStore() },
		"badger": func(t *testing.T) Store { return NewBadgerStore(newMemoryBadger(t)) },
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := newStore(t)
			ctx := context.Background()

			if _, err := s.Load(ctx, "pune"); !errors.Is(err, ErrNoReading) {
				t.Fatalf("Load on empty store err = %v, want ErrNoReading", err)
			}

			want := Reading{
				City: "Pune", Temperature: 28.5, Humidity: 70, Rainfall: 2,
				FetchedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
			}
			if err := s.Save(ctx, "pune", want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load(ctx, "pune")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.City != want.City || got.Temperature != want.Temperature ||
				got.Humidity != want.Humidity || got.Rainfall != want.Rainfall ||
				!got.FetchedAt.Equal(want.FetchedAt) {
				t.Errorf("Load = %+v, want %+v", got, want)
			}
		})
	}
}

func TestOpenBadgerStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, closeFn, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	if err := store.Save(context.Background(), "delhi", Reading{City: "Delhi", Temperature: 40}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, closeFn, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = closeFn() }()

	got, err := reopened.Load(context.Background(), "delhi")
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if got.Temperature != 40 {
		t.Errorf("Temperature = %v, want 40", got.Temperature)
	}
}

// A reading saved by one client is served stale by another sharing the
// store, as after a restart.
func TestBadgerStore_FallbackAcrossClients(t *testing.T) {
	t.Parallel()

	store := NewBadgerStore(newMemoryBadger(t))
	srv := testinfra.NewMockWeatherServer(t, testinfra.OpenWeatherBody("Pune", 26, 75, 3))

	first := newTestClient(t, srv.URL(), WithStore(store))
	if _, err := first.Current(context.Background(), "Pune"); err != nil {
		t.Fatalf("Current: %v", err)
	}

	srv.SetResponse(http.StatusInternalServerError, nil)
	second := newTestClient(t, srv.URL(), WithStore(store))
	r, err := second.Current(context.Background(), "pune")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !r.Stale || r.Temperature != 26 || r.City != "pune" {
		t.Errorf("reading = %+v", r)
	}
}

func TestBadgerStore_CollectGarbage(t *testing.T) {
	t.Parallel()

	s := NewBadgerStore(newMemoryBadger(t))
	if err := s.Save(context.Background(), "pune", Reading{Temperature: 30}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.CollectGarbage(0.5); err != nil {
		t.Errorf("CollectGarbage on in-memory store: %v", err)
	}

	dir := t.TempDir()
	disk, closeDB, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	t.Cleanup(func() { _ = closeDB() })
	if err := disk.CollectGarbage(0.5); err != nil {
		t.Errorf("CollectGarbage on empty disk store: %v", err)
	}
}
