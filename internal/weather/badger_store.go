// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package weather

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const readingKeyPrefix = "weather:"

// BadgerStore is a Store backed by BadgerDB. The caller owns the database
// and closes it.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore wraps an open database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadgerStore opens (creating if needed) a database at dir. The returned
// close function releases it.
func OpenBadgerStore(dir string) (*BadgerStore, func() error, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open weather store: %w", err)
	}
	return NewBadgerStore(db), db.Close, nil
}

// Load implements Store.
func (s *BadgerStore) Load(_ context.Context, key string) (*Reading, error) {
	var r Reading
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(readingKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoReading
		}
		if err != nil {
			return fmt.Errorf("get reading: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Save implements Store.
func (s *BadgerStore) Save(_ context.Context, key string, r Reading) error {
	r.Stale = false
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(readingKeyPrefix+key), data); err != nil {
			return fmt.Errorf("set reading: %w", err)
		}
		return nil
	})
}

// CollectGarbage rewrites value log files until badger reports nothing left
// to reclaim. In-memory databases have no value log and return nil.
func (s *BadgerStore) CollectGarbage(discardRatio float64) error {
	for {
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		case errors.Is(err, badger.ErrRejected):
			// Another GC or a close is in progress.
			return nil
		case err != nil:
			return fmt.Errorf("weather store gc: %w", err)
		}
	}
}
