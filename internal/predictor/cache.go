// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package predictor

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/ml"
)

// errCacheMiss is returned by ModelCache.Load when no entry exists for a key.
var errCacheMiss = errors.New("model cache miss")

// IsCacheMiss reports whether err means the cache holds no entry.
func IsCacheMiss(err error) bool { return errors.Is(err, errCacheMiss) }

// CacheMetadata describes a cached fit.
type CacheMetadata struct {
	Key                string    `json:"key"`
	TrainedAt          time.Time `json:"trained_at"`
	SavedAt            time.Time `json:"saved_at"`
	Classes            int       `json:"classes"`
	Trees              int       `json:"trees"`
	Checksum           string    `json:"checksum"`
	SizeBytes          int64     `json:"size_bytes"`
	TrainingDurationMS int64     `json:"training_duration_ms"`
}

// cacheFile is the on-disk format: gob-encoded metadata plus the
// gzip-compressed gob encoding of a snapshot.
type cacheFile struct {
	Metadata       CacheMetadata
	CompressedData []byte
}

// ModelCache persists fitted estimators keyed by dataset and settings, so a
// restart against an unchanged dataset skips training.
type ModelCache struct {
	dir string
	mu  sync.Mutex
}

// NewModelCache opens (creating if needed) a cache directory.
func NewModelCache(dir string) (*ModelCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create model cache directory: %w", err)
	}
	return &ModelCache{dir: dir}, nil
}

// cacheKey identifies a fit by table contents and every setting that
// changes the fitted trees. Workers only affects scheduling and is excluded.
func cacheKey(table *dataset.Table, cfg ml.ForestConfig) string {
	cfg.Workers = 0
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|%t|%d",
		table.Fingerprint(), cfg.Trees, cfg.MaxDepth, cfg.MinSamplesSplit,
		cfg.MaxFeatures, cfg.Bootstrap, cfg.Seed)
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ModelCache) path(key string) string {
	return filepath.Join(c.dir, "models_"+key[:16]+".gob")
}

// Save writes snap under key. The file is written to a temporary name and
// renamed so readers never observe a partial file.
func (c *ModelCache) Save(_ context.Context, key string, snap *snapshot, trainingTime time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(snap); err != nil {
		return fmt.Errorf("encode models: %w", err)
	}
	sum := sha256.Sum256(raw.Bytes())

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(raw.Bytes()); err != nil {
		return fmt.Errorf("compress models: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("finalize compression: %w", err)
	}

	file := cacheFile{
		Metadata: CacheMetadata{
			Key:                key,
			TrainedAt:          snap.TrainedAt,
			SavedAt:            time.Now(),
			Classes:            snap.Encoder.Len(),
			Trees:              len(snap.Classifier.Trees),
			Checksum:           hex.EncodeToString(sum[:]),
			SizeBytes:          int64(compressed.Len()),
			TrainingDurationMS: trainingTime.Milliseconds(),
		},
		CompressedData: compressed.Bytes(),
	}

	tmp, err := os.CreateTemp(c.dir, "models-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }() //nolint:errcheck // no-op after a successful rename

	if err := gob.NewEncoder(tmp).Encode(file); err != nil {
		_ = tmp.Close() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("write model cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close model cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		return fmt.Errorf("commit model cache: %w", err)
	}
	return nil
}

// Load reads the snapshot stored under key, verifying its checksum.
func (c *ModelCache) Load(_ context.Context, key string) (*snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.Open(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("open model cache: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only

	var file cacheFile
	if err := gob.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("read model cache: %w", err)
	}
	if file.Metadata.Key != key {
		return nil, errCacheMiss
	}

	gzr, err := gzip.NewReader(bytes.NewReader(file.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("decompress model cache: %w", err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // read-only

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed models: %w", err)
	}
	sum := sha256.Sum256(raw)
	if got := hex.EncodeToString(sum[:]); got != file.Metadata.Checksum {
		return nil, fmt.Errorf("model cache checksum mismatch: expected %s, got %s", file.Metadata.Checksum, got)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode models: %w", err)
	}
	return &snap, nil
}
