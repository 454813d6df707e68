// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package predictor owns the fitted models and the historical table and
// answers every recommendation and reference query.
//
// A Store is built once at startup by Build and never mutated afterwards, so
// handlers share a single *Store without locking. A nil *Store is valid and
// answers every call with apperrors.ErrNotReady.
//
// # Models
//
// The crop classifier is trained on standardized features against encoded
// crop names. The yield and price regressors are trained on the raw
// features. All three fits run concurrently.
//
// # Top-k ranking
//
// TopK orders classes by descending probability with a stable sort, so
// classes with equal probability keep ascending class order, which is
// alphabetical crop order. Each distinct crop contributes one entry whose
// yield and price are the historical means for that crop, falling back to
// the regressors only for a crop without rows.
package predictor

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/metrics"
	"github.com/tomtom215/indradhanu/internal/ml"
)

// Config controls how a Store is built.
type Config struct {
	// Forest configures all three forests.
	Forest ml.ForestConfig

	// CacheDir enables the trained model cache when non-empty.
	CacheDir string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{Forest: ml.DefaultForestConfig()}
}

// cropStats accumulates per-crop totals used by TopK.
type cropStats struct {
	count    int
	sumYield float64
	sumPrice float64
}

// Store is the immutable model and reference data context.
type Store struct {
	table *dataset.Table

	models snapshot

	// byCrop maps exact crop names to their totals.
	byCrop map[string]cropStats
	// byFolded maps case-folded crop names to row indices in table order.
	byFolded map[string][]int

	stats Stats
}

// snapshot is the persisted form of the fitted estimators.
type snapshot struct {
	Encoder    ml.LabelEncoder
	Scaler     ml.StandardScaler
	Classifier ml.RandomForestClassifier
	Yield      ml.RandomForestRegressor
	Price      ml.RandomForestRegressor
	TrainedAt  time.Time
}

// Build fits all models on table and indexes it for lookups. When
// cfg.CacheDir is set, a previously saved fit for the same table and
// settings is reused instead of training.
func Build(ctx context.Context, table *dataset.Table, cfg Config) (*Store, error) {
	if table == nil || table.Len() == 0 {
		return nil, dataset.ErrEmptyTable
	}

	s := &Store{table: table}
	s.index()

	key := cacheKey(table, cfg.Forest)
	var cache *ModelCache
	if cfg.CacheDir != "" {
		var err error
		if cache, err = NewModelCache(cfg.CacheDir); err != nil {
			return nil, err
		}
		snap, err := cache.Load(ctx, key)
		switch {
		case err == nil:
			metrics.RecordModelCache("hit")
			s.models = *snap
			s.stats.FromCache = true
		case IsCacheMiss(err):
			metrics.RecordModelCache("miss")
		default:
			metrics.RecordModelCache("error")
			logging.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("Ignoring unreadable model cache")
		}
	}

	if !s.stats.FromCache {
		start := time.Now()
		if err := s.train(ctx, cfg.Forest); err != nil {
			return nil, err
		}
		s.models.TrainedAt = time.Now()
		if cache != nil {
			if err := cache.Save(ctx, key, &s.models, time.Since(start)); err != nil {
				logging.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("Failed to save model cache")
			}
		}
	}

	s.stats.Records = table.Len()
	s.stats.Crops = s.models.Encoder.Len()
	s.stats.Trees = len(s.models.Classifier.Trees)
	s.stats.TrainedAt = s.models.TrainedAt
	s.stats.Fingerprint = key
	metrics.SetModelShape(s.stats.Records, s.stats.Crops)

	return s, nil
}

func (s *Store) index() {
	s.byCrop = make(map[string]cropStats)
	s.byFolded = make(map[string][]int)
	for i := 0; i < s.table.Len(); i++ {
		r := s.table.Row(i)
		st := s.byCrop[r.Crop]
		st.count++
		st.sumYield += r.Yield
		st.sumPrice += r.Price
		s.byCrop[r.Crop] = st

		key := foldName(r.Crop)
		s.byFolded[key] = append(s.byFolded[key], i)
	}
}

func (s *Store) train(ctx context.Context, forest ml.ForestConfig) error {
	x := s.table.Matrix()
	labels := s.models.Encoder.Fit(s.table.Labels())
	if err := s.models.Scaler.Fit(x); err != nil {
		return fmt.Errorf("fit scaler: %w", err)
	}
	scaled := s.models.Scaler.TransformAll(x)
	yields := s.table.Column("yield")
	prices := s.table.Column("price")

	classifier := ml.NewRandomForestClassifier(forest)
	yieldModel := ml.NewRandomForestRegressor(forest)
	priceModel := ml.NewRandomForestRegressor(forest)

	g, gctx := errgroup.WithContext(ctx)
	timed := func(name string, fit func() error) func() error {
		return func() error {
			start := time.Now()
			if err := fit(); err != nil {
				return fmt.Errorf("fit %s: %w", name, err)
			}
			metrics.RecordModelTraining(name, time.Since(start))
			logging.Debug().Str("model", name).Dur("took", time.Since(start)).Msg("Model fitted")
			return nil
		}
	}
	g.Go(timed("classifier", func() error {
		return classifier.Fit(gctx, scaled, labels, s.models.Encoder.Len())
	}))
	g.Go(timed("yield", func() error { return yieldModel.Fit(gctx, x, yields) }))
	g.Go(timed("price", func() error { return priceModel.Fit(gctx, x, prices) }))
	if err := g.Wait(); err != nil {
		return err
	}

	s.models.Classifier = *classifier
	s.models.Yield = *yieldModel
	s.models.Price = *priceModel
	return nil
}

func (s *Store) ready() bool {
	return s != nil && s.models.Classifier.Fitted() && s.models.Yield.Fitted() && s.models.Price.Fitted()
}

// Ready reports whether the store can serve predictions.
func (s *Store) Ready() bool { return s.ready() }

// Stats returns build information. A nil store returns the zero value.
func (s *Store) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return s.stats
}

// Predict returns the single most probable crop for fv. Yield and price come
// from the regressors applied to the unscaled features.
func (s *Store) Predict(fv dataset.FeatureVector) (Prediction, error) {
	if !s.ready() {
		return Prediction{}, apperrors.ErrNotReady
	}

	raw := fv.Slice()
	probs := s.models.Classifier.PredictProba(s.models.Scaler.Transform(raw))
	best := ml.Argmax(probs)
	crop, err := s.models.Encoder.Inverse(best)
	if err != nil {
		return Prediction{}, fmt.Errorf("decode class: %w", err)
	}

	return newPrediction(crop, probs[best], s.models.Yield.Predict(raw), s.models.Price.Predict(raw)), nil
}

// TopK returns up to k distinct crops ranked by classifier probability.
// Fewer than k are returned when the model knows fewer crops.
func (s *Store) TopK(fv dataset.FeatureVector, k int) ([]Prediction, error) {
	if !s.ready() {
		return nil, apperrors.ErrNotReady
	}
	if k <= 0 {
		return []Prediction{}, nil
	}

	raw := fv.Slice()
	probs := s.models.Classifier.PredictProba(s.models.Scaler.Transform(raw))

	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(probs[b], probs[a])
	})

	out := make([]Prediction, 0, min(k, len(order)))
	seen := make(map[string]struct{}, k)
	var regressed bool
	var regYield, regPrice float64

	for _, idx := range order {
		if len(out) == k {
			break
		}
		crop, err := s.models.Encoder.Inverse(idx)
		if err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		if _, dup := seen[crop]; dup {
			continue
		}
		seen[crop] = struct{}{}

		var yield, price float64
		if st, ok := s.byCrop[crop]; ok && st.count > 0 {
			yield = st.sumYield / float64(st.count)
			price = st.sumPrice / float64(st.count)
		} else {
			if !regressed {
				regYield, regPrice = s.models.Yield.Predict(raw), s.models.Price.Predict(raw)
				regressed = true
			}
			yield, price = regYield, regPrice
		}
		out = append(out, newPrediction(crop, probs[idx], yield, price))
	}
	return out, nil
}

// TopCrops is TopK with DefaultTopK.
func (s *Store) TopCrops(fv dataset.FeatureVector) ([]Prediction, error) {
	return s.TopK(fv, DefaultTopK)
}
