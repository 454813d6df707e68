// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package ml implements the small set of tabular estimators the crop
// recommender is trained with.
//
// # Estimators
//
//   - LabelEncoder: maps crop names to dense class indices in sorted order
//   - StandardScaler: per-feature zero mean, unit variance scaling
//   - RandomForestClassifier: bagged CART trees with Gini impurity
//   - RandomForestRegressor: bagged CART trees with squared-error impurity
//
// # Determinism
//
// Every random choice (bootstrap draws, feature sub-sampling) comes from a
// math/rand source seeded from ForestConfig.Seed. Each tree receives its own
// seed drawn up front, so training is reproducible regardless of how many
// goroutines build trees concurrently.
//
// # Thread Safety
//
// Fitted estimators are read-only and safe for concurrent prediction.
// Fit must not run concurrently with prediction on the same value.
//
// All estimator fields are exported so that fitted models can be persisted
// with encoding/gob.
package ml
