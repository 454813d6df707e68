// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package testinfra provides shared test infrastructure: a small crop dataset
// with well separated growing conditions and a mock OpenWeatherMap server.
//
// # Crop Fixture
//
// CropRecords returns three crops (Maize, Rice, Wheat) with eight rows each.
// The feature regions do not overlap, so any reasonable forest classifies a
// region's centroid as its crop:
//
//	func TestPredict(t *testing.T) {
//	    table := testinfra.CropTable(t)
//	    store, err := predictor.Build(ctx, table, cfg)
//	    // ...
//	    pred, _ := store.Predict(testinfra.RiceConditions)
//	}
//
// Rice yields average 3200 kg/ha at a constant price of 2100 per quintal.
//
// # Weather Server
//
// MockWeatherServer answers like the OpenWeatherMap current weather endpoint
// and records every request for later assertions.
package testinfra
