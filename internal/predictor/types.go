// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package predictor

import (
	"time"

	"github.com/tomtom215/indradhanu/internal/dataset"
)

// RevenueFactor converts yield (kg/ha) times price (per quintal) into the
// revenue figure reported to farmers. The constant is kept as published.
const RevenueFactor = 0.01

// Revenue derives estimated revenue from yield and price.
func Revenue(yield, price float64) float64 {
	return RevenueFactor * yield * price
}

// DefaultTopK is the number of distinct crops returned by TopCrops.
const DefaultTopK = 3

// HistoryLimit is the maximum number of rows returned by History.
const HistoryLimit = 20

// Prediction is one recommended crop with its economics.
type Prediction struct {
	Crop string `json:"crop"`

	// Confidence is the class probability as a percentage (0-100).
	Confidence float64 `json:"confidence"`

	Yield   float64 `json:"yield_kg_per_hectare"`
	Price   float64 `json:"price_per_quintal"`
	Revenue float64 `json:"estimated_revenue"`
}

func newPrediction(crop string, probability, yield, price float64) Prediction {
	return Prediction{
		Crop:       crop,
		Confidence: probability * 100,
		Yield:      yield,
		Price:      price,
		Revenue:    Revenue(yield, price),
	}
}

// HistoryPoint is one historical row as exposed by History.
type HistoryPoint struct {
	Index       int     `json:"index"`
	Yield       float64 `json:"yield"`
	Price       float64 `json:"price"`
	Rainfall    float64 `json:"rainfall"`
	Temperature float64 `json:"temperature"`
}

// History summarizes the recorded yield and price of one crop.
type History struct {
	Crop         string         `json:"crop"`
	TotalRecords int            `json:"total_records"`
	Points       []HistoryPoint `json:"history"`

	AvgYield float64 `json:"avg_yield"`
	MaxYield float64 `json:"max_yield"`
	MinYield float64 `json:"min_yield"`
	AvgPrice float64 `json:"avg_price"`
	MaxPrice float64 `json:"max_price"`
	MinPrice float64 `json:"min_price"`
}

// Info summarizes one crop, including the mean growing conditions observed
// for it.
type Info struct {
	Crop              string                `json:"crop"`
	AvgYield          float64               `json:"avg_yield"`
	AvgPrice          float64               `json:"avg_price"`
	AvgRevenue        float64               `json:"avg_revenue"`
	TotalRecords      int                   `json:"total_records"`
	OptimalConditions dataset.FeatureVector `json:"optimal_conditions"`
}

// Stats describes a built Store.
type Stats struct {
	Records     int       `json:"records"`
	Crops       int       `json:"crops"`
	Trees       int       `json:"trees"`
	TrainedAt   time.Time `json:"trained_at"`
	FromCache   bool      `json:"from_cache"`
	Fingerprint string    `json:"fingerprint"`
}
