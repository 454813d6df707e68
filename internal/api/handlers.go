// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"context"
	"time"

	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/predictor"
	"github.com/tomtom215/indradhanu/internal/weather"
)

// Recommender answers prediction and reference queries. *predictor.Store
// implements it.
type Recommender interface {
	Ready() bool
	Stats() predictor.Stats
	Predict(fv dataset.FeatureVector) (predictor.Prediction, error)
	TopCrops(fv dataset.FeatureVector) ([]predictor.Prediction, error)
	Crops() ([]string, error)
	History(name string) (*predictor.History, error)
	Info(name string) (*predictor.Info, error)
}

// WeatherProvider returns current conditions for a city. *weather.Client
// implements it.
type WeatherProvider interface {
	Configured() bool
	Current(ctx context.Context, city string) (*weather.Reading, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: banner and probes
//   - handlers_predict.go: predictions and the PDF report
//   - handlers_crops.go: crop catalogue, history and info
//   - handlers_reference.go: translations, languages and weather
type Handler struct {
	recommender Recommender
	weather     WeatherProvider
	startTime   time.Time
	version     string
	now         func() time.Time
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the build version reported by /health.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithClock replaces time.Now for report timestamps.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a handler. A nil recommender makes every model endpoint
// answer 503; a nil weather provider does the same for /api/weather.
func NewHandler(recommender Recommender, wx WeatherProvider, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender: recommender,
		weather:     wx,
		startTime:   time.Now(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) modelsReady() bool {
	return h.recommender != nil && h.recommender.Ready()
}
