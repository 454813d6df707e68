// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/models"
	"github.com/tomtom215/indradhanu/internal/predictor"
	"github.com/tomtom215/indradhanu/internal/testinfra"
	"github.com/tomtom215/indradhanu/internal/weather"
)

// fakeRecommender returns canned answers and records the last input.
type fakeRecommender struct {
	mu sync.Mutex

	ready      bool
	stats      predictor.Stats
	prediction predictor.Prediction
	top        []predictor.Prediction
	crops      []string
	history    map[string]*predictor.History
	info       map[string]*predictor.Info
	err        error

	lastInput dataset.FeatureVector
}

func (f *fakeRecommender) record(fv dataset.FeatureVector) {
	f.mu.Lock()
	f.lastInput = fv
	f.mu.Unlock()
}

func (f *fakeRecommender) input() dataset.FeatureVector {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastInput
}

func (f *fakeRecommender) Ready() bool            { return f.ready }
func (f *fakeRecommender) Stats() predictor.Stats { return f.stats }

func (f *fakeRecommender) Predict(fv dataset.FeatureVector) (predictor.Prediction, error) {
	f.record(fv)
	return f.prediction, f.err
}

func (f *fakeRecommender) TopCrops(fv dataset.FeatureVector) ([]predictor.Prediction, error) {
	f.record(fv)
	return f.top, f.err
}

func (f *fakeRecommender) Crops() ([]string, error) { return f.crops, f.err }

func (f *fakeRecommender) History(name string) (*predictor.History, error) {
	if f.err != nil {
		return nil, f.err
	}
	if h, ok := f.history[strings.ToLower(name)]; ok {
		return h, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeRecommender) Info(name string) (*predictor.Info, error) {
	if f.err != nil {
		return nil, f.err
	}
	if i, ok := f.info[strings.ToLower(name)]; ok {
		return i, nil
	}
	return nil, apperrors.ErrNotFound
}

// fakeWeather returns a fixed reading or error.
type fakeWeather struct {
	configured bool
	reading    *weather.Reading
	err        error
	cities     []string
}

func (f *fakeWeather) Configured() bool { return f.configured }

func (f *fakeWeather) Current(_ context.Context, city string) (*weather.Reading, error) {
	f.cities = append(f.cities, city)
	if f.err != nil {
		return nil, f.err
	}
	r := *f.reading
	r.City = city
	return &r, nil
}

// newTestServer routes through the full middleware stack with rate
// limiting disabled.
func newTestServer(t *testing.T, rec Recommender, wx WeatherProvider, opts ...HandlerOption) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(rec, wx, opts...), NewChiMiddleware(cfg)).SetupChi()
}

// fixtureStore builds a real store on the shared fixture table.
func fixtureStore(t *testing.T) *predictor.Store {
	t.Helper()
	cfg := predictor.DefaultConfig()
	cfg.Forest.Trees = 15
	s, err := predictor.Build(context.Background(), testinfra.CropTable(t), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *models.APIError {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, status, rec.Body.String())
	}
	resp := decode[models.ErrorResponse](t, rec)
	if resp.Success {
		t.Error("success should be false")
	}
	if resp.Error == nil {
		t.Fatal("error object missing")
	}
	if resp.Error.Code != code {
		t.Errorf("code = %q, want %q", resp.Error.Code, code)
	}
	if resp.Error.RequestID == "" {
		t.Error("request_id missing")
	}
	return resp.Error
}

func riceInput() map[string]float64 {
	fv := testinfra.RiceConditions
	return map[string]float64{
		"nitrogen":    fv.Nitrogen,
		"phosphorus":  fv.Phosphorus,
		"potassium":   fv.Potassium,
		"temperature": fv.Temperature,
		"humidity":    fv.Humidity,
		"ph_value":    fv.PHValue,
		"rainfall":    fv.Rainfall,
	}
}
