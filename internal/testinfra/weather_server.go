// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// WeatherCapture is one request received by MockWeatherServer.
type WeatherCapture struct {
	Method string
	Path   string
	Query  url.Values
}

// MockWeatherServer imitates the OpenWeatherMap current weather endpoint.
type MockWeatherServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	captures []WeatherCapture

	// ResponseStatus is the status returned when ResponseFunc is nil.
	// Default: 200.
	ResponseStatus int

	// ResponseBody is returned when ResponseFunc is nil.
	ResponseBody []byte

	// ResponseFunc overrides the canned response.
	ResponseFunc func(w http.ResponseWriter, r *http.Request)
}

// NewMockWeatherServer starts a server answering with body for every city.
// It is closed when the test ends.
func NewMockWeatherServer(t testing.TB, body []byte) *MockWeatherServer {
	t.Helper()

	m := &MockWeatherServer{
		ResponseStatus: http.StatusOK,
		ResponseBody:   body,
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.captures = append(m.captures, WeatherCapture{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
		})
		status, respBody, fn := m.ResponseStatus, m.ResponseBody, m.ResponseFunc
		m.mu.Unlock()

		if fn != nil {
			fn(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if respBody != nil {
			_, _ = w.Write(respBody) //nolint:errcheck // test server
		}
	}))
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the base URL to configure the weather client with.
func (m *MockWeatherServer) URL() string {
	return m.Server.URL
}

// SetResponse replaces the canned status and body.
func (m *MockWeatherServer) SetResponse(status int, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseStatus = status
	m.ResponseBody = body
}

// Captures returns a copy of the received requests.
func (m *MockWeatherServer) Captures() []WeatherCapture {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]WeatherCapture, len(m.captures))
	copy(out, m.captures)
	return out
}

// Requests returns the number of received requests.
func (m *MockWeatherServer) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.captures)
}

// OpenWeatherBody builds a current weather payload. A negative rain1h omits
// the rain object, as the real API does on dry days.
func OpenWeatherBody(city string, temp, humidity, rain1h float64) []byte {
	payload := map[string]any{
		"name": city,
		"main": map[string]any{
			"temp":     temp,
			"humidity": humidity,
		},
	}
	if rain1h >= 0 {
		payload["rain"] = map[string]any{"1h": rain1h}
	}
	data, _ := json.Marshal(payload) //nolint:errcheck // static shape
	return data
}

// OpenWeatherError builds an error payload.
func OpenWeatherError(code int, message string) []byte {
	data, _ := json.Marshal(map[string]any{"cod": code, "message": message}) //nolint:errcheck // static shape
	return data
}
