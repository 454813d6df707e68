// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/indradhanu/internal/config"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/models"
)

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config == nil {
		t.Fatal("config is nil")
	}
	if !reflect.DeepEqual(m.config.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFrom(t *testing.T) {
	t.Parallel()

	cfg := ChiMiddlewareConfigFrom(config.SecurityConfig{
		CORSOrigins:       []string{"https://krishi.example", "https://app.example"},
		RateLimitReqs:     20,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
	})
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.RateLimitRequests != 20 ||
		cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("config = %+v", cfg)
	}

	empty := ChiMiddlewareConfigFrom(config.SecurityConfig{})
	if !reflect.DeepEqual(empty.CORSAllowedOrigins, []string{"*"}) || empty.RateLimitRequests != 100 {
		t.Errorf("zero security config should keep defaults, got %+v", empty)
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://krishi.example"}
	cfg.RateLimitDisabled = true
	srv := NewRouter(NewHandler(nil, nil), NewChiMiddleware(cfg)).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "https://krishi.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://krishi.example" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("Allow-Methods = %q", got)
	}

	other := httptest.NewRequest(http.MethodGet, "/languages", nil)
	other.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, other)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin %q for foreign origin", got)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := NewRouter(NewHandler(nil, nil), NewChiMiddleware(cfg)).SetupChi()

	for i := 0; i < 2; i++ {
		if resp := do(t, srv, http.MethodGet, "/languages", nil); resp.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, resp.Code)
		}
	}
	expectError(t, do(t, srv, http.MethodGet, "/languages", nil), http.StatusTooManyRequests, models.CodeRateLimited)

	// Probes bypass the limiter.
	if resp := do(t, srv, http.MethodGet, "/health/live", nil); resp.Code != http.StatusOK {
		t.Errorf("/health/live status %d while limited", resp.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 1, RateLimitWindow: time.Minute, RateLimitDisabled: true})
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
}

func TestRequestIDWithLogging(t *testing.T) {
	t.Parallel()

	var ctxID, chiID string
	handler := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestIDFromContext(r.Context())
		chiID = chimiddleware.GetReqID(r.Context())
	}))

	t.Run("propagates inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if ctxID != "req-abc-123" || chiID != "req-abc-123" {
			t.Errorf("ids = %q/%q", ctxID, chiID)
		}
		if got := rec.Header().Get(RequestIDHeader); got != "req-abc-123" {
			t.Errorf("response header = %q", got)
		}
	})

	t.Run("generates missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if ctxID == "" || ctxID != chiID || rec.Header().Get(RequestIDHeader) != ctxID {
			t.Errorf("ids = %q/%q header %q", ctxID, chiID, rec.Header().Get(RequestIDHeader))
		}
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if len(ctxID) > 128 {
			t.Errorf("oversized id kept: %d bytes", len(ctxID))
		}
	})
}

func TestErrorEnvelopeCarriesRequestID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/crop-info/Rice", nil)
	req.Header.Set(RequestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	apiErr := expectError(t, rec, http.StatusServiceUnavailable, models.CodeServiceUnavailable)
	if apiErr.RequestID != "trace-42" {
		t.Errorf("request_id = %q", apiErr.RequestID)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"Rice", "Rice"},
		{"Rice\nFAKE LOG", `Rice\x0aFAKE LOG`},
		{"a\tb\x7f", `a\x09b\x7f`},
		{"मराठी", "मराठी"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"crops":["Rice"]}`))
	b := generateETag([]byte(`{"crops":["Wheat"]}`))
	if a == b {
		t.Error("different bodies should yield different ETags")
	}
	if a != generateETag([]byte(`{"crops":["Rice"]}`)) {
		t.Error("ETag should be deterministic")
	}
	if !strings.HasPrefix(a, `W/"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %s should be a quoted weak validator", a)
	}
}

func TestETag_WeakAcrossContentCodings(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, fixtureStore(t), nil)

	plain := do(t, srv, http.MethodGet, "/crops", nil)

	req := httptest.NewRequest(http.MethodGet, "/crops", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	gz := httptest.NewRecorder()
	srv.ServeHTTP(gz, req)

	if plain.Code != http.StatusOK || gz.Code != http.StatusOK {
		t.Fatalf("status = %d / %d", plain.Code, gz.Code)
	}
	etag := plain.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"`) {
		t.Errorf("ETag = %q, want weak validator", etag)
	}
	if got := gz.Header().Get("ETag"); got != etag {
		t.Errorf("gzip ETag = %q, want %q", got, etag)
	}
}
