// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/cache"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/metrics"
)

// DefaultBaseURL is the OpenWeatherMap API root.
const DefaultBaseURL = "https://api.openweathermap.org"

// breakerName labels the circuit breaker in logs and metrics.
const breakerName = "openweather"

// maxErrorBodySize bounds how much of an error response is read.
const maxErrorBodySize = 4 * 1024

// Config configures a Client.
type Config struct {
	APIKey  string
	BaseURL string

	// Timeout bounds one upstream call. Default: 10s.
	Timeout time.Duration

	// RequestsPerSecond and Burst shape outbound traffic. A zero rate
	// disables the limiter.
	RequestsPerSecond float64
	Burst             int

	// CacheTTL is how long a fresh reading is served without calling
	// upstream. Default: 10m.
	CacheTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 10 * time.Minute
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}
	return c
}

// Client is a resilient OpenWeatherMap client. It is safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[*Reading]
	limiter *rate.Limiter
	cache   *cache.Cache[Reading]
	store   Store
	now     func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithStore replaces the default MemoryStore.
func WithStore(s Store) Option {
	return func(c *Client) { c.store = s }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient builds a Client. Call Close when done.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()

	c := &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: cache.New[Reading](cfg.CacheTTL),
		store: NewMemoryStore(),
		now:   time.Now,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	for _, opt := range opts {
		opt(c)
	}

	metrics.SetCircuitBreakerState(breakerName, stateValue(gobreaker.StateClosed))
	c.cb = gobreaker.NewCircuitBreaker[*Reading](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// An unknown city is a valid answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, apperrors.ErrNotFound)
		},
		// A caller that went away says nothing about upstream health.
		IsExcluded: func(err error) bool {
			return errors.Is(err, errCallerDone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Circuit breaker state transition")
			metrics.SetCircuitBreakerState(name, stateValue(to))
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

// Close releases the cache sweeper.
func (c *Client) Close() { c.cache.Close() }

// BreakerState returns the circuit breaker state name.
func (c *Client) BreakerState() string { return c.cb.State().String() }

// Current returns the current conditions for city.
func (c *Client) Current(ctx context.Context, city string) (*Reading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city: %w", apperrors.ErrInvalidInput)
	}
	if !c.Configured() {
		metrics.RecordWeatherRequest("not_configured", 0)
		return nil, fmt.Errorf("weather api key: %w", apperrors.ErrNotConfigured)
	}

	key := cache.NormalizeKey(city)
	if r, ok := c.cache.Get(key); ok {
		metrics.RecordWeatherRequest("cache_hit", 0)
		r.City = city
		return &r, nil
	}

	start := time.Now()
	r, err := c.fetch(ctx, city)
	took := time.Since(start)

	switch {
	case err == nil:
		metrics.RecordWeatherRequest("success", took)
		c.cache.Set(key, *r)
		if serr := c.store.Save(ctx, key, *r); serr != nil {
			logging.Ctx(ctx).Warn().Err(serr).Str("city", city).Msg("Failed to persist weather reading")
		}
		return r, nil

	case errors.Is(err, apperrors.ErrNotFound):
		metrics.RecordWeatherRequest("not_found", took)
		return nil, err

	case ctx.Err() != nil:
		metrics.RecordWeatherRequest("canceled", took)
		logging.Ctx(ctx).Debug().Err(err).Str("city", city).Msg("Weather request abandoned by caller")
		return nil, fmt.Errorf("weather for %q: %w", city, ctx.Err())
	}

	stored, lerr := c.store.Load(ctx, key)
	if lerr == nil {
		metrics.RecordWeatherRequest("stale", took)
		logging.Ctx(ctx).Warn().Err(err).Str("city", city).Time("fetched_at", stored.FetchedAt).
			Msg("Serving stored weather reading")
		stored.City = city
		stored.Stale = true
		return stored, nil
	}
	if !errors.Is(lerr, ErrNoReading) {
		logging.Ctx(ctx).Warn().Err(lerr).Str("city", city).Msg("Failed to read stored weather reading")
	}

	metrics.RecordWeatherRequest("error", took)
	return nil, fmt.Errorf("weather for %q: %w: %w", city, apperrors.ErrUpstream, err)
}

// fetch makes one upstream call through the limiter and the breaker.
func (c *Client) fetch(ctx context.Context, city string) (*Reading, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}
	return c.cb.Execute(func() (*Reading, error) {
		r, err := c.call(ctx, city)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerDone, err)
		}
		return r, err
	})
}

// errCallerDone marks a call cut short by the caller's context rather than
// by the per-call timeout or the upstream.
var errCallerDone = errors.New("caller context done")

// openWeatherResponse is the part of the current weather payload we read.
type openWeatherResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

func (c *Client) call(ctx context.Context, city string) (*Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	endpoint := c.cfg.BaseURL + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The URL carries the API key; report only the failure.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // read-only

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("city %q: %w", city, apperrors.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)) //nolint:errcheck // best-effort diagnostics
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.Main.Temp == nil || payload.Main.Humidity == nil {
		return nil, errors.New("response missing main.temp or main.humidity")
	}

	return &Reading{
		City:        city,
		Temperature: *payload.Main.Temp,
		Humidity:    *payload.Main.Humidity,
		Rainfall:    payload.Rain.OneHour,
		FetchedAt:   c.now(),
	}, nil
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
