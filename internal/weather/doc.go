// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package weather fetches current conditions for a city from OpenWeatherMap.

# Request Path

Client.Current resolves a city in this order:

 1. In-memory TTL cache (internal/cache), keyed by the normalized city name.
 2. Upstream call through an outbound rate limiter and a circuit breaker.
    Each call has its own timeout and is never retried.
 3. On upstream failure, the last good reading from the Store, marked Stale.

A missing API key fails with apperrors.ErrNotConfigured before any network
activity. An upstream 404 fails with apperrors.ErrNotFound and does not count
against the breaker. Every other failure without a stored reading fails with
apperrors.ErrUpstream.

# Stores

MemoryStore keeps last good readings for the life of the process.
BadgerStore persists them so they survive restarts:

	db, err := badger.Open(badger.DefaultOptions(cfg.StorePath))
	store := weather.NewBadgerStore(db)
	client := weather.NewClient(cfg, weather.WithStore(store))

# Circuit Breaker

The breaker opens after five consecutive failures, stays open for 30 seconds
and then admits up to three probe requests. State changes are logged and
exported through internal/metrics.
*/
package weather
