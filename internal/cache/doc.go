// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package cache provides a thread-safe in-memory cache with TTL expiration.

The weather client keeps recent readings here so repeated requests for a city
within the TTL do not reach the upstream API.

# Usage Example

	c := cache.New[weather.Reading](10 * time.Minute)
	defer c.Close()

	c.Set(cache.NormalizeKey("Pune"), reading)
	if r, ok := c.Get(cache.NormalizeKey("pune")); ok {
	    // use r
	}

# Expiration

Entries expire lazily on Get and are swept by a background goroutine every
cleanup interval. Close stops the sweeper; a closed cache still answers Get
and Set.

# Statistics

GetStats returns hit, miss and eviction counters. HitRate derives the hit
percentage from them.
*/
package cache
