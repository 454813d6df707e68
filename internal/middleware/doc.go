// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package middleware provides chi-compatible HTTP middleware.

Components:

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - Compression: pooled gzip for clients sending Accept-Encoding: gzip;
    PDFs and images pass through untouched

Both have the signature func(http.Handler) http.Handler and are installed
with chi's r.Use. PrometheusMetrics must wrap the router (not a sub-route)
so the route pattern is complete when it is read.
*/
package middleware
