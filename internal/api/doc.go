// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package api provides the HTTP layer of the crop recommendation service.

Key Components:

  - Router: chi route table and global middleware stack (SetupChi)
  - Handler: request handlers over a Recommender and a WeatherProvider
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories
  - Response helpers: JSON encoding with goccy/go-json, ETags, and the
    error envelope

Endpoints:

	GET  /                          banner
	GET  /health                    model and dependency state
	GET  /health/live, /health/ready probes
	POST /predict                   single best crop
	POST /predict-top-3             three most probable distinct crops
	POST /generate-report           PDF attachment
	GET  /crops                     crop catalogue
	GET  /crop-history/{crop_name}  history, case-insensitive
	GET  /crop-info/{crop_name}     summary, case-insensitive
	GET  /translations/{lang}       UI labels
	GET  /languages                 supported languages
	GET  /api/weather/{city}        current weather
	GET  /metrics                   Prometheus exposition
	GET  /swagger/*                 OpenAPI UI and doc.json

Middleware Stack (outermost first):

 1. RequestIDWithLogging: X-Request-ID in and out, request-scoped logger
 2. chi RealIP
 3. PrometheusMetrics: labelled by route pattern
 4. RequestLogger
 5. chi Recoverer
 6. CORS
 7. RateLimit and Compression on the data routes only

Error Handling:

Every failure is written as

	{"success": false, "error": {"code": "...", "message": "...", "request_id": "..."}}

Domain errors map by errors.Is: apperrors.ErrInvalidInput to 400,
ErrNotFound to 404, ErrNotReady and ErrNotConfigured to 503, ErrUpstream
to 502, anything else to 500 with an opaque message. Malformed bodies are
400 BAD_REQUEST and missing or non-finite fields are 400 VALIDATION_FAILED.

Numeric fields of prediction responses are rounded to two decimals here and
nowhere else.
*/
package api
