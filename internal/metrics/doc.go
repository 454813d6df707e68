// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package metrics provides Prometheus collectors for the recommendation service.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Models:
  - model_training_duration_seconds{model}
  - model_classes, dataset_records
  - model_cache_lookups_total{result}
  - predictions_total{kind}, prediction_duration_seconds{kind}

Reports:
  - report_size_bytes, report_errors_total

Weather:
  - weather_requests_total{outcome}
  - weather_upstream_duration_seconds
  - circuit_breaker_state{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Endpoint labels use the chi route pattern (for example /crop-info/{crop_name})
so crop names and cities never become label values.
*/
package metrics
