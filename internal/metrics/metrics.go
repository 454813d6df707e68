// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Model Metrics
	ModelTrainingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_training_duration_seconds",
			Help:    "Time spent fitting each model at startup",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"model"}, // "classifier", "yield", "price"
	)

	ModelClasses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_classes",
			Help: "Number of distinct crops the classifier can predict",
		},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of historical records loaded from the dataset",
		},
	)

	ModelCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_cache_lookups_total",
			Help: "Trained model cache lookups at startup",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of predictions served",
		},
		[]string{"kind"}, // "single", "top_k", "report"
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prediction_duration_seconds",
			Help:    "Inference latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"kind"},
	)

	// Report Metrics
	ReportBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_size_bytes",
			Help:    "Size of generated PDF reports",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 10),
		},
	)

	ReportErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "report_errors_total",
			Help: "Total number of failed PDF renders",
		},
	)

	// Weather Upstream Metrics
	WeatherRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_requests_total",
			Help: "Weather lookups by outcome",
		},
		[]string{"outcome"}, // "success", "cache_hit", "stale", "not_found", "not_configured", "canceled", "error"
	)

	WeatherUpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weather_upstream_duration_seconds",
			Help:    "Latency of calls to the weather provider",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Store Maintenance Metrics
	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_gc_runs_total",
			Help: "Value log garbage collection passes by result",
		},
		[]string{"store", "result"}, // "ok", "error"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordModelTraining records how long one model took to fit.
func RecordModelTraining(model string, duration time.Duration) {
	ModelTrainingDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// SetModelShape publishes dataset size and class count after a build.
func SetModelShape(records, classes int) {
	DatasetRecords.Set(float64(records))
	ModelClasses.Set(float64(classes))
}

// RecordModelCache records a trained-model cache lookup result.
func RecordModelCache(result string) {
	ModelCacheLookups.WithLabelValues(result).Inc()
}

// RecordPrediction records one inference call.
func RecordPrediction(kind string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(kind).Inc()
	PredictionDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordReport records a rendered report; size <= 0 counts as a failure.
func RecordReport(size int) {
	if size <= 0 {
		ReportErrors.Inc()
		return
	}
	ReportBytes.Observe(float64(size))
}

// RecordWeatherRequest records a weather lookup outcome. duration is the
// upstream latency and is ignored when no upstream call was made.
func RecordWeatherRequest(outcome string, duration time.Duration) {
	WeatherRequests.WithLabelValues(outcome).Inc()
	if duration > 0 {
		WeatherUpstreamDuration.Observe(duration.Seconds())
	}
}

// SetCircuitBreakerState publishes a breaker state (0=closed, 1=half-open, 2=open).
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCircuitBreakerTransition counts a breaker state change.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordStoreGC counts one garbage collection pass over a persistent store.
func RecordStoreGC(store string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreGCRuns.WithLabelValues(store, result).Inc()
}
