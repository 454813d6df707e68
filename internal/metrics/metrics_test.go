// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func getCounterValue(c prometheus.Counter) float64 {
	var m io_prometheus_client.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getGaugeValue(g prometheus.Gauge) float64 {
	var m io_prometheus_client.Metric
	if err := g.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func getHistogramCount(o prometheus.Observer) uint64 {
	h, ok := o.(prometheus.Metric)
	if !ok {
		return 0
	}
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("POST", "/predict", "200")
	before := getCounterValue(counter)

	RecordAPIRequest("POST", "/predict", "200", 15*time.Millisecond)

	if after := getCounterValue(counter); after != before+1 {
		t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := getGaugeValue(APIActiveRequests)

	TrackActiveRequest(true)
	if got := getGaugeValue(APIActiveRequests); got != before+1 {
		t.Errorf("expected gauge %v, got %v", before+1, got)
	}

	TrackActiveRequest(false)
	if got := getGaugeValue(APIActiveRequests); got != before {
		t.Errorf("expected gauge back to %v, got %v", before, got)
	}
}

func TestRecordPrediction(t *testing.T) {
	counter := PredictionsTotal.WithLabelValues("top_k")
	before := getCounterValue(counter)
	histBefore := getHistogramCount(PredictionDuration.WithLabelValues("top_k"))

	RecordPrediction("top_k", time.Millisecond)

	if after := getCounterValue(counter); after != before+1 {
		t.Errorf("expected predictions_total to increase, got %v -> %v", before, after)
	}
	if after := getHistogramCount(PredictionDuration.WithLabelValues("top_k")); after != histBefore+1 {
		t.Errorf("expected one more latency sample, got %d -> %d", histBefore, after)
	}
}

func TestSetModelShape(t *testing.T) {
	SetModelShape(2200, 22)

	if got := getGaugeValue(DatasetRecords); got != 2200 {
		t.Errorf("dataset_records = %v, want 2200", got)
	}
	if got := getGaugeValue(ModelClasses); got != 22 {
		t.Errorf("model_classes = %v, want 22", got)
	}
}

func TestRecordReport(t *testing.T) {
	errorsBefore := getCounterValue(ReportErrors)
	sizeBefore := getHistogramCount(ReportBytes)

	RecordReport(4096)
	RecordReport(0)

	if got := getCounterValue(ReportErrors); got != errorsBefore+1 {
		t.Errorf("report_errors_total = %v, want %v", got, errorsBefore+1)
	}
	if got := getHistogramCount(ReportBytes); got != sizeBefore+1 {
		t.Errorf("report_size_bytes count = %d, want %d", got, sizeBefore+1)
	}
}

func TestRecordWeatherRequest(t *testing.T) {
	tests := []struct {
		outcome  string
		duration time.Duration
		observed bool
	}{
		{"success", 120 * time.Millisecond, true},
		{"cache", 0, false},
		{"rejected", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			counter := WeatherRequests.WithLabelValues(tt.outcome)
			before := getCounterValue(counter)
			histBefore := getHistogramCount(WeatherUpstreamDuration)

			RecordWeatherRequest(tt.outcome, tt.duration)

			if got := getCounterValue(counter); got != before+1 {
				t.Errorf("weather_requests_total{%s} = %v, want %v", tt.outcome, got, before+1)
			}
			histAfter := getHistogramCount(WeatherUpstreamDuration)
			if tt.observed && histAfter != histBefore+1 {
				t.Errorf("expected a latency sample for %s", tt.outcome)
			}
			if !tt.observed && histAfter != histBefore {
				t.Errorf("expected no latency sample for %s", tt.outcome)
			}
		})
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	SetCircuitBreakerState("weather", 2)
	if got := getGaugeValue(CircuitBreakerState.WithLabelValues("weather")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}

	c := CircuitBreakerTransitions.WithLabelValues("weather", "closed", "open")
	before := getCounterValue(c)
	RecordCircuitBreakerTransition("weather", "closed", "open")
	if got := getCounterValue(c); got != before+1 {
		t.Errorf("transitions = %v, want %v", got, before+1)
	}
}
