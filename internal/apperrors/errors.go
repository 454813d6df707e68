// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package apperrors defines the error taxonomy shared by the predictor,
// reference lookups, weather client and HTTP layer. Producers wrap these
// sentinels with fmt.Errorf("...: %w"); the API maps them to status codes
// with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound is returned for an unknown crop name or language code.
	ErrNotFound = errors.New("not found")

	// ErrNotReady is returned when the model store has not been built.
	ErrNotReady = errors.New("models not loaded")

	// ErrUpstream is returned when a third-party service fails or answers
	// with an unexpected shape.
	ErrUpstream = errors.New("upstream service failure")

	// ErrNotConfigured is returned when an optional integration lacks
	// required settings, such as a missing weather API key.
	ErrNotConfigured = errors.New("integration not configured")

	// ErrInvalidInput is returned for malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
)
