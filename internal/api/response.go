// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/models"
	"github.com/tomtom215/indradhanu/internal/validation"
)

// respondJSON writes v as JSON with an ETag derived from the body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak validator from data using FNV-1a. It is
// computed on the identity body, so it stays weak across content codings.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError writes the error envelope, tagging it with the request ID.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.ErrorResponse{
		Success: false,
		Error: &models.APIError{
			Code:      code,
			Message:   message,
			RequestID: logging.RequestIDFromContext(r.Context()),
			Details:   details,
		},
	})
}

// respondValidationError writes a 400 VALIDATION_FAILED envelope.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

// respondServiceError maps a domain error to its status and code. notFound is
// the client-facing message used for apperrors.ErrNotFound. The raw error is
// logged and never returned for server-side failures.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	log := logging.Ctx(r.Context())

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		respondError(w, r, http.StatusBadRequest, models.CodeBadRequest, sanitizeLogValue(err.Error()), nil)

	case errors.Is(err, apperrors.ErrNotFound):
		respondError(w, r, http.StatusNotFound, models.CodeNotFound, notFound, nil)

	case errors.Is(err, apperrors.ErrNotReady):
		log.Warn().Err(err).Str("path", sanitizeLogValue(r.URL.Path)).Msg("Models not ready")
		respondError(w, r, http.StatusServiceUnavailable, models.CodeServiceUnavailable,
			"Models are not loaded", nil)

	case errors.Is(err, apperrors.ErrNotConfigured):
		respondError(w, r, http.StatusServiceUnavailable, models.CodeServiceUnavailable,
			"Weather service is not configured", nil)

	case errors.Is(err, context.Canceled):
		log.Debug().Str("path", sanitizeLogValue(r.URL.Path)).Msg("Request canceled by client")
		respondError(w, r, http.StatusServiceUnavailable, models.CodeRequestCanceled,
			"Request was canceled", nil)

	case errors.Is(err, apperrors.ErrUpstream):
		log.Warn().Str("error", sanitizeLogValue(err.Error())).Msg("Upstream failure")
		respondError(w, r, http.StatusBadGateway, models.CodeExternalService,
			"Weather service is unavailable", nil)

	default:
		log.Error().Str("error", sanitizeLogValue(err.Error())).
			Str("path", sanitizeLogValue(r.URL.Path)).Msg("API Error")
		respondError(w, r, http.StatusInternalServerError, models.CodeInternal,
			"Internal server error", nil)
	}
}
