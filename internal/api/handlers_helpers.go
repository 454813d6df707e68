// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/models"
	"github.com/tomtom215/indradhanu/internal/predictor"
	"github.com/tomtom215/indradhanu/internal/validation"
)

// maxBodyBytes bounds request bodies. A feature vector is under 200 bytes.
const maxBodyBytes = 64 << 10

// sanitizeLogValue removes control characters from strings to prevent log
// injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// decodeFeatures reads and validates the seven-field request body. On failure
// the error response has been written and ok is false.
func decodeFeatures(w http.ResponseWriter, r *http.Request) (fv dataset.FeatureVector, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var in validation.FeatureInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, models.CodeBadRequest, "Request body too large", nil)
			return fv, false
		}
		respondError(w, r, http.StatusBadRequest, models.CodeBadRequest,
			"Request body must be a JSON object of numeric soil and climate values", nil)
		return fv, false
	}

	if verr := validation.ValidateStruct(&in); verr != nil {
		respondValidationError(w, r, verr)
		return fv, false
	}
	return in.FeatureVector(), true
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toCropPrediction(p predictor.Prediction) models.CropPrediction {
	return models.CropPrediction{
		Crop:       p.Crop,
		Confidence: round2(p.Confidence),
		Yield:      round2(p.Yield),
		Price:      round2(p.Price),
		Revenue:    round2(p.Revenue),
	}
}

func toConditions(fv dataset.FeatureVector) models.Conditions {
	return models.Conditions{
		Nitrogen:    fv.Nitrogen,
		Phosphorus:  fv.Phosphorus,
		Potassium:   fv.Potassium,
		Temperature: fv.Temperature,
		Humidity:    fv.Humidity,
		PHValue:     fv.PHValue,
		Rainfall:    fv.Rainfall,
	}
}
