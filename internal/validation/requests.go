// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package validation

import (
	"github.com/tomtom215/indradhanu/internal/dataset"
)

// FeatureInput is the request body of every prediction endpoint. Pointer
// fields distinguish an omitted field from an explicit zero.
type FeatureInput struct {
	Nitrogen    *float64 `json:"nitrogen" validate:"required,finite"`
	Phosphorus  *float64 `json:"phosphorus" validate:"required,finite"`
	Potassium   *float64 `json:"potassium" validate:"required,finite"`
	Temperature *float64 `json:"temperature" validate:"required,finite"`
	Humidity    *float64 `json:"humidity" validate:"required,finite"`
	PHValue     *float64 `json:"ph_value" validate:"required,finite"`
	Rainfall    *float64 `json:"rainfall" validate:"required,finite"`
}

// FeatureVector converts a validated input. It panics on a nil field, so
// call it only after ValidateStruct succeeds.
func (in *FeatureInput) FeatureVector() dataset.FeatureVector {
	return dataset.FeatureVector{
		Nitrogen:    *in.Nitrogen,
		Phosphorus:  *in.Phosphorus,
		Potassium:   *in.Potassium,
		Temperature: *in.Temperature,
		Humidity:    *in.Humidity,
		PHValue:     *in.PHValue,
		Rainfall:    *in.Rainfall,
	}
}

// NewFeatureInput builds a complete input from a vector.
func NewFeatureInput(fv dataset.FeatureVector) FeatureInput {
	return FeatureInput{
		Nitrogen:    &fv.Nitrogen,
		Phosphorus:  &fv.Phosphorus,
		Potassium:   &fv.Potassium,
		Temperature: &fv.Temperature,
		Humidity:    &fv.Humidity,
		PHValue:     &fv.PHValue,
		Rainfall:    &fv.Rainfall,
	}
}

// CityParam is the weather path parameter.
type CityParam struct {
	City string `json:"city" validate:"required,max=100"`
}
