// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use and shared. Error field
// names come from json tags, so a missing "ph_value" is reported as
// "ph_value is required" rather than by its Go name.
//
// # Request Types
//
// FeatureInput is the body of /predict, /predict-top-3 and /generate-report.
// Every field is required and must be a finite number; the values themselves
// are not range checked.
//
//	var in validation.FeatureInput
//	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
//	    // 400 BAD_REQUEST
//	}
//	if verr := validation.ValidateStruct(&in); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // 400 VALIDATION_FAILED
//	}
//	fv := in.FeatureVector()
//
// # Custom Validators
//
//   - finite: rejects NaN and infinities on float fields
package validation
