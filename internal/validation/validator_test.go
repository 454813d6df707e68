// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package validation

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/tomtom215/indradhanu/internal/dataset"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

func completeInput() FeatureInput {
	return NewFeatureInput(dataset.FeatureVector{
		Nitrogen: 90, Phosphorus: 42, Potassium: 43,
		Temperature: 20.8, Humidity: 82, PHValue: 6.5, Rainfall: 202.9,
	})
}

func TestValidateFeatureInput_Valid(t *testing.T) {
	t.Parallel()

	in := completeInput()
	if err := ValidateStruct(&in); err != nil {
		t.Fatalf("ValidateStruct: %v", err)
	}

	zero := NewFeatureInput(dataset.FeatureVector{})
	if err := ValidateStruct(&zero); err != nil {
		t.Errorf("explicit zeros rejected: %v", err)
	}

	negative := NewFeatureInput(dataset.FeatureVector{Temperature: -5})
	if err := ValidateStruct(&negative); err != nil {
		t.Errorf("negative value rejected: %v", err)
	}
}

func TestValidateFeatureInput_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*FeatureInput)
		fields []string
	}{
		{"ph", func(in *FeatureInput) { in.PHValue = nil }, []string{"ph_value"}},
		{"nitrogen", func(in *FeatureInput) { in.Nitrogen = nil }, []string{"nitrogen"}},
		{"two", func(in *FeatureInput) { in.Humidity, in.Rainfall = nil, nil }, []string{"humidity", "rainfall"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := completeInput()
			tt.mutate(&in)

			verr := ValidateStruct(&in)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if got := verr.Fields(); !slices.Equal(got, tt.fields) {
				t.Errorf("Fields = %v, want %v", got, tt.fields)
			}
			for _, e := range verr.Errors() {
				if e.Tag() != "required" {
					t.Errorf("tag = %q, want required", e.Tag())
				}
			}
		})
	}
}

func TestValidateFeatureInput_NotFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		in := completeInput()
		in.Rainfall = &v

		verr := ValidateStruct(&in)
		if verr == nil {
			t.Fatalf("%v accepted", v)
		}
		if got := verr.Error(); got != "rainfall must be a finite number" {
			t.Errorf("message = %q", got)
		}
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	in := completeInput()
	in.PHValue = nil
	single := ValidateStruct(&in).ToAPIError()
	if single.Code != "VALIDATION_FAILED" || single.Message != "ph_value is required" {
		t.Errorf("single = %+v", single)
	}
	if single.Details["field"] != "ph_value" {
		t.Errorf("details = %v", single.Details)
	}

	var empty FeatureInput
	multi := ValidateStruct(&empty).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != dataset.NumFeatures {
		t.Fatalf("details = %v", multi.Details)
	}
	if !strings.Contains(multi.Message, "nitrogen is required") {
		t.Errorf("message = %q", multi.Message)
	}

	if got := (&RequestValidationError{}).ToAPIError(); got.Message != "Validation failed" {
		t.Errorf("empty = %+v", got)
	}
}

func TestFeatureVectorConversion(t *testing.T) {
	t.Parallel()

	want := dataset.FeatureVector{Nitrogen: 1, Phosphorus: 2, Potassium: 3, Temperature: 4, Humidity: 5, PHValue: 6, Rainfall: 7}
	in := NewFeatureInput(want)
	if got := in.FeatureVector(); got != want {
		t.Errorf("FeatureVector = %+v, want %+v", got, want)
	}
}

func TestCityParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		city  string
		valid bool
	}{
		{"Pune", true},
		{"", false},
		{strings.Repeat("x", 101), false},
	}
	for _, tt := range tests {
		p := CityParam{City: tt.city}
		if got := ValidateStruct(&p) == nil; got != tt.valid {
			t.Errorf("city %q valid = %v, want %v", tt.city, got, tt.valid)
		}
	}
}
