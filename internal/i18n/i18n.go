// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package i18n holds the UI label tables for the supported languages.
//
// Every table carries the same keys: the seven feature labels followed by
// crop, yield, price and revenue. Tables are package constants and callers
// receive copies.
package i18n

import (
	"fmt"
	"maps"
	"strings"

	"github.com/tomtom215/indradhanu/internal/apperrors"
)

// DefaultLanguage is used when a caller does not name a language.
const DefaultLanguage = "en"

// Language is a supported language code with its native display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिंदी"},
	{Code: "mr", Name: "मराठी"},
}

var tables = map[string]map[string]string{
	"en": {
		"nitrogen":    "Nitrogen",
		"phosphorus":  "Phosphorus",
		"potassium":   "Potassium",
		"temperature": "Temperature",
		"humidity":    "Humidity",
		"ph_value":    "pH Value",
		"rainfall":    "Rainfall",
		"crop":        "Crop",
		"yield":       "Yield",
		"price":       "Price",
		"revenue":     "Revenue",
	},
	"hi": {
		"nitrogen":    "नाइट्रोजन",
		"phosphorus":  "फास्फोरस",
		"potassium":   "पोटैशियम",
		"temperature": "तापमान",
		"humidity":    "आर्द्रता",
		"ph_value":    "पीएच मान",
		"rainfall":    "वर्षा",
		"crop":        "फसल",
		"yield":       "उपज",
		"price":       "मूल्य",
		"revenue":     "राजस्व",
	},
	"mr": {
		"nitrogen":    "नायट्रोजन",
		"phosphorus":  "फॉस्फरस",
		"potassium":   "पोटॅशियम",
		"temperature": "तापमान",
		"humidity":    "आर्द्रता",
		"ph_value":    "पीएच मूल्य",
		"rainfall":    "पाऊस",
		"crop":        "पीक",
		"yield":       "उत्पन्न",
		"price":       "किंमत",
		"revenue":     "महसूल",
	},
}

// Lookup returns a copy of the label table for code. Codes are matched
// exactly after trimming surrounding space; an empty code selects
// DefaultLanguage.
func Lookup(code string) (map[string]string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultLanguage
	}
	t, ok := tables[code]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", code, apperrors.ErrNotFound)
	}
	return maps.Clone(t), nil
}

// Languages returns the supported languages in a stable order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
