// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package models

import (
	"time"
)

// ErrorResponse is the body of every non-2xx JSON response.
//
// Example:
//
//	{
//	  "success": false,
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Crop 'Quinoa' not found",
//	    "request_id": "0f8c3f6e-5a0b-4f43-9b1e-8c6d1f2e4a7b"
//	  }
//	}
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

// APIError describes a failed request. Details carries per-field
// validation failures and is omitted otherwise.
type APIError struct {
	Code      string                 `json:"code" example:"VALIDATION_FAILED"`
	Message   string                 `json:"message" example:"nitrogen is required"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned in APIError.Code.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeExternalService    = "EXTERNAL_SERVICE_FAILED"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeRequestCanceled    = "REQUEST_CANCELED"
	CodeInternal           = "INTERNAL_ERROR"
)

// RootResponse is the service banner.
type RootResponse struct {
	Message string `json:"message" example:"🌾 Crop Recommendation API v2.0"`
	Docs    string `json:"docs" example:"/docs"`
	Health  string `json:"health" example:"/health"`
}

// HealthStatus reports process and model state.
type HealthStatus struct {
	Status       string     `json:"status" example:"healthy"`
	ModelsLoaded bool       `json:"models_loaded"`
	Crops        int        `json:"crops"`
	Records      int        `json:"records"`
	TrainedAt    *time.Time `json:"trained_at,omitempty"`
	FromCache    bool       `json:"from_cache"`
	Weather      string     `json:"weather" example:"configured"`
	Uptime       float64    `json:"uptime_seconds"`
	Version      string     `json:"version,omitempty"`
}

// ProbeStatus is the body of the liveness and readiness probes.
type ProbeStatus struct {
	Status string `json:"status" example:"ready"`
}

// CropPrediction is one recommendation rounded for display.
type CropPrediction struct {
	Crop       string  `json:"crop" example:"Rice"`
	Confidence float64 `json:"confidence" example:"87.5"`
	Yield      float64 `json:"yield_kg_per_hectare" example:"3200"`
	Price      float64 `json:"price_per_quintal" example:"2100"`
	Revenue    float64 `json:"estimated_revenue" example:"67200"`
}

// PredictionResponse is the body of POST /predict.
type PredictionResponse struct {
	Success bool `json:"success" example:"true"`
	CropPrediction
}

// TopCropsResponse is the body of POST /predict-top-3.
type TopCropsResponse struct {
	Success  bool             `json:"success" example:"true"`
	TopCrops []CropPrediction `json:"top_crops"`
}

// CropsResponse is the body of GET /crops.
type CropsResponse struct {
	Success bool     `json:"success" example:"true"`
	Crops   []string `json:"crops"`
	Total   int      `json:"total"`
}

// HistoryPoint is one historical row.
type HistoryPoint struct {
	Index       int     `json:"index"`
	Yield       float64 `json:"yield"`
	Price       float64 `json:"price"`
	Rainfall    float64 `json:"rainfall"`
	Temperature float64 `json:"temperature"`
}

// CropHistoryResponse is the body of GET /crop-history/{crop_name}.
type CropHistoryResponse struct {
	Success      bool           `json:"success" example:"true"`
	Crop         string         `json:"crop" example:"Wheat"`
	TotalRecords int            `json:"total_records"`
	History      []HistoryPoint `json:"history"`
	AvgYield     float64        `json:"avg_yield"`
	MaxYield     float64        `json:"max_yield"`
	MinYield     float64        `json:"min_yield"`
	AvgPrice     float64        `json:"avg_price"`
	MaxPrice     float64        `json:"max_price"`
	MinPrice     float64        `json:"min_price"`
}

// Conditions is a feature vector as returned by GET /crop-info.
type Conditions struct {
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PHValue     float64 `json:"ph_value"`
	Rainfall    float64 `json:"rainfall"`
}

// CropInfoResponse is the body of GET /crop-info/{crop_name}.
type CropInfoResponse struct {
	Success           bool       `json:"success" example:"true"`
	Crop              string     `json:"crop" example:"Wheat"`
	AvgYield          float64    `json:"avg_yield"`
	AvgPrice          float64    `json:"avg_price"`
	AvgRevenue        float64    `json:"avg_revenue"`
	TotalRecords      int        `json:"total_records"`
	OptimalConditions Conditions `json:"optimal_conditions"`
}

// TranslationsResponse is the body of GET /translations/{lang}.
type TranslationsResponse struct {
	Success      bool              `json:"success" example:"true"`
	Language     string            `json:"language" example:"hi"`
	Translations map[string]string `json:"translations"`
}

// Language is one entry of the language catalogue.
type Language struct {
	Code string `json:"code" example:"mr"`
	Name string `json:"name" example:"मराठी"`
}

// LanguagesResponse is the body of GET /languages.
type LanguagesResponse struct {
	Success   bool       `json:"success" example:"true"`
	Languages []Language `json:"languages"`
}

// WeatherResponse is the body of GET /api/weather/{city}.
type WeatherResponse struct {
	Success     bool       `json:"success" example:"true"`
	Temperature float64    `json:"temperature" example:"28.4"`
	Humidity    float64    `json:"humidity" example:"71"`
	Rainfall    float64    `json:"rainfall" example:"0"`
	City        string     `json:"city" example:"Pune"`
	Stale       bool       `json:"stale,omitempty"`
	FetchedAt   *time.Time `json:"fetched_at,omitempty"`
}
