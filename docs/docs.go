// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package docs registers the OpenAPI document served at /swagger/doc.json.
//
// Regenerate after changing handler annotations:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/indradhanu/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RootResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthStatus"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProbeStatus"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProbeStatus"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Predictions"],
                "summary": "Predict the best crop",
                "parameters": [
                    {"description": "Soil and climate measurements", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.FeatureInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PredictionResponse"}},
                    "400": {"description": "Malformed body or missing field", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/predict-top-3": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Predictions"],
                "summary": "Predict the top three crops",
                "parameters": [
                    {"description": "Soil and climate measurements", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.FeatureInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TopCropsResponse"}},
                    "400": {"description": "Malformed body or missing field", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/generate-report": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "tags": ["Reports"],
                "summary": "Generate a PDF report",
                "parameters": [
                    {"description": "Soil and climate measurements", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.FeatureInput"}}
                ],
                "responses": {
                    "200": {"description": "crop_report_YYYYMMDD_HHMMSS.pdf", "schema": {"type": "file"}},
                    "400": {"description": "Malformed body or missing field", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Rendering failed", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/crops": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crops"],
                "summary": "List crops",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CropsResponse"}},
                    "503": {"description": "Models not loaded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/crop-history/{crop_name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crops"],
                "summary": "Crop history",
                "parameters": [
                    {"type": "string", "description": "Crop name, any case", "name": "crop_name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CropHistoryResponse"}},
                    "404": {"description": "Unknown crop", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/crop-info/{crop_name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crops"],
                "summary": "Crop summary",
                "parameters": [
                    {"type": "string", "description": "Crop name, any case", "name": "crop_name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CropInfoResponse"}},
                    "404": {"description": "Unknown crop", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/translations/{lang}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Translations"],
                "summary": "UI labels for a language",
                "parameters": [
                    {"enum": ["en", "hi", "mr"], "type": "string", "description": "Language code", "name": "lang", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TranslationsResponse"}},
                    "404": {"description": "Language not supported", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Translations"],
                "summary": "Supported languages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LanguagesResponse"}}
                }
            }
        },
        "/api/weather/{city}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Current weather",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WeatherResponse"}},
                    "400": {"description": "Invalid city", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "City not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Weather provider failed", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Weather not configured", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_FAILED"},
                "message": {"type": "string", "example": "nitrogen is required"},
                "request_id": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        },
        "models.RootResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "docs": {"type": "string", "example": "/docs"},
                "health": {"type": "string", "example": "/health"}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "models_loaded": {"type": "boolean"},
                "crops": {"type": "integer"},
                "records": {"type": "integer"},
                "trained_at": {"type": "string", "format": "date-time"},
                "from_cache": {"type": "boolean"},
                "weather": {"type": "string", "example": "configured"},
                "uptime_seconds": {"type": "number"},
                "version": {"type": "string"}
            }
        },
        "models.ProbeStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ready"}
            }
        },
        "models.CropPrediction": {
            "type": "object",
            "properties": {
                "crop": {"type": "string", "example": "Rice"},
                "confidence": {"type": "number", "example": 87.5},
                "yield_kg_per_hectare": {"type": "number", "example": 3200},
                "price_per_quintal": {"type": "number", "example": 2100},
                "estimated_revenue": {"type": "number", "example": 67200}
            }
        },
        "models.PredictionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "crop": {"type": "string", "example": "Rice"},
                "confidence": {"type": "number", "example": 87.5},
                "yield_kg_per_hectare": {"type": "number", "example": 3200},
                "price_per_quintal": {"type": "number", "example": 2100},
                "estimated_revenue": {"type": "number", "example": 67200}
            }
        },
        "models.TopCropsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "top_crops": {"type": "array", "items": {"$ref": "#/definitions/models.CropPrediction"}}
            }
        },
        "models.CropsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "crops": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "integer"}
            }
        },
        "models.HistoryPoint": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "yield": {"type": "number"},
                "price": {"type": "number"},
                "rainfall": {"type": "number"},
                "temperature": {"type": "number"}
            }
        },
        "models.CropHistoryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "crop": {"type": "string", "example": "Wheat"},
                "total_records": {"type": "integer"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/models.HistoryPoint"}},
                "avg_yield": {"type": "number"},
                "max_yield": {"type": "number"},
                "min_yield": {"type": "number"},
                "avg_price": {"type": "number"},
                "max_price": {"type": "number"},
                "min_price": {"type": "number"}
            }
        },
        "models.Conditions": {
            "type": "object",
            "properties": {
                "nitrogen": {"type": "number"},
                "phosphorus": {"type": "number"},
                "potassium": {"type": "number"},
                "temperature": {"type": "number"},
                "humidity": {"type": "number"},
                "ph_value": {"type": "number"},
                "rainfall": {"type": "number"}
            }
        },
        "models.CropInfoResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "crop": {"type": "string", "example": "Wheat"},
                "avg_yield": {"type": "number"},
                "avg_price": {"type": "number"},
                "avg_revenue": {"type": "number"},
                "total_records": {"type": "integer"},
                "optimal_conditions": {"$ref": "#/definitions/models.Conditions"}
            }
        },
        "models.TranslationsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "language": {"type": "string", "example": "hi"},
                "translations": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.Language": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "mr"},
                "name": {"type": "string"}
            }
        },
        "models.LanguagesResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "languages": {"type": "array", "items": {"$ref": "#/definitions/models.Language"}}
            }
        },
        "models.WeatherResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "temperature": {"type": "number", "example": 28.4},
                "humidity": {"type": "number", "example": 71},
                "rainfall": {"type": "number", "example": 0},
                "city": {"type": "string", "example": "Pune"},
                "stale": {"type": "boolean"},
                "fetched_at": {"type": "string", "format": "date-time"}
            }
        },
        "validation.FeatureInput": {
            "type": "object",
            "required": ["nitrogen", "phosphorus", "potassium", "temperature", "humidity", "ph_value", "rainfall"],
            "properties": {
                "nitrogen": {"type": "number", "example": 90},
                "phosphorus": {"type": "number", "example": 42},
                "potassium": {"type": "number", "example": 43},
                "temperature": {"type": "number", "example": 20.9},
                "humidity": {"type": "number", "example": 82},
                "ph_value": {"type": "number", "example": 6.5},
                "rainfall": {"type": "number", "example": 202.9}
            }
        }
    },
    "tags": [
        {"description": "Banner, health and readiness", "name": "Core"},
        {"description": "Crop recommendation from soil and climate measurements", "name": "Predictions"},
        {"description": "Historical crop reference data", "name": "Crops"},
        {"description": "PDF reports", "name": "Reports"},
        {"description": "UI label tables", "name": "Translations"},
        {"description": "Current weather from OpenWeatherMap", "name": "Weather"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Crop Recommendation API",
	Description:      "Recommends crops from soil nutrients and climate, with yield, price and revenue estimates, crop history, PDF reports and a weather lookup.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
