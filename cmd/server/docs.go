// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// @title Crop Recommendation API
// @version 2.0
// @description Recommends crops from soil nutrients and climate readings, with yield,
// @description price and revenue estimates from random forest models trained on
// @description historical records.
// @description
// @description ## Rate Limiting
// @description
// @description Data endpoints allow 100 requests per minute per IP address by default.
// @description Health probes, the banner and /metrics are not limited.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_FAILED",
// @description     "message": "Validation failed",
// @description     "request_id": "9f1c...",
// @description     "details": {}
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/indradhanu/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Banner and health probes
//
// @tag.name Predictions
// @tag.description Single and top-3 crop recommendations
//
// @tag.name Reports
// @tag.description PDF recommendation reports
//
// @tag.name Crops
// @tag.description Crop catalogue, history and summaries
//
// @tag.name Translations
// @tag.description UI labels in English, Hindi and Marathi
//
// @tag.name Weather
// @tag.description Current conditions from OpenWeatherMap
package main
