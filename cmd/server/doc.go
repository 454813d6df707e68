// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Command server runs the crop recommendation HTTP API.

Startup order:

 1. Configuration: koanf defaults, optional config.yaml, environment
 2. Logging: zerolog, JSON or console
 3. Dataset: .xlsx (excelize) or .csv
 4. Models: classifier plus yield and price regressors, restored from
    model.cache_dir when the fingerprint matches
 5. Weather: OpenWeatherMap client, optional badger store
 6. Supervisor tree: HTTP server and weather store GC under suture

A dataset or training failure is fatal. SIGINT and SIGTERM drain in-flight
requests for up to server.shutdown_timeout.

Common environment variables:

	PORT=8000
	DATASET_PATH=Updated_Crop_Yield_Prediction.xlsx
	MODEL_TREES=100
	MODEL_CACHE_DIR=/var/cache/indradhanu
	OPENWEATHER_API_KEY=<key>        # unset disables /api/weather
	WEATHER_STORE_PATH=/var/lib/indradhanu/weather
	CORS_ORIGINS=https://krishi.example
	LOG_LEVEL=info
	LOG_FORMAT=json

API documentation is served at /docs.
*/
package main
