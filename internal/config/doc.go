// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package config loads the service configuration with koanf.

Configuration is layered, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml or
    /etc/indradhanu/config.yaml
 3. Environment variables from an explicit mapping table

# Environment Variables

	PORT, HOST                 server.port, server.host
	DATASET_PATH               dataset.path (.xlsx, .xlsm or .csv)
	DATASET_SHEET              dataset.sheet
	MODEL_TREES, MODEL_SEED    model.trees, model.seed
	MODEL_CACHE_DIR            model.cache_dir
	OPENWEATHER_API_KEY        weather.api_key
	OPENWEATHER_BASE_URL       weather.base_url
	WEATHER_TIMEOUT            weather.timeout
	WEATHER_STORE_PATH         weather.store_path
	CORS_ORIGINS               security.cors_origins (comma separated)
	RATE_LIMIT_REQS            security.rate_limit_reqs
	RATE_LIMIT_WINDOW          security.rate_limit_window
	DISABLE_RATE_LIMIT         security.rate_limit_disabled
	LOG_LEVEL, LOG_FORMAT      logging.level, logging.format

Durations accept Go syntax ("10s", "1m30s").

# Example File

	server:
	  port: 8080
	dataset:
	  path: /data/Updated_Crop_Yield_Prediction.xlsx
	model:
	  trees: 200
	  cache_dir: /var/cache/indradhanu
	weather:
	  store_path: /var/lib/indradhanu/weather
	security:
	  cors_origins: ["https://farm.example.org"]
*/
package config
