// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/i18n"
	"github.com/tomtom215/indradhanu/internal/models"
	"github.com/tomtom215/indradhanu/internal/validation"
)

// Translations returns the UI label table for a language.
//
// @Summary UI labels for a language
// @Tags Translations
// @Produce json
// @Param lang path string true "Language code" Enums(en, hi, mr)
// @Success 200 {object} models.TranslationsResponse
// @Failure 404 {object} models.ErrorResponse "Language not supported"
// @Router /translations/{lang} [get]
func (h *Handler) Translations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")

	table, err := i18n.Lookup(lang)
	if err != nil {
		respondServiceError(w, r, err, "Language not supported")
		return
	}
	respondJSON(w, http.StatusOK, &models.TranslationsResponse{
		Success:      true,
		Language:     strings.TrimSpace(lang),
		Translations: table,
	})
}

// Languages lists the supported languages.
//
// @Summary Supported languages
// @Tags Translations
// @Produce json
// @Success 200 {object} models.LanguagesResponse
// @Router /languages [get]
func (h *Handler) Languages(w http.ResponseWriter, _ *http.Request) {
	langs := i18n.Languages()
	out := make([]models.Language, len(langs))
	for i, l := range langs {
		out[i] = models.Language{Code: l.Code, Name: l.Name}
	}
	respondJSON(w, http.StatusOK, &models.LanguagesResponse{Success: true, Languages: out})
}

// Weather returns current conditions for a city from OpenWeatherMap.
//
// @Summary Current weather
// @Description Temperature (°C), humidity (%) and last-hour rainfall (mm). When the provider fails, the last stored reading is returned with stale=true.
// @Tags Weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} models.WeatherResponse
// @Failure 400 {object} models.ErrorResponse "Invalid city"
// @Failure 404 {object} models.ErrorResponse "City not found"
// @Failure 502 {object} models.ErrorResponse "Weather provider failed"
// @Failure 503 {object} models.ErrorResponse "Weather not configured"
// @Router /api/weather/{city} [get]
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	param := validation.CityParam{City: strings.TrimSpace(chi.URLParam(r, "city"))}
	if verr := validation.ValidateStruct(&param); verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	if h.weather == nil {
		respondServiceError(w, r, apperrors.ErrNotConfigured, "")
		return
	}

	reading, err := h.weather.Current(r.Context(), param.City)
	if err != nil {
		respondServiceError(w, r, err, "City '"+param.City+"' not found")
		return
	}

	resp := &models.WeatherResponse{
		Success:     true,
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		Rainfall:    reading.Rainfall,
		City:        param.City,
		Stale:       reading.Stale,
	}
	if reading.Stale && !reading.FetchedAt.IsZero() {
		fetched := reading.FetchedAt
		resp.FetchedAt = &fetched
	}
	respondJSON(w, http.StatusOK, resp)
}
