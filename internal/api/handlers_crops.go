// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/models"
)

// Crops lists every crop in the dataset.
//
// @Summary List crops
// @Tags Crops
// @Produce json
// @Success 200 {object} models.CropsResponse
// @Failure 503 {object} models.ErrorResponse "Models not loaded"
// @Router /crops [get]
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	if h.recommender == nil {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}
	crops, err := h.recommender.Crops()
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, &models.CropsResponse{
		Success: true,
		Crops:   crops,
		Total:   len(crops),
	})
}

// CropHistory returns yield and price history for one crop. The name is
// matched case-insensitively.
//
// @Summary Crop history
// @Description Aggregate yield and price figures plus the most recent 20 records
// @Tags Crops
// @Produce json
// @Param crop_name path string true "Crop name, any case"
// @Success 200 {object} models.CropHistoryResponse
// @Failure 404 {object} models.ErrorResponse "Unknown crop"
// @Router /crop-history/{crop_name} [get]
func (h *Handler) CropHistory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "crop_name")
	if h.recommender == nil {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}

	hist, err := h.recommender.History(name)
	if err != nil {
		respondServiceError(w, r, err, fmt.Sprintf("Crop '%s' not found in database", name))
		return
	}

	points := make([]models.HistoryPoint, len(hist.Points))
	for i, p := range hist.Points {
		points[i] = models.HistoryPoint{
			Index:       p.Index,
			Yield:       p.Yield,
			Price:       p.Price,
			Rainfall:    p.Rainfall,
			Temperature: p.Temperature,
		}
	}

	respondJSON(w, http.StatusOK, &models.CropHistoryResponse{
		Success:      true,
		Crop:         hist.Crop,
		TotalRecords: hist.TotalRecords,
		History:      points,
		AvgYield:     hist.AvgYield,
		MaxYield:     hist.MaxYield,
		MinYield:     hist.MinYield,
		AvgPrice:     hist.AvgPrice,
		MaxPrice:     hist.MaxPrice,
		MinPrice:     hist.MinPrice,
	})
}

// CropInfo returns mean economics and growing conditions for one crop.
//
// @Summary Crop summary
// @Tags Crops
// @Produce json
// @Param crop_name path string true "Crop name, any case"
// @Success 200 {object} models.CropInfoResponse
// @Failure 404 {object} models.ErrorResponse "Unknown crop"
// @Router /crop-info/{crop_name} [get]
func (h *Handler) CropInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "crop_name")
	if h.recommender == nil {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}

	info, err := h.recommender.Info(name)
	if err != nil {
		respondServiceError(w, r, err, fmt.Sprintf("Crop '%s' not found", name))
		return
	}

	respondJSON(w, http.StatusOK, &models.CropInfoResponse{
		Success:           true,
		Crop:              info.Crop,
		AvgYield:          info.AvgYield,
		AvgPrice:          info.AvgPrice,
		AvgRevenue:        info.AvgRevenue,
		TotalRecords:      info.TotalRecords,
		OptimalConditions: toConditions(info.OptimalConditions),
	})
}
