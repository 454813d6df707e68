// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/metrics"
	"github.com/tomtom215/indradhanu/internal/models"
	"github.com/tomtom215/indradhanu/internal/report"
)

// Predict returns the single most suitable crop.
//
// @Summary Predict the best crop
// @Description Classifies the soil and climate measurements and estimates yield, price and revenue from the regression models
// @Tags Predictions
// @Accept json
// @Produce json
// @Param input body validation.FeatureInput true "Soil and climate measurements"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} models.ErrorResponse "Malformed body or missing field"
// @Failure 503 {object} models.ErrorResponse "Models not loaded"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	fv, ok := decodeFeatures(w, r)
	if !ok {
		return
	}
	if h.recommender == nil {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}

	start := time.Now()
	p, err := h.recommender.Predict(fv)
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	metrics.RecordPrediction("single", time.Since(start))

	respondJSON(w, http.StatusOK, &models.PredictionResponse{
		Success:        true,
		CropPrediction: toCropPrediction(p),
	})
}

// PredictTop3 returns the three most probable distinct crops.
//
// @Summary Predict the top three crops
// @Description Ranks crops by classifier probability; yield and price are historical means per crop
// @Tags Predictions
// @Accept json
// @Produce json
// @Param input body validation.FeatureInput true "Soil and climate measurements"
// @Success 200 {object} models.TopCropsResponse
// @Failure 400 {object} models.ErrorResponse "Malformed body or missing field"
// @Failure 503 {object} models.ErrorResponse "Models not loaded"
// @Router /predict-top-3 [post]
func (h *Handler) PredictTop3(w http.ResponseWriter, r *http.Request) {
	fv, ok := decodeFeatures(w, r)
	if !ok {
		return
	}
	if h.recommender == nil {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}

	start := time.Now()
	preds, err := h.recommender.TopCrops(fv)
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	metrics.RecordPrediction("top_k", time.Since(start))

	out := make([]models.CropPrediction, len(preds))
	for i, p := range preds {
		out[i] = toCropPrediction(p)
	}
	respondJSON(w, http.StatusOK, &models.TopCropsResponse{Success: true, TopCrops: out})
}

// GenerateReport renders the top three recommendations as a PDF.
//
// @Summary Generate a PDF report
// @Description Returns a one-page PDF with the submitted parameters and the top three crops
// @Tags Reports
// @Accept json
// @Produce application/pdf
// @Param input body validation.FeatureInput true "Soil and climate measurements"
// @Success 200 {file} file "crop_report_YYYYMMDD_HHMMSS.pdf"
// @Failure 400 {object} models.ErrorResponse "Malformed body or missing field"
// @Failure 500 {object} models.ErrorResponse "Rendering failed"
// @Failure 503 {object} models.ErrorResponse "Models not loaded"
// @Router /generate-report [post]
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	fv, ok := decodeFeatures(w, r)
	if !ok {
		return
	}
	if h.recommender == nil {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}

	start := time.Now()
	preds, err := h.recommender.TopCrops(fv)
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	metrics.RecordPrediction("report", time.Since(start))

	generated := h.now()
	var buf bytes.Buffer
	if err := report.Render(&buf, report.Report{
		Conditions:      fv,
		Recommendations: preds,
		GeneratedAt:     generated,
	}); err != nil {
		respondServiceError(w, r, err, "")
		return
	}

	filename := report.Filename(generated)
	logging.Ctx(r.Context()).Debug().Str("filename", filename).Int("bytes", buf.Len()).Msg("Report generated")

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write report")
	}
}
