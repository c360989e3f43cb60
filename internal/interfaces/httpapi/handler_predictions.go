package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	req, err := decodeBody[createPredictionRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.Create(ctx, usecase.CreatePredictionInput{
		FanID:   principal.UserID,
		MatchID: req.MatchID,
		Type:    req.PredictionType,
		Value:   req.PredictedValue,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionToDTO(item))
}

func (h *Handler) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPredictions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	accuracy, err := h.predictionService.ListByFan(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list my predictions failed", "fan_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionAccuracyDTO{
		Total:       accuracy.Total,
		Settled:     accuracy.Settled,
		Correct:     accuracy.Correct,
		Percent:     accuracy.Percent,
		Predictions: predictionsToDTO(accuracy.Predicted),
	})
}

func (h *Handler) ListMatchPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchPredictions")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	items, err := h.predictionService.ListByMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionsToDTO(items))
}
