package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	limit, err := parseLimitQuery(r, 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.ledgerService.Leaderboard(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard read failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]rankedFanDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rankedFanToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFanRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFanRank")
	defer span.End()

	fanID := strings.TrimSpace(r.PathValue("fanID"))
	ranked, err := h.ledgerService.GetFanRank(ctx, fanID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankedFanToDTO(ranked))
}

// parseLimitQuery reads an optional ?limit= query value; def applies when
// the parameter is absent.
func parseLimitQuery(r *http.Request, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput)
	}

	return limit, nil
}
