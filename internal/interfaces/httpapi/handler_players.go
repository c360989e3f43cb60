package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetPlayerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDashboard")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	dashboard, err := h.playerService.Dashboard(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	recent := make([]playerMatchStatsDTO, 0, len(dashboard.Recent))
	for _, item := range dashboard.Recent {
		recent = append(recent, matchStatsToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, playerDashboardDTO{
		Player:  playerToDTO(dashboard.Player),
		Summary: statsSummaryToDTO(dashboard.Summary),
		Recent:  recent,
	})
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	summary, err := h.playerService.Stats(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsSummaryToDTO(summary))
}

func (h *Handler) ListPlayerDrills(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerDrills")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	items, err := h.playerService.Drills(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]drillDTO, 0, len(items))
	for _, item := range items {
		out = append(out, drillToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
