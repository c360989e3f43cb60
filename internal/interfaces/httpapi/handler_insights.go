package httpapi

import (
	"net/http"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/domain/insights"
)

func (h *Handler) SuggestPlayingXI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestPlayingXI")
	defer span.End()

	req, err := decodeBody[suggestXIRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	suggestion, err := h.insightsService.SuggestPlayingXI(ctx, insights.XIRequest{
		Team:           req.Team,
		Opposition:     req.Opposition,
		PitchCondition: req.PitchCondition,
		Venue:          req.Venue,
		MatchType:      req.MatchType,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, xiSuggestionToDTO(suggestion))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	comparison, err := h.insightsService.ComparePlayers(ctx,
		strings.TrimSpace(r.PathValue("player1")),
		strings.TrimSpace(r.PathValue("player2")),
	)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerComparisonToDTO(comparison))
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	comparison, err := h.insightsService.CompareTeams(ctx,
		strings.TrimSpace(r.PathValue("team1")),
		strings.TrimSpace(r.PathValue("team2")),
	)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamComparisonToDTO(comparison))
}

func (h *Handler) AnalyzePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzePlayer")
	defer span.End()

	analysis, err := h.insightsService.AnalyzePlayer(ctx, strings.TrimSpace(r.PathValue("playerName")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(analysis))
}

func (h *Handler) GetOppositionDossier(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOppositionDossier")
	defer span.End()

	dossier, err := h.insightsService.OppositionDossier(ctx, strings.TrimSpace(r.PathValue("teamName")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dossierToDTO(dossier))
}
