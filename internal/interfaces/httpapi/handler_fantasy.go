package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

func (h *Handler) CreateFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFantasyTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	req, err := decodeBody[createFantasyTeamRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fantasyService.Create(ctx, usecase.CreateFantasyTeamInput{
		FanID:     principal.UserID,
		MatchID:   req.MatchID,
		Name:      req.TeamName,
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fantasyTeamToDTO(item))
}

func (h *Handler) ListMyFantasyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyFantasyTeams")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.fantasyService.ListByFan(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list my fantasy teams failed", "fan_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamsToDTO(items))
}

func (h *Handler) GetFantasyMatchLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFantasyMatchLeaderboard")
	defer span.End()

	limit, err := parseLimitQuery(r, 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	items, err := h.fantasyService.MatchLeaderboard(ctx, matchID, limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamsToDTO(items))
}
