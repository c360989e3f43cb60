package httpapi

import (
	"net/http"

	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

func (h *Handler) RunSettleMatchJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSettleMatchJob")
	defer span.End()

	req, err := decodeBody[settleMatchRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.settlementService.SettleMatch(ctx, usecase.SettleMatchInput{
		MatchID: req.MatchID,
		Outcome: match.Outcome{
			Winner:     req.Winner,
			TopScorer:  req.TopScorer,
			ManOfMatch: req.ManOfMatch,
		},
	})
	if err != nil {
		h.logger.WarnContext(ctx, "settle match job failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settleMatchResultDTO{
		MatchID:        result.MatchID,
		Settled:        result.Settled,
		Correct:        result.Correct,
		FansReassessed: result.FansReassessed,
	})
}

func (h *Handler) RunDailyEngagementJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunDailyEngagementJob")
	defer span.End()

	req, err := decodeBody[dailyEngagementRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.settlementService.RecordDailyEngagement(ctx, usecase.DailyEngagementInput{
		EngagedFanIDs: req.EngagedFanIDs,
		IdleFanIDs:    req.IdleFanIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "daily engagement job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dailyEngagementResultDTO{
		Incremented: result.Incremented,
		Reset:       result.Reset,
		Missing:     result.Missing,
	})
}
