package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBadges")
	defer span.End()

	items, err := h.badgeService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "badge list failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]badgeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, badgeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListFanBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFanBadges")
	defer span.End()

	fanID := strings.TrimSpace(r.PathValue("fanID"))
	items, err := h.badgeService.ListByFan(ctx, fanID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]fanBadgeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fanBadgeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
