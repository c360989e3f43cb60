package httpapi

import (
	"fmt"
	"net/http"

	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

// SignIn upserts the fan profile the account service verified. Repeated
// sign-ins with the same Google identity return the existing fan.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignIn")
	defer span.End()

	req, err := decodeBody[signInRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.SignIn(ctx, usecase.SignInInput{
		GoogleID:  req.GoogleID,
		Email:     req.Email,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "sign in failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fanToDTO(item))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	ranked, err := h.authService.GetMe(ctx, principal)
	if err != nil {
		h.logger.ErrorContext(ctx, "get me failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, struct {
		Fan  fanDTO `json:"fan"`
		Rank int    `json:"rank"`
	}{
		Fan:  fanToDTO(ranked.Fan),
		Rank: ranked.Rank,
	})
}
