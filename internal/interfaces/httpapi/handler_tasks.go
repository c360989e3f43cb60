package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTasks")
	defer span.End()

	items, err := h.taskService.ListActive(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "task list failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]taskDTO, 0, len(items))
	for _, item := range items {
		out = append(out, taskToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitTask")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	req, err := decodeBody[submitTaskRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.taskService.Submit(ctx, usecase.SubmitTaskInput{
		FanID:  principal.UserID,
		TaskID: strings.TrimSpace(r.PathValue("taskID")),
		Answer: req.Answer,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, taskSubmissionDTO{
		TaskID:       result.Task.ID,
		IsCorrect:    result.IsCorrect,
		PointsEarned: result.PointsEarned,
		CompletedAt:  formatTime(result.CompletedAt),
	})
}

func (h *Handler) ListMyTaskCompletions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyTaskCompletions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.taskService.ListCompletionsByFan(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list my task completions failed", "fan_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]taskCompletionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, completionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
