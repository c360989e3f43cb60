package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/cricvibe/cricvibe-api/internal/interfaces/realtime"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

// Handler carries every usecase service the HTTP surface exposes.
type Handler struct {
	authService       *usecase.AuthService
	ledgerService     *usecase.LedgerService
	badgeService      *usecase.BadgeService
	predictionService *usecase.PredictionService
	taskService       *usecase.TaskService
	fantasyService    *usecase.FantasyService
	matchService      *usecase.MatchService
	playerService     *usecase.PlayerService
	insightsService   *usecase.InsightsService
	settlementService *usecase.SettlementService
	chatHub           *realtime.Hub
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	ledgerService *usecase.LedgerService,
	badgeService *usecase.BadgeService,
	predictionService *usecase.PredictionService,
	taskService *usecase.TaskService,
	fantasyService *usecase.FantasyService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	insightsService *usecase.InsightsService,
	settlementService *usecase.SettlementService,
	chatHub *realtime.Hub,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:       authService,
		ledgerService:     ledgerService,
		badgeService:      badgeService,
		predictionService: predictionService,
		taskService:       taskService,
		fantasyService:    fantasyService,
		matchService:      matchService,
		playerService:     playerService,
		insightsService:   insightsService,
		settlementService: settlementService,
		chatHub:           chatHub,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody strictly decodes a JSON request body. An empty body yields the
// zero value so struct validation can report the missing fields.
func decodeBody[T any](r *http.Request) (T, error) {
	var req T

	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			var zero T
			return zero, nil
		}
		var zero T
		return zero, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
