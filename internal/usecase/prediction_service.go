package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/engagement"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
	idgen "github.com/cricvibe/cricvibe-api/internal/platform/id"
)

// CreatePredictionInput is the incoming payload for submitting a prediction.
type CreatePredictionInput struct {
	FanID   string
	MatchID string
	Type    string
	Value   string
}

// PredictionAccuracy summarizes a fan's settled prediction history.
type PredictionAccuracy struct {
	Total     int
	Settled   int
	Correct   int
	Percent   float64
	Predicted []prediction.Prediction
}

// PredictionService records fan predictions and pays the participation
// bounty at submission time. Correctness is unknown until settlement.
type PredictionService struct {
	predictionRepo prediction.Repository
	matchRepo      match.Repository
	ledger         *LedgerService
	badges         *BadgeService
	bounties       engagement.Bounties
	idGen          idgen.Generator
	logger         *slog.Logger
	now            func() time.Time
}

func NewPredictionService(
	predictionRepo prediction.Repository,
	matchRepo match.Repository,
	ledger *LedgerService,
	badges *BadgeService,
	bounties engagement.Bounties,
	idGen idgen.Generator,
	logger *slog.Logger,
) *PredictionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PredictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		ledger:         ledger,
		badges:         badges,
		bounties:       bounties,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// Create persists one prediction per (fan, match, type) and credits the
// type's bounty. A second submission for the same slot is rejected as a
// duplicate rather than overwriting the first.
func (s *PredictionService) Create(ctx context.Context, input CreatePredictionInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Create")
	defer span.End()

	input.FanID = strings.TrimSpace(input.FanID)
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.Type = strings.TrimSpace(input.Type)
	input.Value = strings.TrimSpace(input.Value)

	if input.FanID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}
	if input.MatchID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Value == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: prediction value is required", ErrInvalidInput)
	}
	predictionType := prediction.Type(input.Type)
	if _, ok := prediction.AllTypes[predictionType]; !ok {
		return prediction.Prediction{}, fmt.Errorf("%w: unknown prediction type %q", ErrInvalidInput, input.Type)
	}

	_, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
	}

	bounty := s.bounties.ForPrediction(predictionType)
	item := prediction.Prediction{
		ID:           newID,
		FanID:        input.FanID,
		MatchID:      input.MatchID,
		Type:         predictionType,
		Value:        input.Value,
		PointsEarned: bounty,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.predictionRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, prediction.ErrDuplicate) {
			return prediction.Prediction{}, fmt.Errorf("%w: prediction already submitted for this match and type", ErrDuplicate)
		}
		return prediction.Prediction{}, fmt.Errorf("create prediction: %w", err)
	}

	if err := s.ledger.AddPoints(ctx, input.FanID, bounty); err != nil {
		s.logger.ErrorContext(ctx, "prediction bounty credit failed",
			slog.String("fan_id", input.FanID),
			slog.String("prediction_id", created.ID),
			slog.String("error", err.Error()),
		)
	} else {
		s.badges.EvaluateBestEffort(ctx, input.FanID)
	}

	return created, nil
}

// ListByFan returns the fan's predictions with an accuracy summary over the
// settled subset.
func (s *PredictionService) ListByFan(ctx context.Context, fanID string) (PredictionAccuracy, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListByFan")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return PredictionAccuracy{}, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}

	items, err := s.predictionRepo.ListByFan(ctx, fanID)
	if err != nil {
		return PredictionAccuracy{}, fmt.Errorf("list predictions by fan: %w", err)
	}

	summary := PredictionAccuracy{Total: len(items), Predicted: items}
	for _, item := range items {
		if !item.Settled() {
			continue
		}
		summary.Settled++
		if *item.IsCorrect {
			summary.Correct++
		}
	}
	if summary.Settled > 0 {
		summary.Percent = float64(summary.Correct) / float64(summary.Settled) * 100
	}

	return summary, nil
}

// ListByMatch returns every prediction recorded for one match.
func (s *PredictionService) ListByMatch(ctx context.Context, matchID string) ([]prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListByMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	items, err := s.predictionRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list predictions by match: %w", err)
	}

	return items, nil
}
