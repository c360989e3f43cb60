package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
)

// BadgeService evaluates badge criteria against live fan state and records
// awards. Awards are irreversible and at-most-once per (fan, badge); the
// duplicate guard lives in the repository's uniqueness constraint, so
// concurrent evaluations of the same fan stay safe without locking here.
type BadgeService struct {
	badgeRepo      badge.Repository
	fanRepo        fan.Repository
	predictionRepo prediction.Repository
	logger         *slog.Logger
	now            func() time.Time
}

func NewBadgeService(
	badgeRepo badge.Repository,
	fanRepo fan.Repository,
	predictionRepo prediction.Repository,
	logger *slog.Logger,
) *BadgeService {
	if logger == nil {
		logger = slog.Default()
	}

	return &BadgeService{
		badgeRepo:      badgeRepo,
		fanRepo:        fanRepo,
		predictionRepo: predictionRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *BadgeService) List(ctx context.Context) ([]badge.Badge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.List")
	defer span.End()

	items, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	return items, nil
}

// FanBadge joins an award with its badge definition for display.
type FanBadge struct {
	Badge    badge.Badge
	EarnedAt time.Time
}

func (s *BadgeService) ListByFan(ctx context.Context, fanID string) ([]FanBadge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.ListByFan")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return nil, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}

	_, exists, err := s.fanRepo.GetByID(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("get fan: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: fan=%s", ErrNotFound, fanID)
	}

	awards, err := s.badgeRepo.ListAwardsByFan(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("list fan badge awards: %w", err)
	}
	if len(awards) == 0 {
		return []FanBadge{}, nil
	}

	defs, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	byID := make(map[string]badge.Badge, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	items := make([]FanBadge, 0, len(awards))
	for _, award := range awards {
		def, ok := byID[award.BadgeID]
		if !ok {
			continue
		}
		items = append(items, FanBadge{Badge: def, EarnedAt: award.EarnedAt})
	}

	return items, nil
}

// Evaluate tests every badge the fan has not earned yet against their
// current snapshot and records the ones that now hold. Returns the badges
// newly awarded in this call.
func (s *BadgeService) Evaluate(ctx context.Context, fanID string) ([]badge.Badge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.Evaluate")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return nil, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}

	item, exists, err := s.fanRepo.GetByID(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("get fan: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: fan=%s", ErrNotFound, fanID)
	}

	correct, err := s.predictionRepo.CountCorrectByFan(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("count correct predictions: %w", err)
	}

	state := badge.Snapshot{
		Points:             item.Points,
		CurrentStreak:      item.CurrentStreak,
		CorrectPredictions: correct,
	}

	defs, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	earned := make(map[string]struct{})
	awards, err := s.badgeRepo.ListAwardsByFan(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("list fan badge awards: %w", err)
	}
	for _, award := range awards {
		earned[award.BadgeID] = struct{}{}
	}

	now := s.now().UTC()
	var awarded []badge.Badge
	for _, def := range defs {
		if _, ok := earned[def.ID]; ok {
			continue
		}
		if def.Criterion == nil || !def.Criterion.Met(state) {
			continue
		}

		inserted, err := s.badgeRepo.Award(ctx, fanID, def.ID, now)
		if err != nil {
			return awarded, fmt.Errorf("award badge %s: %w", def.ID, err)
		}
		if !inserted {
			continue
		}

		s.logger.InfoContext(ctx, "badge awarded",
			slog.String("fan_id", fanID),
			slog.String("badge_id", def.ID),
		)
		awarded = append(awarded, def)
	}

	return awarded, nil
}

// EvaluateBestEffort runs Evaluate and swallows any failure after logging
// it. Scoring actions call this after committing points so a badge outage
// never fails the action that triggered it.
func (s *BadgeService) EvaluateBestEffort(ctx context.Context, fanID string) {
	if _, err := s.Evaluate(ctx, fanID); err != nil {
		s.logger.ErrorContext(ctx, "badge evaluation failed",
			slog.String("fan_id", fanID),
			slog.String("error", err.Error()),
		)
	}
}
