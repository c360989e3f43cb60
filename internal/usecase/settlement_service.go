package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
)

// SettleMatchInput carries the final outcome dimensions for one match.
// Empty dimensions are skipped so a partial outcome can be settled.
type SettleMatchInput struct {
	MatchID string
	Outcome match.Outcome
}

// SettleMatchResult reports what one settlement run touched.
type SettleMatchResult struct {
	MatchID        string
	Settled        int
	Correct        int
	FansReassessed int
}

// DailyEngagementInput names the fans whose streak should move today.
// Engaged fans get an increment, idle fans are reset to zero.
type DailyEngagementInput struct {
	EngagedFanIDs []string
	IdleFanIDs    []string
}

// DailyEngagementResult reports streak writes applied by one job run.
type DailyEngagementResult struct {
	Incremented int
	Reset       int
	Missing     int
}

// SettlementService runs the internal jobs: match outcome settlement and
// the daily streak sweep. Settlement writes correctness once per
// prediction; already-settled rows are never touched again.
type SettlementService struct {
	predictionRepo prediction.Repository
	matchRepo      match.Repository
	fanRepo        fanStreakWriter
	badges         *BadgeService
	logger         *slog.Logger
	maxWorkers     int
	now            func() time.Time
}

type fanStreakWriter interface {
	IncrementStreak(ctx context.Context, fanID string) (bool, error)
	ResetStreak(ctx context.Context, fanID string) (bool, error)
}

const defaultSettlementWorkers = 8

func NewSettlementService(
	predictionRepo prediction.Repository,
	matchRepo match.Repository,
	fanRepo fanStreakWriter,
	badges *BadgeService,
	logger *slog.Logger,
) *SettlementService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SettlementService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		fanRepo:        fanRepo,
		badges:         badges,
		logger:         logger,
		maxWorkers:     defaultSettlementWorkers,
		now:            time.Now,
	}
}

// SettleMatch marks every unsettled prediction for the match correct or
// incorrect against the outcome, then re-evaluates badges for the fans who
// gained a correct prediction. Badge re-evaluation fans out over a worker
// pool and never fails the job.
func (s *SettlementService) SettleMatch(ctx context.Context, input SettleMatchInput) (SettleMatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.SettleMatch")
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	if input.MatchID == "" {
		return SettleMatchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	actuals := map[prediction.Type]string{
		prediction.TypeWinner:     strings.TrimSpace(input.Outcome.Winner),
		prediction.TypeTopScorer:  strings.TrimSpace(input.Outcome.TopScorer),
		prediction.TypeManOfMatch: strings.TrimSpace(input.Outcome.ManOfMatch),
	}
	anyDimension := false
	for _, actual := range actuals {
		if actual != "" {
			anyDimension = true
		}
	}
	if !anyDimension {
		return SettleMatchResult{}, fmt.Errorf("%w: outcome must set at least one dimension", ErrInvalidInput)
	}

	_, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return SettleMatchResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return SettleMatchResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	result := SettleMatchResult{MatchID: input.MatchID}
	settledAt := s.now().UTC()
	correctFans := make(map[string]struct{})

	for _, predictionType := range []prediction.Type{prediction.TypeWinner, prediction.TypeTopScorer, prediction.TypeManOfMatch} {
		actual := actuals[predictionType]
		if actual == "" {
			continue
		}

		settled, err := s.predictionRepo.SettleMatch(ctx, input.MatchID, predictionType, actual, settledAt)
		if err != nil {
			return result, fmt.Errorf("settle %s predictions: %w", predictionType, err)
		}

		result.Settled += len(settled)
		for _, item := range settled {
			if item.IsCorrect != nil && *item.IsCorrect {
				result.Correct++
				correctFans[item.FanID] = struct{}{}
			}
		}
	}

	if len(correctFans) > 0 {
		s.reassessFans(ctx, correctFans)
		result.FansReassessed = len(correctFans)
	}

	s.logger.InfoContext(ctx, "match settled",
		slog.String("match_id", input.MatchID),
		slog.Int("settled", result.Settled),
		slog.Int("correct", result.Correct),
	)

	return result, nil
}

func (s *SettlementService) reassessFans(ctx context.Context, fanIDs map[string]struct{}) {
	workerCount := s.maxWorkers
	if workerCount > len(fanIDs) {
		workerCount = len(fanIDs)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		s.logger.ErrorContext(ctx, "create settlement worker pool failed",
			slog.String("error", err.Error()),
		)
		for fanID := range fanIDs {
			s.badges.EvaluateBestEffort(ctx, fanID)
		}
		return
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for fanID := range fanIDs {
		fanID := fanID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			s.badges.EvaluateBestEffort(ctx, fanID)
		}); err != nil {
			workers.Done()
			s.badges.EvaluateBestEffort(ctx, fanID)
		}
	}
	workers.Wait()
}

// RecordDailyEngagement applies one day's streak sweep. Unknown fan ids are
// counted but do not fail the run.
func (s *SettlementService) RecordDailyEngagement(ctx context.Context, input DailyEngagementInput) (DailyEngagementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.RecordDailyEngagement")
	defer span.End()

	if len(input.EngagedFanIDs) == 0 && len(input.IdleFanIDs) == 0 {
		return DailyEngagementResult{}, fmt.Errorf("%w: at least one fan id is required", ErrInvalidInput)
	}

	var result DailyEngagementResult
	for _, fanID := range input.EngagedFanIDs {
		fanID = strings.TrimSpace(fanID)
		if fanID == "" {
			continue
		}

		updated, err := s.fanRepo.IncrementStreak(ctx, fanID)
		if err != nil {
			return result, fmt.Errorf("increment streak for fan=%s: %w", fanID, err)
		}
		if !updated {
			result.Missing++
			continue
		}
		result.Incremented++
		s.badges.EvaluateBestEffort(ctx, fanID)
	}

	for _, fanID := range input.IdleFanIDs {
		fanID = strings.TrimSpace(fanID)
		if fanID == "" {
			continue
		}

		updated, err := s.fanRepo.ResetStreak(ctx, fanID)
		if err != nil {
			return result, fmt.Errorf("reset streak for fan=%s: %w", fanID, err)
		}
		if !updated {
			result.Missing++
			continue
		}
		result.Reset++
	}

	return result, nil
}
