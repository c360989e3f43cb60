package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
)

// RankedFan pairs a fan with their leaderboard rank.
type RankedFan struct {
	Fan  fan.Fan
	Rank int
}

// LedgerService owns the points total and its derived rank reads. Every
// scoring path in the product funnels through AddPoints.
type LedgerService struct {
	fanRepo fan.Repository
}

func NewLedgerService(fanRepo fan.Repository) *LedgerService {
	return &LedgerService{fanRepo: fanRepo}
}

// AddPoints credits delta to the fan's running total. The increment is
// atomic at the storage layer; negative deltas are rejected because no
// product flow ever deducts points.
func (s *LedgerService) AddPoints(ctx context.Context, fanID string, delta int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.AddPoints")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}
	if delta < 0 {
		return fmt.Errorf("%w: points delta cannot be negative", ErrInvalidInput)
	}
	if delta == 0 {
		return nil
	}

	updated, err := s.fanRepo.AddPoints(ctx, fanID, delta)
	if err != nil {
		return fmt.Errorf("add fan points: %w", err)
	}
	if !updated {
		return fmt.Errorf("%w: fan=%s", ErrNotFound, fanID)
	}

	return nil
}

// GetFanRank resolves the fan and their rank in one consistent read.
// Rank is 1 plus the number of fans holding strictly more points, so ties
// share a rank number.
func (s *LedgerService) GetFanRank(ctx context.Context, fanID string) (RankedFan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.GetFanRank")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return RankedFan{}, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}

	item, rank, exists, err := s.fanRepo.GetWithRank(ctx, fanID)
	if err != nil {
		return RankedFan{}, fmt.Errorf("get fan with rank: %w", err)
	}
	if !exists {
		return RankedFan{}, fmt.Errorf("%w: fan=%s", ErrNotFound, fanID)
	}

	return RankedFan{Fan: item, Rank: rank}, nil
}

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// Leaderboard returns the top fans ordered by points, streak breaking ties.
// Equal totals share a rank number and the next distinct total resumes at
// its list position, matching the single-fan rank read.
func (s *LedgerService) Leaderboard(ctx context.Context, limit int) ([]RankedFan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.Leaderboard")
	defer span.End()

	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	fans, err := s.fanRepo.TopByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top fans: %w", err)
	}

	ranked := make([]RankedFan, 0, len(fans))
	rank := 0
	var prevPoints int64
	for i, item := range fans {
		if i == 0 || item.Points != prevPoints {
			rank = i + 1
		}
		prevPoints = item.Points
		ranked = append(ranked, RankedFan{Fan: item, Rank: rank})
	}

	return ranked, nil
}
