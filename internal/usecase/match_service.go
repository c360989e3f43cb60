package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/domain/match"
)

// MatchList splits the fixture list for the home feed.
type MatchList struct {
	Upcoming []match.Match
	Recent   []match.Match
}

// MatchService reads fixture reference data. Fixtures are maintained out of
// band; this service never writes.
type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

const defaultMatchListLimit = 20

func (s *MatchService) List(ctx context.Context, limit int) (MatchList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	if limit <= 0 {
		limit = defaultMatchListLimit
	}

	upcoming, err := s.matchRepo.ListUpcoming(ctx, limit)
	if err != nil {
		return MatchList{}, fmt.Errorf("list upcoming matches: %w", err)
	}

	recent, err := s.matchRepo.ListRecent(ctx, limit)
	if err != nil {
		return MatchList{}, fmt.Errorf("list recent matches: %w", err)
	}

	return MatchList{Upcoming: upcoming, Recent: recent}, nil
}

func (s *MatchService) GetByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}
