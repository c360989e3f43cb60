package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/domain/player"
)

// PlayerDashboard bundles everything the player home screen shows.
type PlayerDashboard struct {
	Player  player.Player
	Summary player.StatsSummary
	Recent  []player.MatchStats
}

// PlayerService reads player identity and career stats for dashboards.
type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

const defaultRecentMatchesLimit = 5

func (s *PlayerService) getByPublicID(ctx context.Context, publicID string) (player.Player, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, publicID)
	}

	return item, nil
}

func (s *PlayerService) GetByPublicID(ctx context.Context, publicID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByPublicID")
	defer span.End()

	return s.getByPublicID(ctx, publicID)
}

// Dashboard assembles the player's profile, career summary, and recent
// match lines in one read.
func (s *PlayerService) Dashboard(ctx context.Context, publicID string) (PlayerDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Dashboard")
	defer span.End()

	item, err := s.getByPublicID(ctx, publicID)
	if err != nil {
		return PlayerDashboard{}, err
	}

	summary, err := s.playerRepo.StatsSummary(ctx, item.ID)
	if err != nil {
		return PlayerDashboard{}, fmt.Errorf("get player stats summary: %w", err)
	}

	recent, err := s.playerRepo.RecentMatches(ctx, item.ID, defaultRecentMatchesLimit)
	if err != nil {
		return PlayerDashboard{}, fmt.Errorf("list player recent matches: %w", err)
	}

	return PlayerDashboard{Player: item, Summary: summary, Recent: recent}, nil
}

// Stats returns the player's career summary alone.
func (s *PlayerService) Stats(ctx context.Context, publicID string) (player.StatsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Stats")
	defer span.End()

	item, err := s.getByPublicID(ctx, publicID)
	if err != nil {
		return player.StatsSummary{}, err
	}

	summary, err := s.playerRepo.StatsSummary(ctx, item.ID)
	if err != nil {
		return player.StatsSummary{}, fmt.Errorf("get player stats summary: %w", err)
	}

	return summary, nil
}

const defaultDrillsLimit = 10

// Drills lists the player's most recently assigned practice drills.
func (s *PlayerService) Drills(ctx context.Context, publicID string) ([]player.Drill, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Drills")
	defer span.End()

	item, err := s.getByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListDrills(ctx, item.ID, defaultDrillsLimit)
	if err != nil {
		return nil, fmt.Errorf("list player drills: %w", err)
	}

	return items, nil
}
