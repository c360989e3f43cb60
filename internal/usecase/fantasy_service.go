package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/engagement"
	"github.com/cricvibe/cricvibe-api/internal/domain/fantasy"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	idgen "github.com/cricvibe/cricvibe-api/internal/platform/id"
)

// CreateFantasyTeamInput is the incoming payload for creating a fantasy team.
type CreateFantasyTeamInput struct {
	FanID     string
	MatchID   string
	Name      string
	PlayerIDs []string
}

// FantasyService validates rosters and records fantasy teams. Team scoring
// runs elsewhere; teams start at zero points with only the creation bounty
// credited to the fan.
type FantasyService struct {
	fantasyRepo fantasy.Repository
	matchRepo   match.Repository
	ledger      *LedgerService
	badges      *BadgeService
	rules       fantasy.Rules
	bounties    engagement.Bounties
	idGen       idgen.Generator
	logger      *slog.Logger
	now         func() time.Time
}

func NewFantasyService(
	fantasyRepo fantasy.Repository,
	matchRepo match.Repository,
	ledger *LedgerService,
	badges *BadgeService,
	rules fantasy.Rules,
	bounties engagement.Bounties,
	idGen idgen.Generator,
	logger *slog.Logger,
) *FantasyService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FantasyService{
		fantasyRepo: fantasyRepo,
		matchRepo:   matchRepo,
		ledger:      ledger,
		badges:      badges,
		rules:       rules,
		bounties:    bounties,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates the roster against the fixed size rule and persists the
// team, crediting the one-time creation bounty.
func (s *FantasyService) Create(ctx context.Context, input CreateFantasyTeamInput) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.Create")
	defer span.End()

	input.FanID = strings.TrimSpace(input.FanID)
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.Name = strings.TrimSpace(input.Name)

	if input.FanID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}
	if input.MatchID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	playerIDs, err := fantasy.ValidateRoster(input.PlayerIDs, s.rules)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	_, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fantasy.Team{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("generate fantasy team id: %w", err)
	}

	item := fantasy.Team{
		ID:        newID,
		FanID:     input.FanID,
		MatchID:   input.MatchID,
		Name:      input.Name,
		PlayerIDs: playerIDs,
		CreatedAt: s.now().UTC(),
	}
	if err := item.ValidateBasic(); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.fantasyRepo.Create(ctx, item)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("create fantasy team: %w", err)
	}

	if err := s.ledger.AddPoints(ctx, input.FanID, s.bounties.FantasyTeam); err != nil {
		s.logger.ErrorContext(ctx, "fantasy team bounty credit failed",
			slog.String("fan_id", input.FanID),
			slog.String("team_id", created.ID),
			slog.String("error", err.Error()),
		)
	} else {
		s.badges.EvaluateBestEffort(ctx, input.FanID)
	}

	return created, nil
}

// ListByFan returns the fan's fantasy teams.
func (s *FantasyService) ListByFan(ctx context.Context, fanID string) ([]fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ListByFan")
	defer span.End()

	fanID = strings.TrimSpace(fanID)
	if fanID == "" {
		return nil, fmt.Errorf("%w: fan id is required", ErrInvalidInput)
	}

	items, err := s.fantasyRepo.ListByFan(ctx, fanID)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams by fan: %w", err)
	}

	return items, nil
}

const defaultFantasyLeaderboardLimit = 20

// MatchLeaderboard lists the top fantasy teams for one match.
func (s *FantasyService) MatchLeaderboard(ctx context.Context, matchID string, limit int) ([]fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.MatchLeaderboard")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultFantasyLeaderboardLimit
	}

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	items, err := s.fantasyRepo.LeaderboardByMatch(ctx, matchID, limit)
	if err != nil {
		return nil, fmt.Errorf("list fantasy leaderboard by match: %w", err)
	}

	return items, nil
}
