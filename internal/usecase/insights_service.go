package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cricvibe/cricvibe-api/internal/domain/insights"
)

// InsightsProvider is the upstream analytics service. Implementations may
// return ErrDependencyUnavailable-wrapped errors when the provider is down.
type InsightsProvider interface {
	SuggestPlayingXI(ctx context.Context, req insights.XIRequest) (insights.XISuggestion, error)
	ComparePlayers(ctx context.Context, player1, player2 string) (insights.PlayerComparison, error)
	CompareTeams(ctx context.Context, team1, team2 string) (insights.TeamComparison, error)
	AnalyzePlayer(ctx context.Context, playerName string) (insights.Analysis, error)
	OppositionDossier(ctx context.Context, teamName string) (insights.Dossier, error)
}

// InsightsService serves AI-style analytics. Every read tries the upstream
// provider first and falls back to the deterministic local generator, so
// the endpoints stay useful while the provider is down.
type InsightsService struct {
	provider InsightsProvider
	fallback *insights.Generator
	logger   *slog.Logger
}

func NewInsightsService(provider InsightsProvider, logger *slog.Logger) *InsightsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &InsightsService{
		provider: provider,
		fallback: insights.NewGenerator(),
		logger:   logger,
	}
}

func (s *InsightsService) logFallback(ctx context.Context, operation string, err error) {
	s.logger.WarnContext(ctx, "insights provider unavailable, serving generated payload",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

func (s *InsightsService) SuggestPlayingXI(ctx context.Context, req insights.XIRequest) (insights.XISuggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightsService.SuggestPlayingXI")
	defer span.End()

	req.Team = strings.TrimSpace(req.Team)
	req.Opposition = strings.TrimSpace(req.Opposition)
	if req.Team == "" {
		return insights.XISuggestion{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if req.Opposition == "" {
		return insights.XISuggestion{}, fmt.Errorf("%w: opposition is required", ErrInvalidInput)
	}

	if s.provider != nil {
		suggestion, err := s.provider.SuggestPlayingXI(ctx, req)
		if err == nil {
			return suggestion, nil
		}
		s.logFallback(ctx, "suggest_playing_xi", err)
	}

	return s.fallback.SuggestPlayingXI(req), nil
}

func (s *InsightsService) ComparePlayers(ctx context.Context, player1, player2 string) (insights.PlayerComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightsService.ComparePlayers")
	defer span.End()

	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)
	if player1 == "" || player2 == "" {
		return insights.PlayerComparison{}, fmt.Errorf("%w: two player names are required", ErrInvalidInput)
	}

	if s.provider != nil {
		comparison, err := s.provider.ComparePlayers(ctx, player1, player2)
		if err == nil {
			return comparison, nil
		}
		s.logFallback(ctx, "compare_players", err)
	}

	return s.fallback.ComparePlayers(player1, player2), nil
}

func (s *InsightsService) CompareTeams(ctx context.Context, team1, team2 string) (insights.TeamComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightsService.CompareTeams")
	defer span.End()

	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return insights.TeamComparison{}, fmt.Errorf("%w: two team names are required", ErrInvalidInput)
	}

	if s.provider != nil {
		comparison, err := s.provider.CompareTeams(ctx, team1, team2)
		if err == nil {
			return comparison, nil
		}
		s.logFallback(ctx, "compare_teams", err)
	}

	return s.fallback.CompareTeams(team1, team2), nil
}

func (s *InsightsService) AnalyzePlayer(ctx context.Context, playerName string) (insights.Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightsService.AnalyzePlayer")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return insights.Analysis{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	if s.provider != nil {
		analysis, err := s.provider.AnalyzePlayer(ctx, playerName)
		if err == nil {
			return analysis, nil
		}
		s.logFallback(ctx, "analyze_player", err)
	}

	return s.fallback.AnalyzePlayer(playerName), nil
}

func (s *InsightsService) OppositionDossier(ctx context.Context, teamName string) (insights.Dossier, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightsService.OppositionDossier")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return insights.Dossier{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	if s.provider != nil {
		dossier, err := s.provider.OppositionDossier(ctx, teamName)
		if err == nil {
			return dossier, nil
		}
		s.logFallback(ctx, "opposition_dossier", err)
	}

	return s.fallback.OppositionDossier(teamName), nil
}
