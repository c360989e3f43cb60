package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/cricvibe/cricvibe-api/internal/domain/insights"
)

type failingInsightsProvider struct {
	calls int
}

func (p *failingInsightsProvider) SuggestPlayingXI(_ context.Context, _ insights.XIRequest) (insights.XISuggestion, error) {
	p.calls++
	return insights.XISuggestion{}, errors.New("provider down")
}

func (p *failingInsightsProvider) ComparePlayers(_ context.Context, _, _ string) (insights.PlayerComparison, error) {
	p.calls++
	return insights.PlayerComparison{}, errors.New("provider down")
}

func (p *failingInsightsProvider) CompareTeams(_ context.Context, _, _ string) (insights.TeamComparison, error) {
	p.calls++
	return insights.TeamComparison{}, errors.New("provider down")
}

func (p *failingInsightsProvider) AnalyzePlayer(_ context.Context, _ string) (insights.Analysis, error) {
	p.calls++
	return insights.Analysis{}, errors.New("provider down")
}

func (p *failingInsightsProvider) OppositionDossier(_ context.Context, _ string) (insights.Dossier, error) {
	p.calls++
	return insights.Dossier{}, errors.New("provider down")
}

func TestInsightsService_FallsBackWhenProviderFails(t *testing.T) {
	t.Parallel()

	provider := &failingInsightsProvider{}
	service := NewInsightsService(provider, discardLogger())

	got, err := service.SuggestPlayingXI(context.Background(), insights.XIRequest{
		Team:       "India",
		Opposition: "Australia",
	})
	if err != nil {
		t.Fatalf("SuggestPlayingXI error: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected provider attempted once, got %d", provider.calls)
	}
	if got.TeamName != "India" || len(got.PlayingXI) != 11 {
		t.Fatalf("unexpected fallback suggestion: %+v", got)
	}
}

func TestInsightsService_ComparePlayers_Deterministic(t *testing.T) {
	t.Parallel()

	service := NewInsightsService(nil, discardLogger())

	first, err := service.ComparePlayers(context.Background(), "Arjun Sharma", "Kane Fletcher")
	if err != nil {
		t.Fatalf("ComparePlayers error: %v", err)
	}
	second, err := service.ComparePlayers(context.Background(), "Arjun Sharma", "Kane Fletcher")
	if err != nil {
		t.Fatalf("ComparePlayers error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same matchup must produce the same comparison")
	}
	if first.Player1Name != "Arjun Sharma" || first.Player2Name != "Kane Fletcher" {
		t.Fatalf("unexpected names: %+v", first)
	}
	if first.Player1.Matches <= 0 || first.Player2.Runs <= 0 {
		t.Fatalf("expected populated careers: %+v", first)
	}
}

func TestInsightsService_CompareTeams_RecordsAddUp(t *testing.T) {
	t.Parallel()

	service := NewInsightsService(nil, discardLogger())

	got, err := service.CompareTeams(context.Background(), "India", "Australia")
	if err != nil {
		t.Fatalf("CompareTeams error: %v", err)
	}
	if got.Team1.Wins+got.Team1.Losses != got.Team1.MatchesPlayed {
		t.Fatalf("team1 record does not add up: %+v", got.Team1)
	}
	if got.Team1Wins+got.Team2Wins != got.TotalMatches {
		t.Fatalf("head to head does not add up: %+v", got)
	}
	if len(got.LastFive) != 5 {
		t.Fatalf("expected 5 recent results, got %d", len(got.LastFive))
	}
}

func TestInsightsService_InputValidation(t *testing.T) {
	t.Parallel()

	service := NewInsightsService(nil, discardLogger())

	if _, err := service.SuggestPlayingXI(context.Background(), insights.XIRequest{Team: "India"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.ComparePlayers(context.Background(), "", "Kane Fletcher"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.AnalyzePlayer(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
