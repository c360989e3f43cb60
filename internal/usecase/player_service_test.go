package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func newPlayerFixture() *PlayerService {
	now := time.Now()
	repo := memory.NewPlayerRepository(
		memory.SeedPlayers(),
		memory.SeedPlayerStats(now),
		memory.SeedDrills(now),
	)
	return NewPlayerService(repo)
}

func TestPlayerService_DashboardAggregates(t *testing.T) {
	t.Parallel()

	service := newPlayerFixture()

	dashboard, err := service.Dashboard(context.Background(), "PLR001")
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if dashboard.Player.PublicID != "PLR001" {
		t.Fatalf("unexpected player: %q", dashboard.Player.PublicID)
	}
	if dashboard.Summary.MatchesPlayed != 2 {
		t.Fatalf("expected 2 matches played, got %d", dashboard.Summary.MatchesPlayed)
	}
	if dashboard.Summary.TotalRuns != 106 {
		t.Fatalf("expected 106 total runs, got %d", dashboard.Summary.TotalRuns)
	}
	if len(dashboard.Recent) != 2 {
		t.Fatalf("expected 2 recent lines, got %d", len(dashboard.Recent))
	}
	if dashboard.Recent[0].Runs != 72 {
		t.Fatalf("expected most recent line first, got runs=%d", dashboard.Recent[0].Runs)
	}
}

func TestPlayerService_StatsComputesRates(t *testing.T) {
	t.Parallel()

	service := newPlayerFixture()

	summary, err := service.Stats(context.Background(), "PLR002")
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if summary.TotalWickets != 3 {
		t.Fatalf("expected 3 wickets, got %d", summary.TotalWickets)
	}
	if summary.BattingAverage != 8 {
		t.Fatalf("expected batting average 8, got %v", summary.BattingAverage)
	}
}

func TestPlayerService_UnknownPlayer(t *testing.T) {
	t.Parallel()

	service := newPlayerFixture()

	if _, err := service.Dashboard(context.Background(), "PLR999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Stats(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_DrillsOrderedNewestFirst(t *testing.T) {
	t.Parallel()

	service := newPlayerFixture()

	drills, err := service.Drills(context.Background(), "PLR001")
	if err != nil {
		t.Fatalf("Drills error: %v", err)
	}
	if len(drills) != 2 {
		t.Fatalf("expected 2 drills, got %d", len(drills))
	}
	if !drills[0].AssignedAt.After(drills[1].AssignedAt) {
		t.Fatalf("expected newest drill first")
	}
}
