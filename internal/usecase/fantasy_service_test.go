package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cricvibe/cricvibe-api/internal/domain/engagement"
	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/fantasy"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func rosterOf(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("player-%02d", i+1))
	}
	return out
}

func newFantasyFixture() (*FantasyService, *memory.FanRepository) {
	fanRepo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})
	ledger := NewLedgerService(fanRepo)
	badges := NewBadgeService(memory.NewBadgeRepository(nil), fanRepo, memory.NewPredictionRepository(nil), discardLogger())

	service := NewFantasyService(
		memory.NewFantasyRepository(nil),
		seedMatchRepo(),
		ledger,
		badges,
		fantasy.DefaultRules(),
		engagement.DefaultBounties(),
		&sequenceIDGenerator{},
		discardLogger(),
	)

	return service, fanRepo
}

func TestFantasyService_Create(t *testing.T) {
	t.Parallel()

	service, fanRepo := newFantasyFixture()

	created, err := service.Create(context.Background(), CreateFantasyTeamInput{
		FanID:     "fan-1",
		MatchID:   "match-1",
		Name:      "Dream XI",
		PlayerIDs: rosterOf(11),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.TotalPoints != 0 {
		t.Fatalf("expected zero starting points, got %d", created.TotalPoints)
	}
	if len(created.PlayerIDs) != 11 {
		t.Fatalf("expected 11 players, got %d", len(created.PlayerIDs))
	}

	f, _, err := fanRepo.GetByID(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if f.Points != 30 {
		t.Fatalf("expected 30-point creation bounty, got %d", f.Points)
	}
}

func TestFantasyService_Create_RosterValidation(t *testing.T) {
	t.Parallel()

	service, _ := newFantasyFixture()

	cases := []struct {
		name      string
		playerIDs []string
	}{
		{"too few", rosterOf(10)},
		{"too many", rosterOf(12)},
		{"duplicate", append(rosterOf(10), "player-01")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := service.Create(context.Background(), CreateFantasyTeamInput{
				FanID:     "fan-1",
				MatchID:   "match-1",
				Name:      "Dream XI",
				PlayerIDs: tc.playerIDs,
			})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestFantasyService_Create_UnknownMatch(t *testing.T) {
	t.Parallel()

	service, _ := newFantasyFixture()

	_, err := service.Create(context.Background(), CreateFantasyTeamInput{
		FanID:     "fan-1",
		MatchID:   "missing",
		Name:      "Dream XI",
		PlayerIDs: rosterOf(11),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFantasyService_MatchLeaderboard(t *testing.T) {
	t.Parallel()

	fantasyRepo := memory.NewFantasyRepository([]fantasy.Team{
		{ID: "t1", FanID: "fan-1", MatchID: "match-1", Name: "A", PlayerIDs: rosterOf(11), TotalPoints: 40},
		{ID: "t2", FanID: "fan-2", MatchID: "match-1", Name: "B", PlayerIDs: rosterOf(11), TotalPoints: 90},
		{ID: "t3", FanID: "fan-3", MatchID: "match-2", Name: "C", PlayerIDs: rosterOf(11), TotalPoints: 70},
	})
	service := NewFantasyService(
		fantasyRepo,
		seedMatchRepo(),
		NewLedgerService(memory.NewFanRepository(nil)),
		NewBadgeService(memory.NewBadgeRepository(nil), memory.NewFanRepository(nil), memory.NewPredictionRepository(nil), discardLogger()),
		fantasy.DefaultRules(),
		engagement.DefaultBounties(),
		&sequenceIDGenerator{},
		discardLogger(),
	)

	got, err := service.MatchLeaderboard(context.Background(), "match-1", 10)
	if err != nil {
		t.Fatalf("MatchLeaderboard error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "t1" {
		t.Fatalf("unexpected leaderboard: %+v", got)
	}
}
