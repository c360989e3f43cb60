package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func TestSettlementService_SettleMatch(t *testing.T) {
	t.Parallel()

	fanRepo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
		{ID: "fan-2", Email: "two@example.com"},
	})
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: "p1", FanID: "fan-1", MatchID: "match-1", Type: prediction.TypeWinner, Value: "India"},
		{ID: "p2", FanID: "fan-2", MatchID: "match-1", Type: prediction.TypeWinner, Value: "Australia"},
		{ID: "p3", FanID: "fan-1", MatchID: "match-1", Type: prediction.TypeTopScorer, Value: "Arjun Sharma"},
		{ID: "p4", FanID: "fan-1", MatchID: "match-2", Type: prediction.TypeWinner, Value: "India"},
	})
	matchRepo := memory.NewMatchRepository([]match.Match{
		{ID: "match-1", Team1: "India", Team2: "Australia", StartsAt: time.Now().Add(-2 * time.Hour)},
	})
	badges := NewBadgeService(
		memory.NewBadgeRepository([]badge.Badge{
			{ID: "badge-first-correct", Criterion: badge.CorrectPredictionsAtLeast{Count: 1}},
		}),
		fanRepo,
		predictionRepo,
		discardLogger(),
	)
	service := NewSettlementService(predictionRepo, matchRepo, fanRepo, badges, discardLogger())

	got, err := service.SettleMatch(context.Background(), SettleMatchInput{
		MatchID: "match-1",
		Outcome: match.Outcome{Winner: "India", TopScorer: "Kane Fletcher"},
	})
	if err != nil {
		t.Fatalf("SettleMatch error: %v", err)
	}
	if got.Settled != 3 {
		t.Fatalf("expected 3 settled, got %d", got.Settled)
	}
	if got.Correct != 1 {
		t.Fatalf("expected 1 correct, got %d", got.Correct)
	}
	if got.FansReassessed != 1 {
		t.Fatalf("expected 1 fan reassessed, got %d", got.FansReassessed)
	}

	// Other-match predictions stay untouched.
	remaining, err := predictionRepo.ListByMatch(context.Background(), "match-2")
	if err != nil {
		t.Fatalf("ListByMatch error: %v", err)
	}
	if remaining[0].Settled() {
		t.Fatal("match-2 prediction must stay unsettled")
	}

	// The correct fan picked up the predictions badge.
	awards, err := badges.ListByFan(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("ListByFan error: %v", err)
	}
	if len(awards) != 1 || awards[0].Badge.ID != "badge-first-correct" {
		t.Fatalf("unexpected awards: %+v", awards)
	}
}

func TestSettlementService_SettleMatch_IsIdempotentPerRow(t *testing.T) {
	t.Parallel()

	fanRepo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: "p1", FanID: "fan-1", MatchID: "match-1", Type: prediction.TypeWinner, Value: "India"},
	})
	matchRepo := memory.NewMatchRepository([]match.Match{
		{ID: "match-1", Team1: "India", Team2: "Australia"},
	})
	badges := NewBadgeService(memory.NewBadgeRepository(nil), fanRepo, predictionRepo, discardLogger())
	service := NewSettlementService(predictionRepo, matchRepo, fanRepo, badges, discardLogger())

	input := SettleMatchInput{MatchID: "match-1", Outcome: match.Outcome{Winner: "India"}}
	first, err := service.SettleMatch(context.Background(), input)
	if err != nil {
		t.Fatalf("SettleMatch error: %v", err)
	}
	if first.Settled != 1 {
		t.Fatalf("expected 1 settled, got %d", first.Settled)
	}

	second, err := service.SettleMatch(context.Background(), input)
	if err != nil {
		t.Fatalf("SettleMatch error: %v", err)
	}
	if second.Settled != 0 {
		t.Fatalf("re-settlement must touch nothing, got %d", second.Settled)
	}
}

func TestSettlementService_SettleMatch_Validation(t *testing.T) {
	t.Parallel()

	fanRepo := memory.NewFanRepository(nil)
	predictionRepo := memory.NewPredictionRepository(nil)
	badges := NewBadgeService(memory.NewBadgeRepository(nil), fanRepo, predictionRepo, discardLogger())
	service := NewSettlementService(predictionRepo, memory.NewMatchRepository(nil), fanRepo, badges, discardLogger())

	_, err := service.SettleMatch(context.Background(), SettleMatchInput{MatchID: "match-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty outcome, got %v", err)
	}

	_, err = service.SettleMatch(context.Background(), SettleMatchInput{
		MatchID: "missing",
		Outcome: match.Outcome{Winner: "India"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettlementService_RecordDailyEngagement(t *testing.T) {
	t.Parallel()

	fanRepo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com", CurrentStreak: 3},
		{ID: "fan-2", Email: "two@example.com", CurrentStreak: 5},
	})
	predictionRepo := memory.NewPredictionRepository(nil)
	badges := NewBadgeService(memory.NewBadgeRepository(nil), fanRepo, predictionRepo, discardLogger())
	service := NewSettlementService(predictionRepo, memory.NewMatchRepository(nil), fanRepo, badges, discardLogger())

	got, err := service.RecordDailyEngagement(context.Background(), DailyEngagementInput{
		EngagedFanIDs: []string{"fan-1", "ghost"},
		IdleFanIDs:    []string{"fan-2"},
	})
	if err != nil {
		t.Fatalf("RecordDailyEngagement error: %v", err)
	}
	if got.Incremented != 1 || got.Reset != 1 || got.Missing != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}

	f1, _, _ := fanRepo.GetByID(context.Background(), "fan-1")
	if f1.CurrentStreak != 4 {
		t.Fatalf("expected streak 4, got %d", f1.CurrentStreak)
	}
	f2, _, _ := fanRepo.GetByID(context.Background(), "fan-2")
	if f2.CurrentStreak != 0 {
		t.Fatalf("expected streak reset, got %d", f2.CurrentStreak)
	}
}
