package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/engagement"
	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("id-%04d", g.next), nil
}

func seedMatchRepo() *memory.MatchRepository {
	return memory.NewMatchRepository([]match.Match{
		{ID: "match-1", Team1: "India", Team2: "Australia", StartsAt: time.Now().Add(24 * time.Hour)},
	})
}

func newPredictionFixture(fans []fan.Fan) (*PredictionService, *memory.FanRepository) {
	fanRepo := memory.NewFanRepository(fans)
	ledger := NewLedgerService(fanRepo)
	badges := NewBadgeService(memory.NewBadgeRepository(nil), fanRepo, memory.NewPredictionRepository(nil), discardLogger())

	service := NewPredictionService(
		memory.NewPredictionRepository(nil),
		seedMatchRepo(),
		ledger,
		badges,
		engagement.DefaultBounties(),
		&sequenceIDGenerator{},
		discardLogger(),
	)

	return service, fanRepo
}

func TestPredictionService_Create_PaysBountyAtSubmission(t *testing.T) {
	t.Parallel()

	service, fanRepo := newPredictionFixture([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})

	created, err := service.Create(context.Background(), CreatePredictionInput{
		FanID:   "fan-1",
		MatchID: "match-1",
		Type:    "man_of_match",
		Value:   "Arjun Sharma",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.PointsEarned != 150 {
		t.Fatalf("expected 150 bounty recorded, got %d", created.PointsEarned)
	}
	if created.Settled() {
		t.Fatal("new prediction must be unsettled")
	}

	got, _, err := fanRepo.GetByID(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Points != 150 {
		t.Fatalf("expected fan credited 150, got %d", got.Points)
	}
}

func TestPredictionService_Create_DuplicateRejected(t *testing.T) {
	t.Parallel()

	service, fanRepo := newPredictionFixture([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})

	input := CreatePredictionInput{FanID: "fan-1", MatchID: "match-1", Type: "winner", Value: "India"}
	if _, err := service.Create(context.Background(), input); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	input.Value = "Australia"
	_, err := service.Create(context.Background(), input)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The rejected attempt must not pay a second bounty.
	got, _, err := fanRepo.GetByID(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Points != 50 {
		t.Fatalf("expected 50 points, got %d", got.Points)
	}
}

func TestPredictionService_Create_UnknownTypeAndMatch(t *testing.T) {
	t.Parallel()

	service, _ := newPredictionFixture([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})

	_, err := service.Create(context.Background(), CreatePredictionInput{
		FanID: "fan-1", MatchID: "match-1", Type: "highest_total", Value: "200",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}

	_, err = service.Create(context.Background(), CreatePredictionInput{
		FanID: "fan-1", MatchID: "missing", Type: "winner", Value: "India",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}

func TestPredictionService_ListByFan_Accuracy(t *testing.T) {
	t.Parallel()

	service, _ := newPredictionFixture([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com"},
	})

	for _, predictionType := range []string{"winner", "top_scorer", "man_of_match"} {
		if _, err := service.Create(context.Background(), CreatePredictionInput{
			FanID: "fan-1", MatchID: "match-1", Type: predictionType, Value: "India",
		}); err != nil {
			t.Fatalf("Create(%s) error: %v", predictionType, err)
		}
	}

	got, err := service.ListByFan(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("ListByFan error: %v", err)
	}
	if got.Total != 3 || got.Settled != 0 || got.Percent != 0 {
		t.Fatalf("unexpected unsettled summary: %+v", got)
	}
}
