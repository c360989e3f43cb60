package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func TestMatchService_ListSplitsUpcomingAndRecent(t *testing.T) {
	t.Parallel()

	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches(time.Now())))

	list, err := service.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming matches, got %d", len(list.Upcoming))
	}
	if len(list.Recent) != 1 {
		t.Fatalf("expected 1 recent match, got %d", len(list.Recent))
	}
	if list.Recent[0].ID != memory.MatchIDPakNz {
		t.Fatalf("expected recent match %s, got %s", memory.MatchIDPakNz, list.Recent[0].ID)
	}
	for _, m := range list.Upcoming {
		if !m.StartsAt.After(time.Now()) {
			t.Fatalf("upcoming match %s starts in the past", m.ID)
		}
	}
}

func TestMatchService_GetByID(t *testing.T) {
	t.Parallel()

	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches(time.Now())))

	got, err := service.GetByID(context.Background(), memory.MatchIDIndAus)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Team1 != "India" || got.Team2 != "Australia" {
		t.Fatalf("unexpected teams: %s vs %s", got.Team1, got.Team2)
	}
}

func TestMatchService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	service := NewMatchService(memory.NewMatchRepository(nil))

	_, err := service.GetByID(context.Background(), "match-unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_GetByID_RequiresID(t *testing.T) {
	t.Parallel()

	service := NewMatchService(memory.NewMatchRepository(nil))

	_, err := service.GetByID(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
