package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
)

func TestLedgerService_AddPoints(t *testing.T) {
	t.Parallel()

	repo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com", Points: 100},
	})
	service := NewLedgerService(repo)

	if err := service.AddPoints(context.Background(), "fan-1", 50); err != nil {
		t.Fatalf("AddPoints error: %v", err)
	}
	if err := service.AddPoints(context.Background(), "fan-1", 30); err != nil {
		t.Fatalf("AddPoints error: %v", err)
	}

	got, _, _, err := repo.GetWithRank(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetWithRank error: %v", err)
	}
	if got.Points != 180 {
		t.Fatalf("expected 180 points, got %d", got.Points)
	}
}

func TestLedgerService_AddPoints_ConcurrentCreditsSumExactly(t *testing.T) {
	t.Parallel()

	repo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com", Points: 10},
	})
	service := NewLedgerService(repo)

	const credits = 64
	var wg sync.WaitGroup
	for i := 0; i < credits; i++ {
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()
			if err := service.AddPoints(context.Background(), "fan-1", delta); err != nil {
				t.Errorf("AddPoints error: %v", err)
			}
		}(int64(i%3 + 1))
	}
	wg.Wait()

	var want int64 = 10
	for i := 0; i < credits; i++ {
		want += int64(i%3 + 1)
	}
	got, _, _, err := repo.GetWithRank(context.Background(), "fan-1")
	if err != nil {
		t.Fatalf("GetWithRank error: %v", err)
	}
	if got.Points != want {
		t.Fatalf("expected %d points, got %d", want, got.Points)
	}
}

func TestLedgerService_AddPoints_UnknownFan(t *testing.T) {
	t.Parallel()

	service := NewLedgerService(memory.NewFanRepository(nil))

	err := service.AddPoints(context.Background(), "missing", 10)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLedgerService_AddPoints_RejectsNegativeDelta(t *testing.T) {
	t.Parallel()

	service := NewLedgerService(memory.NewFanRepository(nil))

	err := service.AddPoints(context.Background(), "fan-1", -5)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLedgerService_GetFanRank_TiesShareRank(t *testing.T) {
	t.Parallel()

	repo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com", Points: 500},
		{ID: "fan-2", Email: "two@example.com", Points: 500},
		{ID: "fan-3", Email: "three@example.com", Points: 200},
	})
	service := NewLedgerService(repo)

	for _, fanID := range []string{"fan-1", "fan-2"} {
		got, err := service.GetFanRank(context.Background(), fanID)
		if err != nil {
			t.Fatalf("GetFanRank(%s) error: %v", fanID, err)
		}
		if got.Rank != 1 {
			t.Fatalf("expected rank 1 for %s, got %d", fanID, got.Rank)
		}
	}

	got, err := service.GetFanRank(context.Background(), "fan-3")
	if err != nil {
		t.Fatalf("GetFanRank error: %v", err)
	}
	if got.Rank != 3 {
		t.Fatalf("expected rank 3, got %d", got.Rank)
	}
}

func TestLedgerService_Leaderboard(t *testing.T) {
	t.Parallel()

	repo := memory.NewFanRepository([]fan.Fan{
		{ID: "fan-1", Email: "one@example.com", Points: 300, CurrentStreak: 2},
		{ID: "fan-2", Email: "two@example.com", Points: 300, CurrentStreak: 9},
		{ID: "fan-3", Email: "three@example.com", Points: 700},
		{ID: "fan-4", Email: "four@example.com", Points: 50},
	})
	service := NewLedgerService(repo)

	got, err := service.Leaderboard(context.Background(), 3)
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}

	if got[0].Fan.ID != "fan-3" || got[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	// Streak breaks the tie on ordering, but both rows share the rank.
	if got[1].Fan.ID != "fan-2" || got[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
	if got[2].Fan.ID != "fan-1" || got[2].Rank != 2 {
		t.Fatalf("unexpected third row: %+v", got[2])
	}
}
