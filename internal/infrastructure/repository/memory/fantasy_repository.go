package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cricvibe/cricvibe-api/internal/domain/fantasy"
)

type FantasyRepository struct {
	mu    sync.RWMutex
	items []fantasy.Team
}

func NewFantasyRepository(teams []fantasy.Team) *FantasyRepository {
	items := make([]fantasy.Team, len(teams))
	copy(items, teams)

	return &FantasyRepository{items: items}
}

func (r *FantasyRepository) Create(_ context.Context, item fantasy.Team) (fantasy.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)

	return item, nil
}

func (r *FantasyRepository) ListByFan(_ context.Context, fanID string) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0)
	for _, item := range r.items {
		if item.FanID == fanID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *FantasyRepository) LeaderboardByMatch(_ context.Context, matchID string, limit int) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0)
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
