package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
)

type FanRepository struct {
	mu    sync.RWMutex
	items map[string]fan.Fan
}

func NewFanRepository(fans []fan.Fan) *FanRepository {
	items := make(map[string]fan.Fan, len(fans))
	for _, f := range fans {
		items[f.ID] = f
	}

	return &FanRepository{items: items}
}

func (r *FanRepository) GetByID(_ context.Context, fanID string) (fan.Fan, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[fanID]
	if !ok {
		return fan.Fan{}, false, nil
	}

	return f, true, nil
}

func (r *FanRepository) GetByGoogleID(_ context.Context, googleID string) (fan.Fan, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.items {
		if f.GoogleID == googleID {
			return f, true, nil
		}
	}

	return fan.Fan{}, false, nil
}

func (r *FanRepository) Create(_ context.Context, item fan.Fan) (fan.Fan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item

	return item, nil
}

func (r *FanRepository) AddPoints(_ context.Context, fanID string, delta int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[fanID]
	if !ok {
		return false, nil
	}

	f.Points += delta
	f.UpdatedAt = time.Now().UTC()
	r.items[fanID] = f

	return true, nil
}

func (r *FanRepository) GetWithRank(_ context.Context, fanID string) (fan.Fan, int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[fanID]
	if !ok {
		return fan.Fan{}, 0, false, nil
	}

	rank := 1
	for _, other := range r.items {
		if other.Points > f.Points {
			rank++
		}
	}

	return f, rank, true, nil
}

func (r *FanRepository) TopByPoints(_ context.Context, limit int) ([]fan.Fan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fan.Fan, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].CurrentStreak != out[j].CurrentStreak {
			return out[i].CurrentStreak > out[j].CurrentStreak
		}
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *FanRepository) IncrementStreak(_ context.Context, fanID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[fanID]
	if !ok {
		return false, nil
	}

	f.CurrentStreak++
	f.UpdatedAt = time.Now().UTC()
	r.items[fanID] = f

	return true, nil
}

func (r *FanRepository) ResetStreak(_ context.Context, fanID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[fanID]
	if !ok {
		return false, nil
	}

	f.CurrentStreak = 0
	f.UpdatedAt = time.Now().UTC()
	r.items[fanID] = f

	return true, nil
}
