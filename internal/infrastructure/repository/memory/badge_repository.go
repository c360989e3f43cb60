package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
)

type BadgeRepository struct {
	mu     sync.RWMutex
	items  map[string]badge.Badge
	orders []string
	awards map[string][]badge.Award
}

func NewBadgeRepository(badges []badge.Badge) *BadgeRepository {
	items := make(map[string]badge.Badge, len(badges))
	orders := make([]string, 0, len(badges))
	for _, b := range badges {
		items[b.ID] = b
		orders = append(orders, b.ID)
	}

	return &BadgeRepository{
		items:  items,
		orders: orders,
		awards: make(map[string][]badge.Award),
	}
}

func (r *BadgeRepository) List(_ context.Context) ([]badge.Badge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]badge.Badge, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *BadgeRepository) ListAwardsByFan(_ context.Context, fanID string) ([]badge.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]badge.Award, len(r.awards[fanID]))
	copy(out, r.awards[fanID])

	return out, nil
}

func (r *BadgeRepository) Award(_ context.Context, fanID, badgeID string, earnedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.awards[fanID] {
		if existing.BadgeID == badgeID {
			return false, nil
		}
	}

	r.awards[fanID] = append(r.awards[fanID], badge.Award{
		FanID:    fanID,
		BadgeID:  badgeID,
		EarnedAt: earnedAt,
	})

	return true, nil
}
