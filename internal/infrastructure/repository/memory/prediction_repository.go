package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
)

type PredictionRepository struct {
	mu    sync.RWMutex
	items []prediction.Prediction
}

func NewPredictionRepository(predictions []prediction.Prediction) *PredictionRepository {
	items := make([]prediction.Prediction, len(predictions))
	copy(items, predictions)

	return &PredictionRepository{items: items}
}

func (r *PredictionRepository) Create(_ context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.FanID == item.FanID && existing.MatchID == item.MatchID && existing.Type == item.Type {
			return prediction.Prediction{}, prediction.ErrDuplicate
		}
	}

	r.items = append(r.items, item)

	return item, nil
}

func (r *PredictionRepository) ListByFan(_ context.Context, fanID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.items {
		if item.FanID == fanID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PredictionRepository) ListByMatch(_ context.Context, matchID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PredictionRepository) CountCorrectByFan(_ context.Context, fanID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		if item.FanID == fanID && item.IsCorrect != nil && *item.IsCorrect {
			count++
		}
	}

	return count, nil
}

func (r *PredictionRepository) SettleMatch(_ context.Context, matchID string, predictionType prediction.Type, actual string, settledAt time.Time) ([]prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settled := make([]prediction.Prediction, 0)
	for i := range r.items {
		item := &r.items[i]
		if item.MatchID != matchID || item.Type != predictionType || item.IsCorrect != nil {
			continue
		}

		correct := strings.EqualFold(strings.TrimSpace(item.Value), strings.TrimSpace(actual))
		item.IsCorrect = &correct
		at := settledAt
		item.SettledAt = &at
		settled = append(settled, *item)
	}

	return settled, nil
}
