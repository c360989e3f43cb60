package prediction

import (
	"context"
	"time"
)

// Repository describes prediction persistence needs from use cases.
type Repository interface {
	// Create persists a new prediction. Returns ErrDuplicate when a row
	// already exists for the same (fan, match, type).
	Create(ctx context.Context, item Prediction) (Prediction, error)

	ListByFan(ctx context.Context, fanID string) ([]Prediction, error)
	ListByMatch(ctx context.Context, matchID string) ([]Prediction, error)

	// CountCorrectByFan counts the fan's settled-correct predictions.
	CountCorrectByFan(ctx context.Context, fanID string) (int, error)

	// SettleMatch writes is_correct for every unsettled prediction of the
	// match for the given type, comparing stored values against actual.
	// Returns the predictions it settled.
	SettleMatch(ctx context.Context, matchID string, predictionType Type, actual string, settledAt time.Time) ([]Prediction, error)
}
