package postgres

import (
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
)

type predictionTableModel struct {
	ID             string     `db:"id"`
	FanID          string     `db:"fan_id"`
	MatchID        string     `db:"match_id"`
	PredictionType string     `db:"prediction_type"`
	Value          string     `db:"value"`
	IsCorrect      *bool      `db:"is_correct"`
	PointsEarned   int64      `db:"points_earned"`
	CreatedAt      time.Time  `db:"created_at"`
	SettledAt      *time.Time `db:"settled_at"`
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:           row.ID,
		FanID:        row.FanID,
		MatchID:      row.MatchID,
		Type:         prediction.Type(row.PredictionType),
		Value:        row.Value,
		IsCorrect:    row.IsCorrect,
		PointsEarned: row.PointsEarned,
		CreatedAt:    row.CreatedAt,
		SettledAt:    row.SettledAt,
	}
}
