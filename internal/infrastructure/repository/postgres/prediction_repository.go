package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
	qb "github.com/cricvibe/cricvibe-api/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	const query = `
INSERT INTO predictions (id, fan_id, match_id, prediction_type, value, points_earned, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.FanID, item.MatchID, string(item.Type), item.Value,
		item.PointsEarned, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return prediction.Prediction{}, prediction.ErrDuplicate
		}
		return prediction.Prediction{}, fmt.Errorf("insert prediction: %w", err)
	}

	return item, nil
}

func (r *PredictionRepository) list(ctx context.Context, condition qb.Condition) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(condition).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}

	return out, nil
}

func (r *PredictionRepository) ListByFan(ctx context.Context, fanID string) ([]prediction.Prediction, error) {
	return r.list(ctx, qb.Eq("fan_id", fanID))
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID string) ([]prediction.Prediction, error) {
	return r.list(ctx, qb.Eq("match_id", matchID))
}

func (r *PredictionRepository) CountCorrectByFan(ctx context.Context, fanID string) (int, error) {
	const query = `
SELECT COUNT(*)
FROM predictions
WHERE fan_id = $1
  AND is_correct = TRUE`

	var count int
	if err := r.db.GetContext(ctx, &count, query, fanID); err != nil {
		return 0, fmt.Errorf("count correct predictions: %w", err)
	}

	return count, nil
}

// SettleMatch writes correctness for the whole (match, type) slice in one
// statement; rows settled by an earlier run keep their original verdict.
func (r *PredictionRepository) SettleMatch(ctx context.Context, matchID string, predictionType prediction.Type, actual string, settledAt time.Time) ([]prediction.Prediction, error) {
	const query = `
UPDATE predictions
SET is_correct = (LOWER(TRIM(value)) = LOWER(TRIM($3))),
    settled_at = $4
WHERE match_id = $1
  AND prediction_type = $2
  AND is_correct IS NULL
RETURNING *`

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID, string(predictionType), actual, settledAt); err != nil {
		return nil, fmt.Errorf("settle predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}

	return out, nil
}
