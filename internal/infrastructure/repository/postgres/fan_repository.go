package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	qb "github.com/cricvibe/cricvibe-api/internal/platform/querybuilder"
)

type FanRepository struct {
	db *sqlx.DB
}

func NewFanRepository(db *sqlx.DB) *FanRepository {
	return &FanRepository{db: db}
}

func fanFromRow(row fanTableModel) fan.Fan {
	return fan.Fan{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		AvatarURL:     row.AvatarURL,
		GoogleID:      row.GoogleID,
		Points:        row.Points,
		CurrentStreak: row.CurrentStreak,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func (r *FanRepository) getOne(ctx context.Context, condition qb.Condition) (fan.Fan, bool, error) {
	query, args, err := qb.Select("*").From("fans").
		Where(condition).
		ToSQL()
	if err != nil {
		return fan.Fan{}, false, fmt.Errorf("build get fan query: %w", err)
	}

	var row fanTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fan.Fan{}, false, nil
		}
		return fan.Fan{}, false, fmt.Errorf("get fan: %w", err)
	}

	return fanFromRow(row), true, nil
}

func (r *FanRepository) GetByID(ctx context.Context, fanID string) (fan.Fan, bool, error) {
	return r.getOne(ctx, qb.Eq("id", fanID))
}

func (r *FanRepository) GetByGoogleID(ctx context.Context, googleID string) (fan.Fan, bool, error) {
	return r.getOne(ctx, qb.Eq("google_id", googleID))
}

func (r *FanRepository) Create(ctx context.Context, item fan.Fan) (fan.Fan, error) {
	const query = `
INSERT INTO fans (id, name, email, avatar_url, google_id, points, current_streak, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Email, item.AvatarURL, item.GoogleID,
		item.Points, item.CurrentStreak, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fan.Fan{}, fmt.Errorf("insert fan: %w", err)
	}

	return item, nil
}

// AddPoints applies the increment in one statement so concurrent credits
// for the same fan serialize on the row instead of racing a read.
func (r *FanRepository) AddPoints(ctx context.Context, fanID string, delta int64) (bool, error) {
	const query = `
UPDATE fans
SET points = points + $2,
    updated_at = NOW()
WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, fanID, delta)
	if err != nil {
		return false, fmt.Errorf("update fan points: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *FanRepository) GetWithRank(ctx context.Context, fanID string) (fan.Fan, int, bool, error) {
	const query = `
SELECT f.*,
       1 + (SELECT COUNT(*) FROM fans o WHERE o.points > f.points) AS rank
FROM fans f
WHERE f.id = $1`

	var row fanWithRankModel
	if err := r.db.GetContext(ctx, &row, query, fanID); err != nil {
		if isNotFound(err) {
			return fan.Fan{}, 0, false, nil
		}
		return fan.Fan{}, 0, false, fmt.Errorf("get fan with rank: %w", err)
	}

	return fanFromRow(row.fanTableModel), row.Rank, true, nil
}

func (r *FanRepository) TopByPoints(ctx context.Context, limit int) ([]fan.Fan, error) {
	query, args, err := qb.Select("*").From("fans").
		OrderBy("points DESC", "current_streak DESC", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top fans query: %w", err)
	}

	var rows []fanTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top fans: %w", err)
	}

	out := make([]fan.Fan, 0, len(rows))
	for _, row := range rows {
		out = append(out, fanFromRow(row))
	}

	return out, nil
}

func (r *FanRepository) IncrementStreak(ctx context.Context, fanID string) (bool, error) {
	const query = `
UPDATE fans
SET current_streak = current_streak + 1,
    updated_at = NOW()
WHERE id = $1`

	return r.execStreak(ctx, query, fanID)
}

func (r *FanRepository) ResetStreak(ctx context.Context, fanID string) (bool, error) {
	const query = `
UPDATE fans
SET current_streak = 0,
    updated_at = NOW()
WHERE id = $1`

	return r.execStreak(ctx, query, fanID)
}

func (r *FanRepository) execStreak(ctx context.Context, query, fanID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, fanID)
	if err != nil {
		return false, fmt.Errorf("update fan streak: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}

	return affected > 0, nil
}
