package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	qb "github.com/cricvibe/cricvibe-api/internal/platform/querybuilder"
)

type BadgeRepository struct {
	db *sqlx.DB
}

func NewBadgeRepository(db *sqlx.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

func (r *BadgeRepository) List(ctx context.Context) ([]badge.Badge, error) {
	query, args, err := qb.Select("*").From("badges").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select badges query: %w", err)
	}

	var rows []badgeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select badges: %w", err)
	}

	out := make([]badge.Badge, 0, len(rows))
	for _, row := range rows {
		criterion, err := badge.ParseCriterion(row.Criteria)
		if err != nil {
			return nil, fmt.Errorf("parse criterion for badge %s: %w", row.ID, err)
		}
		out = append(out, badge.Badge{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Icon:        row.Icon,
			Criterion:   criterion,
		})
	}

	return out, nil
}

func (r *BadgeRepository) ListAwardsByFan(ctx context.Context, fanID string) ([]badge.Award, error) {
	query, args, err := qb.Select("fan_id", "badge_id", "earned_at").From("fan_badges").
		Where(qb.Eq("fan_id", fanID)).
		OrderBy("earned_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fan badges query: %w", err)
	}

	var rows []fanBadgeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fan badges: %w", err)
	}

	out := make([]badge.Award, 0, len(rows))
	for _, row := range rows {
		out = append(out, badge.Award{
			FanID:    row.FanID,
			BadgeID:  row.BadgeID,
			EarnedAt: row.EarnedAt,
		})
	}

	return out, nil
}

// Award relies on the unique (fan_id, badge_id) constraint: a concurrent or
// repeated insert collapses to a no-op instead of an error.
func (r *BadgeRepository) Award(ctx context.Context, fanID, badgeID string, earnedAt time.Time) (bool, error) {
	const query = `
INSERT INTO fan_badges (fan_id, badge_id, earned_at)
VALUES ($1, $2, $3)
ON CONFLICT (fan_id, badge_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, fanID, badgeID, earnedAt)
	if err != nil {
		return false, fmt.Errorf("insert fan badge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}

	return affected > 0, nil
}
