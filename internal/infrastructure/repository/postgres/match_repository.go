package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	qb "github.com/cricvibe/cricvibe-api/internal/platform/querybuilder"
)

type matchTableModel struct {
	ID        string    `db:"id"`
	Team1     string    `db:"team1"`
	Team2     string    `db:"team2"`
	Venue     string    `db:"venue"`
	MatchType string    `db:"match_type"`
	StartsAt  time.Time `db:"starts_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:        row.ID,
		Team1:     row.Team1,
		Team2:     row.Team2,
		Venue:     row.Venue,
		MatchType: row.MatchType,
		StartsAt:  row.StartsAt,
	}
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, limit int) ([]match.Match, error) {
	const query = `
SELECT *
FROM matches
WHERE starts_at > NOW()
ORDER BY starts_at
LIMIT $1`

	return r.listMatches(ctx, query, limit)
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Match, error) {
	const query = `
SELECT *
FROM matches
WHERE starts_at <= NOW()
ORDER BY starts_at DESC
LIMIT $1`

	return r.listMatches(ctx, query, limit)
}

func (r *MatchRepository) listMatches(ctx context.Context, query string, limit int) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}
