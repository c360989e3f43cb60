package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/cricvibe/cricvibe-api/internal/domain/fantasy"
)

type fantasyTeamTableModel struct {
	ID          string         `db:"id"`
	FanID       string         `db:"fan_id"`
	MatchID     string         `db:"match_id"`
	Name        string         `db:"name"`
	PlayerIDs   pq.StringArray `db:"player_ids"`
	TotalPoints int64          `db:"total_points"`
	CreatedAt   time.Time      `db:"created_at"`
}

func fantasyTeamFromRow(row fantasyTeamTableModel) fantasy.Team {
	return fantasy.Team{
		ID:          row.ID,
		FanID:       row.FanID,
		MatchID:     row.MatchID,
		Name:        row.Name,
		PlayerIDs:   []string(row.PlayerIDs),
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
	}
}

type FantasyRepository struct {
	db *sqlx.DB
}

func NewFantasyRepository(db *sqlx.DB) *FantasyRepository {
	return &FantasyRepository{db: db}
}

func (r *FantasyRepository) Create(ctx context.Context, item fantasy.Team) (fantasy.Team, error) {
	const query = `
INSERT INTO fantasy_teams (id, fan_id, match_id, name, player_ids, total_points, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.FanID, item.MatchID, item.Name,
		pq.Array(item.PlayerIDs), item.TotalPoints, item.CreatedAt,
	)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("insert fantasy team: %w", err)
	}

	return item, nil
}

func (r *FantasyRepository) ListByFan(ctx context.Context, fanID string) ([]fantasy.Team, error) {
	const query = `
SELECT *
FROM fantasy_teams
WHERE fan_id = $1
ORDER BY created_at DESC`

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, fanID); err != nil {
		return nil, fmt.Errorf("select fantasy teams by fan: %w", err)
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyTeamFromRow(row))
	}

	return out, nil
}

func (r *FantasyRepository) LeaderboardByMatch(ctx context.Context, matchID string, limit int) ([]fantasy.Team, error) {
	const query = `
SELECT *
FROM fantasy_teams
WHERE match_id = $1
ORDER BY total_points DESC, created_at
LIMIT $2`

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID, limit); err != nil {
		return nil, fmt.Errorf("select fantasy leaderboard: %w", err)
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyTeamFromRow(row))
	}

	return out, nil
}
