package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cricvibe/cricvibe-api/internal/domain/player"
	qb "github.com/cricvibe/cricvibe-api/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID           string    `db:"id"`
	PublicID     string    `db:"public_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Role         string    `db:"role"`
	Team         string    `db:"team"`
	PasswordHash string    `db:"password_hash"`
	AvatarURL    string    `db:"avatar_url"`
	CreatedAt    time.Time `db:"created_at"`
}

type playerStatsRowModel struct {
	MatchID     string    `db:"match_id"`
	MatchName   string    `db:"match_name"`
	MatchDate   time.Time `db:"match_date"`
	Runs        int       `db:"runs"`
	BallsFaced  int       `db:"balls_faced"`
	Wickets     int       `db:"wickets"`
	OversBowled float64   `db:"overs_bowled"`
	Catches     int       `db:"catches"`
}

type playerSummaryRowModel struct {
	MatchesPlayed  int     `db:"matches_played"`
	TotalRuns      int     `db:"total_runs"`
	TotalWickets   int     `db:"total_wickets"`
	BattingAverage float64 `db:"batting_average"`
	StrikeRate     float64 `db:"strike_rate"`
}

type playerDrillTableModel struct {
	ID          string    `db:"id"`
	PlayerID    string    `db:"player_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	AssignedAt  time.Time `db:"assigned_at"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByPublicID(ctx context.Context, publicID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("public_id", publicID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return player.Player{
		ID:           row.ID,
		PublicID:     row.PublicID,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		Role:         row.Role,
		Team:         row.Team,
		PasswordHash: row.PasswordHash,
		AvatarURL:    row.AvatarURL,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

func (r *PlayerRepository) StatsSummary(ctx context.Context, playerID string) (player.StatsSummary, error) {
	const query = `
SELECT
  COUNT(*) AS matches_played,
  COALESCE(SUM(runs), 0) AS total_runs,
  COALESCE(SUM(wickets), 0) AS total_wickets,
  COALESCE(AVG(runs::decimal), 0) AS batting_average,
  COALESCE(SUM(runs)::decimal / NULLIF(SUM(balls_faced), 0) * 100, 0) AS strike_rate
FROM player_stats
WHERE player_id = $1`

	var row playerSummaryRowModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		return player.StatsSummary{}, fmt.Errorf("get player stats summary: %w", err)
	}

	return player.StatsSummary{
		MatchesPlayed:  row.MatchesPlayed,
		TotalRuns:      row.TotalRuns,
		TotalWickets:   row.TotalWickets,
		BattingAverage: row.BattingAverage,
		StrikeRate:     row.StrikeRate,
	}, nil
}

func (r *PlayerRepository) RecentMatches(ctx context.Context, playerID string, limit int) ([]player.MatchStats, error) {
	const query = `
SELECT
  ps.match_id,
  m.team1 || ' vs ' || m.team2 AS match_name,
  m.starts_at AS match_date,
  ps.runs,
  ps.balls_faced,
  ps.wickets,
  ps.overs_bowled,
  ps.catches
FROM player_stats ps
JOIN matches m ON ps.match_id = m.id
WHERE ps.player_id = $1
ORDER BY m.starts_at DESC
LIMIT $2`

	var rows []playerStatsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID, limit); err != nil {
		return nil, fmt.Errorf("select player recent matches: %w", err)
	}

	out := make([]player.MatchStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.MatchStats{
			MatchID:     row.MatchID,
			MatchName:   row.MatchName,
			MatchDate:   row.MatchDate,
			Runs:        row.Runs,
			BallsFaced:  row.BallsFaced,
			Wickets:     row.Wickets,
			OversBowled: row.OversBowled,
			Catches:     row.Catches,
		})
	}

	return out, nil
}

func (r *PlayerRepository) ListDrills(ctx context.Context, playerID string, limit int) ([]player.Drill, error) {
	const query = `
SELECT *
FROM practice_drills
WHERE player_id = $1
ORDER BY assigned_at DESC
LIMIT $2`

	var rows []playerDrillTableModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID, limit); err != nil {
		return nil, fmt.Errorf("select player drills: %w", err)
	}

	out := make([]player.Drill, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Drill{
			ID:          row.ID,
			PlayerID:    row.PlayerID,
			Title:       row.Title,
			Description: row.Description,
			Category:    row.Category,
			AssignedAt:  row.AssignedAt,
		})
	}

	return out, nil
}
