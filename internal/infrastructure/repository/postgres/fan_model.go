package postgres

import "time"

type fanTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	AvatarURL     string    `db:"avatar_url"`
	GoogleID      string    `db:"google_id"`
	Points        int64     `db:"points"`
	CurrentStreak int       `db:"current_streak"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type fanWithRankModel struct {
	fanTableModel
	Rank int `db:"rank"`
}
