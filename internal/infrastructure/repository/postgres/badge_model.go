package postgres

import "time"

type badgeTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Icon        string    `db:"icon"`
	Criteria    []byte    `db:"criteria"`
	CreatedAt   time.Time `db:"created_at"`
}

type fanBadgeTableModel struct {
	FanID    string    `db:"fan_id"`
	BadgeID  string    `db:"badge_id"`
	EarnedAt time.Time `db:"earned_at"`
}
