package player

import "context"

// Repository describes player reads for dashboards and rosters.
type Repository interface {
	GetByPublicID(ctx context.Context, publicID string) (Player, bool, error)
	StatsSummary(ctx context.Context, playerID string) (StatsSummary, error)
	RecentMatches(ctx context.Context, playerID string, limit int) ([]MatchStats, error)
	ListDrills(ctx context.Context, playerID string, limit int) ([]Drill, error)
}
