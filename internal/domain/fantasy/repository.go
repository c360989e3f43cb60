package fantasy

import "context"

// Repository describes fantasy team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) (Team, error)
	ListByFan(ctx context.Context, fanID string) ([]Team, error)

	// LeaderboardByMatch lists teams for one match ordered by total points.
	LeaderboardByMatch(ctx context.Context, matchID string, limit int) ([]Team, error)
}
