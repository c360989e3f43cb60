package match

import "context"

// Repository describes match reference data reads.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListUpcoming(ctx context.Context, limit int) ([]Match, error)
	ListRecent(ctx context.Context, limit int) ([]Match, error)
}
