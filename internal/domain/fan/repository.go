package fan

import "context"

// Repository describes fan persistence needs from use cases.
//
// AddPoints must be applied as a storage-level atomic increment so that
// concurrent scoring events for the same fan never lose updates.
type Repository interface {
	GetByID(ctx context.Context, fanID string) (Fan, bool, error)
	GetByGoogleID(ctx context.Context, googleID string) (Fan, bool, error)
	Create(ctx context.Context, item Fan) (Fan, error)

	// AddPoints increments the stored total. Returns false when the fan
	// does not exist.
	AddPoints(ctx context.Context, fanID string, delta int64) (bool, error)

	// GetWithRank returns the fan together with 1 + count of fans holding
	// strictly more points, read consistently in one round trip.
	GetWithRank(ctx context.Context, fanID string) (Fan, int, bool, error)

	// TopByPoints lists fans ordered by (points desc, streak desc).
	TopByPoints(ctx context.Context, limit int) ([]Fan, error)

	IncrementStreak(ctx context.Context, fanID string) (bool, error)
	ResetStreak(ctx context.Context, fanID string) (bool, error)
}
