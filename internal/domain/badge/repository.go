package badge

import (
	"context"
	"time"
)

// Repository describes badge reference data and award persistence.
type Repository interface {
	List(ctx context.Context) ([]Badge, error)
	ListAwardsByFan(ctx context.Context, fanID string) ([]Award, error)

	// Award inserts the (fan, badge) fact. A duplicate attempt is a no-op
	// returning false; at-most-once is enforced by a storage uniqueness
	// constraint, not application locking.
	Award(ctx context.Context, fanID, badgeID string, earnedAt time.Time) (bool, error)
}
