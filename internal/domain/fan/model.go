package fan

import (
	"fmt"
	"time"
)

// Fan is an end-user tracked on the engagement leaderboard.
type Fan struct {
	ID            string
	Name          string
	Email         string
	AvatarURL     string
	GoogleID      string
	Points        int64
	CurrentStreak int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (f Fan) ValidateBasic() error {
	if f.ID == "" {
		return fmt.Errorf("fan id is required")
	}
	if f.Email == "" {
		return fmt.Errorf("fan email is required")
	}
	if f.Points < 0 {
		return fmt.Errorf("fan points cannot be negative")
	}
	if f.CurrentStreak < 0 {
		return fmt.Errorf("fan streak cannot be negative")
	}

	return nil
}
