package fantasy

import (
	"fmt"
	"time"
)

// Team is a fan's fixed-size fantasy roster for one match. TotalPoints starts
// at zero and is updated by the external scoring job.
type Team struct {
	ID          string
	FanID       string
	MatchID     string
	Name        string
	PlayerIDs   []string
	TotalPoints int64
	CreatedAt   time.Time
}

func (t Team) ValidateBasic() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.FanID == "" {
		return fmt.Errorf("fan id is required")
	}
	if t.MatchID == "" {
		return fmt.Errorf("match id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.PlayerIDs) == 0 {
		return fmt.Errorf("team players are required")
	}
	if t.TotalPoints < 0 {
		return fmt.Errorf("team points cannot be negative")
	}

	return nil
}
