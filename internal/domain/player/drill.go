package player

import "time"

// Drill is a practice assignment handed to a player by the coaching side.
type Drill struct {
	ID          string
	PlayerID    string
	Title       string
	Description string
	Category    string
	AssignedAt  time.Time
}
