package player

import "time"

// Player is a cricketer with a separate login and dashboard view. The
// scoring subsystem never mutates players.
type Player struct {
	ID           string
	PublicID     string
	Name         string
	Email        string
	Phone        string
	Role         string
	Team         string
	PasswordHash string
	AvatarURL    string
	CreatedAt    time.Time
}

// MatchStats is one player's line for one match.
type MatchStats struct {
	MatchID     string
	MatchName   string
	MatchDate   time.Time
	Runs        int
	BallsFaced  int
	Wickets     int
	OversBowled float64
	Catches     int
}

// StrikeRate derives runs per hundred balls; zero when no balls were faced.
func (s MatchStats) StrikeRate() float64 {
	if s.BallsFaced <= 0 {
		return 0
	}
	return float64(s.Runs) / float64(s.BallsFaced) * 100
}

// StatsSummary aggregates a player's career numbers for the dashboard.
type StatsSummary struct {
	MatchesPlayed  int
	TotalRuns      int
	TotalWickets   int
	BattingAverage float64
	StrikeRate     float64
}
