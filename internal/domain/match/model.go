package match

import "time"

// Match is a fixture fans predict on and build fantasy teams for.
type Match struct {
	ID        string
	Team1     string
	Team2     string
	Venue     string
	MatchType string
	StartsAt  time.Time
}

func (m Match) Name() string {
	return m.Team1 + " vs " + m.Team2
}

// Outcome carries the settled result dimensions for one match.
type Outcome struct {
	Winner     string
	TopScorer  string
	ManOfMatch string
}
