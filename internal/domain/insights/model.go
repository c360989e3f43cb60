package insights

// XIRequest describes the match context a playing XI is suggested for.
type XIRequest struct {
	Team           string
	Opposition     string
	PitchCondition string
	Venue          string
	MatchType      string
}

// XIPick is one slot in a suggested playing XI.
type XIPick struct {
	Name   string
	Role   string
	Reason string
}

// XIStrategy is the match plan attached to an XI suggestion.
type XIStrategy struct {
	BattingOrder string
	BowlingPlan  string
	Fielding     string
}

// XISuggestion is a full playing XI recommendation.
type XISuggestion struct {
	TeamName    string
	PlayingXI   []XIPick
	Strategy    XIStrategy
	KeyInsights []string
}

// PlayerCareer is one side of a player comparison.
type PlayerCareer struct {
	Matches    int
	Runs       int
	Average    float64
	StrikeRate float64
	Fifties    int
	Hundreds   int
	Wickets    int
}

// PlayerComparison compares two players head to head.
type PlayerComparison struct {
	Player1Name  string
	Player2Name  string
	Player1      PlayerCareer
	Player2      PlayerCareer
	MatchesFaced int
	Player1Outs  int
	Player2Outs  int
	Player1Best  int
	Player2Best  int
}

// TeamRecord is one side of a team comparison.
type TeamRecord struct {
	MatchesPlayed int
	Wins          int
	Losses        int
	WinPercentage float64
	AverageScore  int
	HighestScore  int
}

// TeamComparison compares two teams head to head.
type TeamComparison struct {
	Team1Name    string
	Team2Name    string
	Team1        TeamRecord
	Team2        TeamRecord
	TotalMatches int
	Team1Wins    int
	Team2Wins    int
	LastFive     []string
}

// Analysis is an AI-style performance readout for a player.
type Analysis struct {
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// Dossier summarizes an opposition team for match preparation.
type Dossier struct {
	Team       string
	Strengths  []string
	Weaknesses []string
	KeyPlayers []KeyPlayer
}

// KeyPlayer flags a dangerous opponent inside a dossier.
type KeyPlayer struct {
	Name        string
	Role        string
	ThreatLevel string
}
