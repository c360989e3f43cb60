package insightsai

import "github.com/cricvibe/cricvibe-api/internal/domain/insights"

type pairWire struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type subjectWire struct {
	Name string `json:"name"`
}

type xiRequestWire struct {
	Team           string `json:"team"`
	Opposition     string `json:"opposition"`
	PitchCondition string `json:"pitch_condition,omitempty"`
	Venue          string `json:"venue,omitempty"`
	MatchType      string `json:"match_type,omitempty"`
}

type xiPickWire struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Reason string `json:"reason"`
}

type xiStrategyWire struct {
	BattingOrder string `json:"batting_order"`
	BowlingPlan  string `json:"bowling_plan"`
	Fielding     string `json:"fielding"`
}

type xiSuggestionWire struct {
	TeamName    string         `json:"team_name"`
	PlayingXI   []xiPickWire   `json:"playing_xi"`
	Strategy    xiStrategyWire `json:"strategy"`
	KeyInsights []string       `json:"key_insights"`
}

func (w xiSuggestionWire) toDomain() insights.XISuggestion {
	picks := make([]insights.XIPick, 0, len(w.PlayingXI))
	for _, pick := range w.PlayingXI {
		picks = append(picks, insights.XIPick{
			Name:   pick.Name,
			Role:   pick.Role,
			Reason: pick.Reason,
		})
	}

	return insights.XISuggestion{
		TeamName:  w.TeamName,
		PlayingXI: picks,
		Strategy: insights.XIStrategy{
			BattingOrder: w.Strategy.BattingOrder,
			BowlingPlan:  w.Strategy.BowlingPlan,
			Fielding:     w.Strategy.Fielding,
		},
		KeyInsights: w.KeyInsights,
	}
}

type playerCareerWire struct {
	Matches    int     `json:"matches"`
	Runs       int     `json:"runs"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
	Fifties    int     `json:"fifties"`
	Hundreds   int     `json:"hundreds"`
	Wickets    int     `json:"wickets"`
}

func (w playerCareerWire) toDomain() insights.PlayerCareer {
	return insights.PlayerCareer{
		Matches:    w.Matches,
		Runs:       w.Runs,
		Average:    w.Average,
		StrikeRate: w.StrikeRate,
		Fifties:    w.Fifties,
		Hundreds:   w.Hundreds,
		Wickets:    w.Wickets,
	}
}

type playerComparisonWire struct {
	Player1Name  string           `json:"player1_name"`
	Player2Name  string           `json:"player2_name"`
	Player1      playerCareerWire `json:"player1"`
	Player2      playerCareerWire `json:"player2"`
	MatchesFaced int              `json:"matches_faced"`
	Player1Outs  int              `json:"player1_outs"`
	Player2Outs  int              `json:"player2_outs"`
	Player1Best  int              `json:"player1_best"`
	Player2Best  int              `json:"player2_best"`
}

func (w playerComparisonWire) toDomain() insights.PlayerComparison {
	return insights.PlayerComparison{
		Player1Name:  w.Player1Name,
		Player2Name:  w.Player2Name,
		Player1:      w.Player1.toDomain(),
		Player2:      w.Player2.toDomain(),
		MatchesFaced: w.MatchesFaced,
		Player1Outs:  w.Player1Outs,
		Player2Outs:  w.Player2Outs,
		Player1Best:  w.Player1Best,
		Player2Best:  w.Player2Best,
	}
}

type teamRecordWire struct {
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
	AverageScore  int     `json:"average_score"`
	HighestScore  int     `json:"highest_score"`
}

func (w teamRecordWire) toDomain() insights.TeamRecord {
	return insights.TeamRecord{
		MatchesPlayed: w.MatchesPlayed,
		Wins:          w.Wins,
		Losses:        w.Losses,
		WinPercentage: w.WinPercentage,
		AverageScore:  w.AverageScore,
		HighestScore:  w.HighestScore,
	}
}

type teamComparisonWire struct {
	Team1Name    string         `json:"team1_name"`
	Team2Name    string         `json:"team2_name"`
	Team1        teamRecordWire `json:"team1"`
	Team2        teamRecordWire `json:"team2"`
	TotalMatches int            `json:"total_matches"`
	Team1Wins    int            `json:"team1_wins"`
	Team2Wins    int            `json:"team2_wins"`
	LastFive     []string       `json:"last_five"`
}

func (w teamComparisonWire) toDomain() insights.TeamComparison {
	return insights.TeamComparison{
		Team1Name:    w.Team1Name,
		Team2Name:    w.Team2Name,
		Team1:        w.Team1.toDomain(),
		Team2:        w.Team2.toDomain(),
		TotalMatches: w.TotalMatches,
		Team1Wins:    w.Team1Wins,
		Team2Wins:    w.Team2Wins,
		LastFive:     w.LastFive,
	}
}

type analysisWire struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

func (w analysisWire) toDomain() insights.Analysis {
	return insights.Analysis{
		Strengths:       w.Strengths,
		Weaknesses:      w.Weaknesses,
		Recommendations: w.Recommendations,
	}
}

type keyPlayerWire struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	ThreatLevel string `json:"threat_level"`
}

type dossierWire struct {
	Team       string          `json:"team"`
	Strengths  []string        `json:"strengths"`
	Weaknesses []string        `json:"weaknesses"`
	KeyPlayers []keyPlayerWire `json:"key_players"`
}

func (w dossierWire) toDomain() insights.Dossier {
	players := make([]insights.KeyPlayer, 0, len(w.KeyPlayers))
	for _, kp := range w.KeyPlayers {
		players = append(players, insights.KeyPlayer{
			Name:        kp.Name,
			Role:        kp.Role,
			ThreatLevel: kp.ThreatLevel,
		})
	}

	return insights.Dossier{
		Team:       w.Team,
		Strengths:  w.Strengths,
		Weaknesses: w.Weaknesses,
		KeyPlayers: players,
	}
}
