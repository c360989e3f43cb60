package insights

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Generator produces deterministic stand-in insight payloads when the
// upstream analytics provider is unreachable. Numbers are seeded from the
// subject names so repeated calls for the same matchup agree.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func seed(parts ...string) uint64 {
	h := fnv.New64a()
	for _, part := range parts {
		h.Write([]byte(strings.ToLower(strings.TrimSpace(part))))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// vary projects the seed into [base, base+spread).
func vary(s uint64, salt uint64, base, spread int) int {
	if spread <= 0 {
		return base
	}
	mixed := s ^ (salt * 0x9e3779b97f4a7c15)
	mixed ^= mixed >> 33
	return base + int(mixed%uint64(spread))
}

var xiSlots = []XIPick{
	{Name: "Opener 1", Role: "Batsman", Reason: "Excellent form - 3 fifties in last 5 matches"},
	{Name: "Opener 2", Role: "Batsman", Reason: "Strong record at this venue - average 52"},
	{Name: "No. 3", Role: "Batsman", Reason: "Good against pace - 145 SR vs fast bowlers"},
	{Name: "Middle Order 1", Role: "All-Rounder", Reason: "Balanced player - can bowl at death"},
	{Name: "Middle Order 2", Role: "All-Rounder", Reason: "5 wickets in last 3 matches"},
	{Name: "Wicket Keeper", Role: "Wicket-Keeper", Reason: "Best keeper in squad - 8 dismissals recently"},
	{Name: "Finisher", Role: "Batsman", Reason: "Death over specialist - SR 165"},
	{Name: "Bowler 1", Role: "Bowler", Reason: "Effective on this pitch type - 12 wickets in 4 games"},
	{Name: "Bowler 2", Role: "Bowler", Reason: "Good against opposition - 3 wickets vs them last time"},
	{Name: "Bowler 3", Role: "Bowler", Reason: "Death over specialist - economy rate 7.2"},
	{Name: "Bowler 4", Role: "Bowler", Reason: "Swing bowler - pitch offers movement"},
}

func (g *Generator) SuggestPlayingXI(req XIRequest) XISuggestion {
	picks := make([]XIPick, len(xiSlots))
	copy(picks, xiSlots)

	return XISuggestion{
		TeamName:  req.Team,
		PlayingXI: picks,
		Strategy: XIStrategy{
			BattingOrder: "Aggressive top order, stabilize middle, power finish",
			BowlingPlan:  "Use pacers in powerplay, spin in middle overs, pace at death",
			Fielding:     "Attacking field in first 6 overs, then contain",
		},
		KeyInsights: []string{
			fmt.Sprintf("%s struggles against spin on this pitch", req.Opposition),
			"Weather forecast suggests overcast conditions - favor pacers",
			"Pitch has assisted bowlers in last 3 matches here",
			"Opposition weak against left-arm pace",
		},
	}
}

func (g *Generator) ComparePlayers(player1, player2 string) PlayerComparison {
	s := seed(player1, player2)

	career := func(salt uint64) PlayerCareer {
		matches := vary(s, salt, 80, 80)
		runs := vary(s, salt+1, 2500, 3000)
		return PlayerCareer{
			Matches:    matches,
			Runs:       runs,
			Average:    float64(vary(s, salt+2, 300, 200)) / 10,
			StrikeRate: float64(vary(s, salt+3, 1200, 500)) / 10,
			Fifties:    vary(s, salt+4, 15, 25),
			Hundreds:   vary(s, salt+5, 4, 12),
			Wickets:    vary(s, salt+6, 10, 60),
		}
	}

	return PlayerComparison{
		Player1Name:  player1,
		Player2Name:  player2,
		Player1:      career(1),
		Player2:      career(100),
		MatchesFaced: vary(s, 200, 8, 15),
		Player1Outs:  vary(s, 201, 3, 8),
		Player2Outs:  vary(s, 202, 3, 8),
		Player1Best:  vary(s, 203, 55, 60),
		Player2Best:  vary(s, 204, 55, 60),
	}
}

func (g *Generator) CompareTeams(team1, team2 string) TeamComparison {
	s := seed(team1, team2)

	record := func(salt uint64) TeamRecord {
		played := vary(s, salt, 350, 150)
		wins := played * vary(s, salt+1, 48, 15) / 100
		return TeamRecord{
			MatchesPlayed: played,
			Wins:          wins,
			Losses:        played - wins,
			WinPercentage: float64(wins) / float64(played) * 100,
			AverageScore:  vary(s, salt+2, 155, 40),
			HighestScore:  vary(s, salt+3, 210, 50),
		}
	}

	total := vary(s, 300, 25, 30)
	team1Wins := total * vary(s, 301, 40, 20) / 100
	outcomes := []string{"W", "L"}
	lastFive := make([]string, 0, 5)
	for i := uint64(0); i < 5; i++ {
		lastFive = append(lastFive, outcomes[vary(s, 310+i, 0, 2)])
	}

	return TeamComparison{
		Team1Name:    team1,
		Team2Name:    team2,
		Team1:        record(1),
		Team2:        record(100),
		TotalMatches: total,
		Team1Wins:    team1Wins,
		Team2Wins:    total - team1Wins,
		LastFive:     lastFive,
	}
}

func (g *Generator) AnalyzePlayer(playerName string) Analysis {
	s := seed(playerName)

	return Analysis{
		Strengths: []string{
			fmt.Sprintf("Excellent strike rate in powerplay overs (avg %d)", vary(s, 1, 130, 30)),
			"Strong performer against spin bowling",
			fmt.Sprintf("Consistent boundary hitter - %d boundaries per match", vary(s, 2, 6, 5)),
		},
		Weaknesses: []string{
			"Dot ball percentage increases after 15th over",
			"Struggles against short-pitched deliveries",
			fmt.Sprintf("Lower average in death overs (%d vs %d overall)", vary(s, 3, 25, 15), vary(s, 4, 40, 10)),
		},
		Recommendations: []string{
			"Practice rotating strike in middle overs",
			"Work on pull and hook shots against short balls",
			"Focus on finding gaps in field during death overs",
		},
	}
}

func (g *Generator) OppositionDossier(teamName string) Dossier {
	return Dossier{
		Team:       teamName,
		Strengths:  []string{"Strong batting lineup", "Good pace attack"},
		Weaknesses: []string{"Vulnerable to spin in middle overs", "Weak fielding"},
		KeyPlayers: []KeyPlayer{
			{Name: "Player A", Role: "Batsman", ThreatLevel: "High"},
			{Name: "Player B", Role: "Bowler", ThreatLevel: "Medium"},
		},
	}
}
