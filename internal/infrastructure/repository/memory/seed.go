package memory

import (
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/player"
	"github.com/cricvibe/cricvibe-api/internal/domain/task"
)

const (
	MatchIDIndAus = "match-ind-aus-2026"
	MatchIDEngSa  = "match-eng-sa-2026"
	MatchIDPakNz  = "match-pak-nz-2026"
)

func SeedBadges() []badge.Badge {
	return []badge.Badge{
		{
			ID:          "badge-first-steps",
			Name:        "First Steps",
			Description: "Earn your first 100 points",
			Icon:        "🏏",
			Criterion:   badge.PointsAtLeast{Points: 100},
		},
		{
			ID:          "badge-century-club",
			Name:        "Century Club",
			Description: "Cross 1000 leaderboard points",
			Icon:        "💯",
			Criterion:   badge.PointsAtLeast{Points: 1000},
		},
		{
			ID:          "badge-on-fire",
			Name:        "On Fire",
			Description: "Keep a 7 day engagement streak",
			Icon:        "🔥",
			Criterion:   badge.StreakAtLeast{Days: 7},
		},
		{
			ID:          "badge-oracle",
			Name:        "Oracle",
			Description: "Get 10 predictions right",
			Icon:        "🔮",
			Criterion:   badge.CorrectPredictionsAtLeast{Count: 10},
		},
	}
}

func SeedMatches(now time.Time) []match.Match {
	now = now.UTC()
	return []match.Match{
		{
			ID:        MatchIDIndAus,
			Team1:     "India",
			Team2:     "Australia",
			Venue:     "Wankhede Stadium, Mumbai",
			MatchType: "T20",
			StartsAt:  now.Add(48 * time.Hour),
		},
		{
			ID:        MatchIDEngSa,
			Team1:     "England",
			Team2:     "South Africa",
			Venue:     "Lord's, London",
			MatchType: "ODI",
			StartsAt:  now.Add(96 * time.Hour),
		},
		{
			ID:        MatchIDPakNz,
			Team1:     "Pakistan",
			Team2:     "New Zealand",
			Venue:     "Gaddafi Stadium, Lahore",
			MatchType: "T20",
			StartsAt:  now.Add(-24 * time.Hour),
		},
	}
}

func SeedTasks(now time.Time) []task.Task {
	now = now.UTC()
	return []task.Task{
		{
			ID:            "task-trivia-1983",
			Title:         "World Cup Trivia",
			Description:   "Which team won the 1983 Cricket World Cup?",
			Type:          task.TypeTrivia,
			CorrectAnswer: "India",
			Points:        20,
			Active:        true,
			CreatedAt:     now,
		},
		{
			ID:            "task-trivia-sixes",
			Title:         "Six Machine",
			Description:   "Who has hit the most sixes in international cricket?",
			Type:          task.TypeTrivia,
			CorrectAnswer: "Chris Gayle",
			Points:        20,
			Active:        true,
			CreatedAt:     now,
		},
		{
			ID:          "task-match-photo",
			Title:       "Match Day Photo",
			Description: "Upload a photo from your match day watch party",
			Type:        task.TypeContentUpload,
			Points:      35,
			Active:      true,
			CreatedAt:   now,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID:       "player-internal-001",
			PublicID: "PLR001",
			Name:     "Arjun Sharma",
			Email:    "arjun.sharma@cricvibe.example",
			Role:     "Batsman",
			Team:     "Mumbai Strikers",
		},
		{
			ID:       "player-internal-002",
			PublicID: "PLR002",
			Name:     "Kane Fletcher",
			Email:    "kane.fletcher@cricvibe.example",
			Role:     "Bowler",
			Team:     "Auckland Aces",
		},
	}
}

func SeedPlayerStats(now time.Time) map[string][]player.MatchStats {
	now = now.UTC()
	return map[string][]player.MatchStats{
		"player-internal-001": {
			{MatchID: MatchIDPakNz, MatchName: "Pakistan vs New Zealand", MatchDate: now.Add(-24 * time.Hour), Runs: 72, BallsFaced: 48, Catches: 1},
			{MatchID: "match-archive-1", MatchName: "India vs England", MatchDate: now.Add(-10 * 24 * time.Hour), Runs: 34, BallsFaced: 29},
		},
		"player-internal-002": {
			{MatchID: MatchIDPakNz, MatchName: "Pakistan vs New Zealand", MatchDate: now.Add(-24 * time.Hour), Runs: 8, BallsFaced: 11, Wickets: 3, OversBowled: 4},
		},
	}
}

func SeedDrills(now time.Time) map[string][]player.Drill {
	now = now.UTC()
	return map[string][]player.Drill{
		"player-internal-001": {
			{ID: "drill-001", PlayerID: "player-internal-001", Title: "Short ball ladder", Description: "20 minutes of pull and hook shots against the bowling machine", Category: "batting", AssignedAt: now.Add(-48 * time.Hour)},
			{ID: "drill-002", PlayerID: "player-internal-001", Title: "Strike rotation", Description: "Singles drill with fielders on the ring", Category: "batting", AssignedAt: now.Add(-24 * time.Hour)},
		},
		"player-internal-002": {
			{ID: "drill-003", PlayerID: "player-internal-002", Title: "Yorker accuracy", Description: "30 deliveries at a shoe placed on the blockhole", Category: "bowling", AssignedAt: now.Add(-24 * time.Hour)},
		},
	}
}
