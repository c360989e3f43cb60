package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cricvibe/cricvibe-api/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	stats  map[string][]player.MatchStats
	drills map[string][]player.Drill
}

func NewPlayerRepository(players []player.Player, stats map[string][]player.MatchStats, drills map[string][]player.Drill) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	for _, p := range players {
		items[p.ID] = p
	}
	if stats == nil {
		stats = make(map[string][]player.MatchStats)
	}
	if drills == nil {
		drills = make(map[string][]player.Drill)
	}

	return &PlayerRepository{items: items, stats: stats, drills: drills}
}

func (r *PlayerRepository) GetByPublicID(_ context.Context, publicID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.PublicID == publicID {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) StatsSummary(_ context.Context, playerID string) (player.StatsSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := r.stats[playerID]
	summary := player.StatsSummary{MatchesPlayed: len(lines)}
	totalBalls := 0
	for _, line := range lines {
		summary.TotalRuns += line.Runs
		summary.TotalWickets += line.Wickets
		totalBalls += line.BallsFaced
	}
	if summary.MatchesPlayed > 0 {
		summary.BattingAverage = float64(summary.TotalRuns) / float64(summary.MatchesPlayed)
	}
	if totalBalls > 0 {
		summary.StrikeRate = float64(summary.TotalRuns) / float64(totalBalls) * 100
	}

	return summary, nil
}

func (r *PlayerRepository) RecentMatches(_ context.Context, playerID string, limit int) ([]player.MatchStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.MatchStats, len(r.stats[playerID]))
	copy(out, r.stats[playerID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].MatchDate.After(out[j].MatchDate)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *PlayerRepository) ListDrills(_ context.Context, playerID string, limit int) ([]player.Drill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Drill, len(r.drills[playerID]))
	copy(out, r.drills[playerID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].AssignedAt.After(out[j].AssignedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
