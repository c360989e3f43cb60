package httpapi

import (
	"time"

	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/fantasy"
	"github.com/cricvibe/cricvibe-api/internal/domain/insights"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/player"
	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
	"github.com/cricvibe/cricvibe-api/internal/domain/task"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

// Request bodies.

type signInRequest struct {
	GoogleID  string `json:"google_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,max=120"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type createPredictionRequest struct {
	MatchID        string `json:"match_id" validate:"required"`
	PredictionType string `json:"prediction_type" validate:"required"`
	PredictedValue string `json:"predicted_value" validate:"required,max=200"`
}

type submitTaskRequest struct {
	Answer string `json:"answer" validate:"omitempty,max=500"`
}

type createFantasyTeamRequest struct {
	MatchID   string   `json:"match_id" validate:"required"`
	TeamName  string   `json:"team_name" validate:"required,max=100"`
	PlayerIDs []string `json:"player_ids" validate:"required,dive,required"`
}

type suggestXIRequest struct {
	Team           string `json:"team" validate:"required,max=80"`
	Opposition     string `json:"opposition" validate:"required,max=80"`
	PitchCondition string `json:"pitch_condition" validate:"omitempty,max=80"`
	Venue          string `json:"venue" validate:"omitempty,max=120"`
	MatchType      string `json:"match_type" validate:"omitempty,max=20"`
}

type chatMessageRequest struct {
	Message    string `json:"message" validate:"required,max=500"`
	SenderName string `json:"sender_name" validate:"omitempty,max=120"`
}

type settleMatchRequest struct {
	MatchID    string `json:"match_id" validate:"required"`
	Winner     string `json:"winner" validate:"omitempty,max=80"`
	TopScorer  string `json:"top_scorer" validate:"omitempty,max=120"`
	ManOfMatch string `json:"man_of_match" validate:"omitempty,max=120"`
}

type dailyEngagementRequest struct {
	EngagedFanIDs []string `json:"engaged_fan_ids" validate:"omitempty,dive,required"`
	IdleFanIDs    []string `json:"idle_fan_ids" validate:"omitempty,dive,required"`
}

// Response payloads.

type fanDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	Points        int64  `json:"points"`
	CurrentStreak int    `json:"current_streak"`
}

type rankedFanDTO struct {
	Rank          int    `json:"rank"`
	FanID         string `json:"fan_id"`
	Name          string `json:"name"`
	Points        int64  `json:"points"`
	CurrentStreak int    `json:"current_streak"`
}

type badgeDTO struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon,omitempty"`
	Criterion   badgeCriterionDTO `json:"criterion"`
}

type badgeCriterionDTO struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

type fanBadgeDTO struct {
	Badge    badgeDTO `json:"badge"`
	EarnedAt string   `json:"earned_at"`
}

type matchDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	Venue     string `json:"venue,omitempty"`
	MatchType string `json:"match_type,omitempty"`
	StartsAt  string `json:"starts_at"`
}

type matchListDTO struct {
	Upcoming []matchDTO `json:"upcoming"`
	Recent   []matchDTO `json:"recent"`
}

type predictionDTO struct {
	ID             string `json:"id"`
	MatchID        string `json:"match_id"`
	PredictionType string `json:"prediction_type"`
	PredictedValue string `json:"predicted_value"`
	IsCorrect      *bool  `json:"is_correct"`
	PointsEarned   int64  `json:"points_earned"`
	CreatedAt      string `json:"created_at"`
	SettledAt      string `json:"settled_at,omitempty"`
}

type predictionAccuracyDTO struct {
	Total       int             `json:"total"`
	Settled     int             `json:"settled"`
	Correct     int             `json:"correct"`
	Percent     float64         `json:"percent"`
	Predictions []predictionDTO `json:"predictions"`
}

type taskDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TaskType    string `json:"task_type"`
	Points      int64  `json:"points"`
	Active      bool   `json:"active"`
}

type taskSubmissionDTO struct {
	TaskID       string `json:"task_id"`
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned int64  `json:"points_earned"`
	CompletedAt  string `json:"completed_at"`
}

type taskCompletionDTO struct {
	TaskID       string `json:"task_id"`
	Answer       string `json:"answer,omitempty"`
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned int64  `json:"points_earned"`
	CompletedAt  string `json:"completed_at"`
}

type fantasyTeamDTO struct {
	ID          string   `json:"id"`
	MatchID     string   `json:"match_id"`
	TeamName    string   `json:"team_name"`
	PlayerIDs   []string `json:"player_ids"`
	TotalPoints int64    `json:"total_points"`
	CreatedAt   string   `json:"created_at"`
}

type playerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Team      string `json:"team,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type playerStatsSummaryDTO struct {
	MatchesPlayed  int     `json:"matches_played"`
	TotalRuns      int     `json:"total_runs"`
	TotalWickets   int     `json:"total_wickets"`
	BattingAverage float64 `json:"batting_average"`
	StrikeRate     float64 `json:"strike_rate"`
}

type playerMatchStatsDTO struct {
	MatchID     string  `json:"match_id"`
	MatchName   string  `json:"match_name"`
	MatchDate   string  `json:"match_date"`
	Runs        int     `json:"runs"`
	BallsFaced  int     `json:"balls_faced"`
	StrikeRate  float64 `json:"strike_rate"`
	Wickets     int     `json:"wickets"`
	OversBowled float64 `json:"overs_bowled"`
	Catches     int     `json:"catches"`
}

type playerDashboardDTO struct {
	Player  playerDTO             `json:"player"`
	Summary playerStatsSummaryDTO `json:"summary"`
	Recent  []playerMatchStatsDTO `json:"recent_matches"`
}

type drillDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	AssignedAt  string `json:"assigned_at"`
}

type settleMatchResultDTO struct {
	MatchID        string `json:"match_id"`
	Settled        int    `json:"settled"`
	Correct        int    `json:"correct"`
	FansReassessed int    `json:"fans_reassessed"`
}

type dailyEngagementResultDTO struct {
	Incremented int `json:"incremented"`
	Reset       int `json:"reset"`
	Missing     int `json:"missing"`
}

type chatMessageDTO struct {
	Event      string `json:"event"`
	Room       string `json:"room"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name,omitempty"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

type chatPostResultDTO struct {
	Room      string `json:"room"`
	Delivered int    `json:"delivered"`
}

// Insights payloads.

type xiPickDTO struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Reason string `json:"reason"`
}

type xiStrategyDTO struct {
	BattingOrder string `json:"batting_order"`
	BowlingPlan  string `json:"bowling_plan"`
	Fielding     string `json:"fielding"`
}

type xiSuggestionDTO struct {
	TeamName    string        `json:"team_name"`
	PlayingXI   []xiPickDTO   `json:"playing_xi"`
	Strategy    xiStrategyDTO `json:"strategy"`
	KeyInsights []string      `json:"key_insights"`
}

type playerCareerDTO struct {
	Matches    int     `json:"matches"`
	Runs       int     `json:"runs"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
	Fifties    int     `json:"fifties"`
	Hundreds   int     `json:"hundreds"`
	Wickets    int     `json:"wickets"`
}

type playerComparisonDTO struct {
	Player1Name  string          `json:"player1_name"`
	Player2Name  string          `json:"player2_name"`
	Player1      playerCareerDTO `json:"player1"`
	Player2      playerCareerDTO `json:"player2"`
	MatchesFaced int             `json:"matches_faced"`
	Player1Outs  int             `json:"player1_outs"`
	Player2Outs  int             `json:"player2_outs"`
	Player1Best  int             `json:"player1_best"`
	Player2Best  int             `json:"player2_best"`
}

type teamRecordDTO struct {
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
	AverageScore  int     `json:"average_score"`
	HighestScore  int     `json:"highest_score"`
}

type teamComparisonDTO struct {
	Team1Name    string        `json:"team1_name"`
	Team2Name    string        `json:"team2_name"`
	Team1        teamRecordDTO `json:"team1"`
	Team2        teamRecordDTO `json:"team2"`
	TotalMatches int           `json:"total_matches"`
	Team1Wins    int           `json:"team1_wins"`
	Team2Wins    int           `json:"team2_wins"`
	LastFive     []string      `json:"last_five"`
}

type playerAnalysisDTO struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

type keyPlayerDTO struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	ThreatLevel string `json:"threat_level"`
}

type oppositionDossierDTO struct {
	Team       string         `json:"team"`
	Strengths  []string       `json:"strengths"`
	Weaknesses []string       `json:"weaknesses"`
	KeyPlayers []keyPlayerDTO `json:"key_players"`
}

// Converters.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fanToDTO(v fan.Fan) fanDTO {
	return fanDTO{
		ID:            v.ID,
		Name:          v.Name,
		Email:         v.Email,
		AvatarURL:     v.AvatarURL,
		Points:        v.Points,
		CurrentStreak: v.CurrentStreak,
	}
}

func rankedFanToDTO(v usecase.RankedFan) rankedFanDTO {
	return rankedFanDTO{
		Rank:          v.Rank,
		FanID:         v.Fan.ID,
		Name:          v.Fan.Name,
		Points:        v.Fan.Points,
		CurrentStreak: v.Fan.CurrentStreak,
	}
}

func badgeToDTO(v badge.Badge) badgeDTO {
	return badgeDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Icon:        v.Icon,
		Criterion:   criterionToDTO(v.Criterion),
	}
}

func criterionToDTO(c badge.Criterion) badgeCriterionDTO {
	dto := badgeCriterionDTO{Type: string(c.Kind())}
	switch v := c.(type) {
	case badge.StreakAtLeast:
		dto.Value = int64(v.Days)
	case badge.PointsAtLeast:
		dto.Value = v.Points
	case badge.CorrectPredictionsAtLeast:
		dto.Value = int64(v.Count)
	}
	return dto
}

func fanBadgeToDTO(v usecase.FanBadge) fanBadgeDTO {
	return fanBadgeDTO{
		Badge:    badgeToDTO(v.Badge),
		EarnedAt: formatTime(v.EarnedAt),
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:        v.ID,
		Name:      v.Name(),
		Team1:     v.Team1,
		Team2:     v.Team2,
		Venue:     v.Venue,
		MatchType: v.MatchType,
		StartsAt:  formatTime(v.StartsAt),
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func predictionToDTO(v prediction.Prediction) predictionDTO {
	dto := predictionDTO{
		ID:             v.ID,
		MatchID:        v.MatchID,
		PredictionType: string(v.Type),
		PredictedValue: v.Value,
		IsCorrect:      v.IsCorrect,
		PointsEarned:   v.PointsEarned,
		CreatedAt:      formatTime(v.CreatedAt),
	}
	if v.SettledAt != nil {
		dto.SettledAt = formatTime(*v.SettledAt)
	}
	return dto
}

func predictionsToDTO(items []prediction.Prediction) []predictionDTO {
	out := make([]predictionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, predictionToDTO(item))
	}
	return out
}

func taskToDTO(v task.Task) taskDTO {
	return taskDTO{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		TaskType:    string(v.Type),
		Points:      v.Points,
		Active:      v.Active,
	}
}

func completionToDTO(v task.Completion) taskCompletionDTO {
	return taskCompletionDTO{
		TaskID:       v.TaskID,
		Answer:       v.Answer,
		IsCorrect:    v.IsCorrect,
		PointsEarned: v.PointsEarned,
		CompletedAt:  formatTime(v.CompletedAt),
	}
}

func fantasyTeamToDTO(v fantasy.Team) fantasyTeamDTO {
	return fantasyTeamDTO{
		ID:          v.ID,
		MatchID:     v.MatchID,
		TeamName:    v.Name,
		PlayerIDs:   v.PlayerIDs,
		TotalPoints: v.TotalPoints,
		CreatedAt:   formatTime(v.CreatedAt),
	}
}

func fantasyTeamsToDTO(items []fantasy.Team) []fantasyTeamDTO {
	out := make([]fantasyTeamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fantasyTeamToDTO(item))
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.PublicID,
		Name:      v.Name,
		Role:      v.Role,
		Team:      v.Team,
		AvatarURL: v.AvatarURL,
	}
}

func statsSummaryToDTO(v player.StatsSummary) playerStatsSummaryDTO {
	return playerStatsSummaryDTO{
		MatchesPlayed:  v.MatchesPlayed,
		TotalRuns:      v.TotalRuns,
		TotalWickets:   v.TotalWickets,
		BattingAverage: v.BattingAverage,
		StrikeRate:     v.StrikeRate,
	}
}

func matchStatsToDTO(v player.MatchStats) playerMatchStatsDTO {
	return playerMatchStatsDTO{
		MatchID:     v.MatchID,
		MatchName:   v.MatchName,
		MatchDate:   formatTime(v.MatchDate),
		Runs:        v.Runs,
		BallsFaced:  v.BallsFaced,
		StrikeRate:  v.StrikeRate(),
		Wickets:     v.Wickets,
		OversBowled: v.OversBowled,
		Catches:     v.Catches,
	}
}

func drillToDTO(v player.Drill) drillDTO {
	return drillDTO{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		AssignedAt:  formatTime(v.AssignedAt),
	}
}

func xiSuggestionToDTO(v insights.XISuggestion) xiSuggestionDTO {
	picks := make([]xiPickDTO, 0, len(v.PlayingXI))
	for _, pick := range v.PlayingXI {
		picks = append(picks, xiPickDTO{Name: pick.Name, Role: pick.Role, Reason: pick.Reason})
	}

	return xiSuggestionDTO{
		TeamName:  v.TeamName,
		PlayingXI: picks,
		Strategy: xiStrategyDTO{
			BattingOrder: v.Strategy.BattingOrder,
			BowlingPlan:  v.Strategy.BowlingPlan,
			Fielding:     v.Strategy.Fielding,
		},
		KeyInsights: v.KeyInsights,
	}
}

func playerCareerToDTO(v insights.PlayerCareer) playerCareerDTO {
	return playerCareerDTO{
		Matches:    v.Matches,
		Runs:       v.Runs,
		Average:    v.Average,
		StrikeRate: v.StrikeRate,
		Fifties:    v.Fifties,
		Hundreds:   v.Hundreds,
		Wickets:    v.Wickets,
	}
}

func playerComparisonToDTO(v insights.PlayerComparison) playerComparisonDTO {
	return playerComparisonDTO{
		Player1Name:  v.Player1Name,
		Player2Name:  v.Player2Name,
		Player1:      playerCareerToDTO(v.Player1),
		Player2:      playerCareerToDTO(v.Player2),
		MatchesFaced: v.MatchesFaced,
		Player1Outs:  v.Player1Outs,
		Player2Outs:  v.Player2Outs,
		Player1Best:  v.Player1Best,
		Player2Best:  v.Player2Best,
	}
}

func teamRecordToDTO(v insights.TeamRecord) teamRecordDTO {
	return teamRecordDTO{
		MatchesPlayed: v.MatchesPlayed,
		Wins:          v.Wins,
		Losses:        v.Losses,
		WinPercentage: v.WinPercentage,
		AverageScore:  v.AverageScore,
		HighestScore:  v.HighestScore,
	}
}

func teamComparisonToDTO(v insights.TeamComparison) teamComparisonDTO {
	return teamComparisonDTO{
		Team1Name:    v.Team1Name,
		Team2Name:    v.Team2Name,
		Team1:        teamRecordToDTO(v.Team1),
		Team2:        teamRecordToDTO(v.Team2),
		TotalMatches: v.TotalMatches,
		Team1Wins:    v.Team1Wins,
		Team2Wins:    v.Team2Wins,
		LastFive:     v.LastFive,
	}
}

func analysisToDTO(v insights.Analysis) playerAnalysisDTO {
	return playerAnalysisDTO{
		Strengths:       v.Strengths,
		Weaknesses:      v.Weaknesses,
		Recommendations: v.Recommendations,
	}
}

func dossierToDTO(v insights.Dossier) oppositionDossierDTO {
	players := make([]keyPlayerDTO, 0, len(v.KeyPlayers))
	for _, kp := range v.KeyPlayers {
		players = append(players, keyPlayerDTO{Name: kp.Name, Role: kp.Role, ThreatLevel: kp.ThreatLevel})
	}

	return oppositionDossierDTO{
		Team:       v.Team,
		Strengths:  v.Strengths,
		Weaknesses: v.Weaknesses,
		KeyPlayers: players,
	}
}
