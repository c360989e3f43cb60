package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/sign-in", handler.SignIn)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/leaderboard/fans/{fanID}/rank", handler.GetFanRank)
	mux.HandleFunc("GET /v1/badges", handler.ListBadges)
	mux.HandleFunc("GET /v1/fans/{fanID}/badges", handler.ListFanBadges)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/predictions", handler.ListMatchPredictions)
	mux.HandleFunc("GET /v1/tasks", handler.ListTasks)
	mux.HandleFunc("GET /v1/players/{playerID}/dashboard", handler.GetPlayerDashboard)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/insights/head-to-head/players/{player1}/{player2}", handler.ComparePlayers)
	mux.HandleFunc("GET /v1/insights/head-to-head/teams/{team1}/{team2}", handler.CompareTeams)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))
	mux.Handle("POST /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.CreatePrediction)))
	mux.Handle("GET /v1/me/predictions", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPredictions)))
	mux.Handle("POST /v1/tasks/{taskID}/submissions", RequireAuth(verifier, http.HandlerFunc(handler.SubmitTask)))
	mux.Handle("GET /v1/me/tasks", RequireAuth(verifier, http.HandlerFunc(handler.ListMyTaskCompletions)))
	mux.Handle("POST /v1/fantasy/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateFantasyTeam)))
	mux.Handle("GET /v1/me/fantasy/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListMyFantasyTeams)))
	mux.Handle("GET /v1/fantasy/matches/{matchID}/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GetFantasyMatchLeaderboard)))
	mux.Handle("POST /v1/insights/playing-xi", RequireAuth(verifier, http.HandlerFunc(handler.SuggestPlayingXI)))
	mux.Handle("GET /v1/insights/players/{playerName}/analysis", RequireAuth(verifier, http.HandlerFunc(handler.AnalyzePlayer)))
	mux.Handle("GET /v1/insights/opposition/{teamName}", RequireAuth(verifier, http.HandlerFunc(handler.GetOppositionDossier)))
	mux.Handle("GET /v1/players/{playerID}/drills", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayerDrills)))
	mux.Handle("GET /v1/chat/rooms/{room}/stream", RequireAuth(verifier, http.HandlerFunc(handler.StreamChatRoom)))
	mux.Handle("POST /v1/chat/rooms/{room}/messages", RequireAuth(verifier, http.HandlerFunc(handler.PostChatMessage)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/settle-match", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSettleMatchJob)))
	mux.Handle("POST /v1/internal/jobs/daily-engagement", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunDailyEngagementJob)))
}
