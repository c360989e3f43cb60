package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cricvibe/cricvibe-api/external/insightsai"
	"github.com/cricvibe/cricvibe-api/internal/config"
	"github.com/cricvibe/cricvibe-api/internal/domain/badge"
	"github.com/cricvibe/cricvibe-api/internal/domain/fan"
	"github.com/cricvibe/cricvibe-api/internal/domain/fantasy"
	"github.com/cricvibe/cricvibe-api/internal/domain/match"
	"github.com/cricvibe/cricvibe-api/internal/domain/player"
	"github.com/cricvibe/cricvibe-api/internal/domain/prediction"
	"github.com/cricvibe/cricvibe-api/internal/domain/task"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/account/cricauth"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/cache"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/memory"
	"github.com/cricvibe/cricvibe-api/internal/infrastructure/repository/postgres"
	"github.com/cricvibe/cricvibe-api/internal/interfaces/httpapi"
	"github.com/cricvibe/cricvibe-api/internal/interfaces/realtime"
	basecache "github.com/cricvibe/cricvibe-api/internal/platform/cache"
	idgen "github.com/cricvibe/cricvibe-api/internal/platform/id"
	"github.com/cricvibe/cricvibe-api/internal/platform/resilience"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

type repositories struct {
	fans        fan.Repository
	badges      badge.Repository
	matches     match.Repository
	predictions prediction.Repository
	tasks       task.Repository
	fantasy     fantasy.Repository
	players     player.Repository
}

// NewHTTPServer wires storage, services and the HTTP surface. The returned
// cleanup closes the database handle and must run after server shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cleanup := func() error { return nil }

	var repos repositories
	switch cfg.StoreDriver {
	case config.StoreMemory:
		repos = memoryRepositories()
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = db.Close
		repos = repositories{
			fans:        postgres.NewFanRepository(db),
			badges:      postgres.NewBadgeRepository(db),
			matches:     postgres.NewMatchRepository(db),
			predictions: postgres.NewPredictionRepository(db),
			tasks:       postgres.NewTaskRepository(db),
			fantasy:     postgres.NewFantasyRepository(db),
			players:     postgres.NewPlayerRepository(db),
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.badges = cache.NewBadgeRepository(repos.badges, store)
		repos.matches = cache.NewMatchRepository(repos.matches, store)
		repos.tasks = cache.NewTaskRepository(repos.tasks, store)
	}

	idGen := idgen.NewRandomGenerator()
	bounties := cfg.Bounties()

	ledgerSvc := usecase.NewLedgerService(repos.fans)
	badgeSvc := usecase.NewBadgeService(repos.badges, repos.fans, repos.predictions, logger)
	authSvc := usecase.NewAuthService(repos.fans, idGen, logger)
	predictionSvc := usecase.NewPredictionService(repos.predictions, repos.matches, ledgerSvc, badgeSvc, bounties, idGen, logger)
	taskSvc := usecase.NewTaskService(repos.tasks, ledgerSvc, badgeSvc, logger)
	fantasySvc := usecase.NewFantasyService(repos.fantasy, repos.matches, ledgerSvc, badgeSvc, fantasy.DefaultRules(), bounties, idGen, logger)
	matchSvc := usecase.NewMatchService(repos.matches)
	playerSvc := usecase.NewPlayerService(repos.players)
	settlementSvc := usecase.NewSettlementService(repos.predictions, repos.matches, repos.fans, badgeSvc, logger)

	var insightsProvider usecase.InsightsProvider
	if cfg.InsightsEnabled {
		insightsProvider = insightsai.NewClient(insightsai.ClientConfig{
			BaseURL:    cfg.InsightsBaseURL,
			APIKey:     cfg.InsightsAPIKey,
			Timeout:    cfg.InsightsTimeout,
			MaxRetries: cfg.InsightsMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.InsightsCircuitEnabled,
				FailureThreshold: cfg.InsightsCircuitFailureCount,
				OpenTimeout:      cfg.InsightsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.InsightsCircuitHalfOpenMaxReq,
			},
		})
	}
	insightsSvc := usecase.NewInsightsService(insightsProvider, logger)

	verifier := cricauth.NewClient(
		&http.Client{Timeout: cfg.CricAuthTimeout},
		cfg.CricAuthBaseURL,
		cfg.CricAuthIntrospectPath,
		cfg.CricAuthAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricAuthCircuitEnabled,
			FailureThreshold: cfg.CricAuthCircuitFailureCount,
			OpenTimeout:      cfg.CricAuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CricAuthCircuitHalfOpenMaxReq,
		},
		logger,
	)

	hub := realtime.NewHub(logger)

	handler := httpapi.NewHandler(
		authSvc,
		ledgerSvc,
		badgeSvc,
		predictionSvc,
		taskSvc,
		fantasySvc,
		matchSvc,
		playerSvc,
		insightsSvc,
		settlementSvc,
		hub,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func memoryRepositories() repositories {
	now := time.Now()
	return repositories{
		fans:        memory.NewFanRepository(nil),
		badges:      memory.NewBadgeRepository(memory.SeedBadges()),
		matches:     memory.NewMatchRepository(memory.SeedMatches(now)),
		predictions: memory.NewPredictionRepository(nil),
		tasks:       memory.NewTaskRepository(memory.SeedTasks(now)),
		fantasy:     memory.NewFantasyRepository(nil),
		players:     memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerStats(now), memory.SeedDrills(now)),
	}
}
