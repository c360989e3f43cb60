package insightsai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/cricvibe/cricvibe-api/internal/domain/insights"
	"github.com/cricvibe/cricvibe-api/internal/platform/resilience"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string, breaker resilience.CircuitBreakerConfig, maxRetries int) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Timeout:        2 * time.Second,
		MaxRetries:     maxRetries,
		Logger:         quietLogger(),
		CircuitBreaker: breaker,
	})
}

func TestClientComparePlayersParsesResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got=%s", r.Method)
		}
		if r.URL.Path != pathComparePlayers {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var req pairWire
		if err := sonic.Unmarshal(body, &req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req.First != "Virat Kohli" || req.Second != "Steve Smith" {
			t.Errorf("unexpected request pair %q vs %q", req.First, req.Second)
		}

		resp := playerComparisonWire{
			Player1Name:  "Virat Kohli",
			Player2Name:  "Steve Smith",
			Player1:      playerCareerWire{Matches: 295, Runs: 13906, Average: 57.3},
			Player2:      playerCareerWire{Matches: 170, Runs: 5800, Average: 43.1},
			MatchesFaced: 24,
			Player1Best:  123,
		}
		w.Header().Set("Content-Type", "application/json")
		raw, _ := sonic.Marshal(resp)
		_, _ = w.Write(raw)
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{}, 0)

	comparison, err := client.ComparePlayers(context.Background(), "Virat Kohli", "Steve Smith")
	if err != nil {
		t.Fatalf("compare players: %v", err)
	}
	if comparison.Player1Name != "Virat Kohli" {
		t.Fatalf("expected player1 name mapped, got=%q", comparison.Player1Name)
	}
	if comparison.Player1.Runs != 13906 {
		t.Fatalf("expected player1 runs=13906, got=%d", comparison.Player1.Runs)
	}
	if comparison.MatchesFaced != 24 {
		t.Fatalf("expected matches_faced=24, got=%d", comparison.MatchesFaced)
	}
	if comparison.Player1Best != 123 {
		t.Fatalf("expected player1_best=123, got=%d", comparison.Player1Best)
	}
}

func TestClientDoesNotRetryPermanentStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unknown team"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{}, 3)

	_, err := client.OppositionDossier(context.Background(), "Atlantis")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if errors.Is(err, errInsightsTransient) {
		t.Fatalf("400 must not be transient: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one request, got=%d", got)
	}
}

func TestClientCircuitOpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}, 0)

	for i := 0; i < 2; i++ {
		if _, err := client.AnalyzePlayer(context.Background(), "Arjun Sharma"); err == nil {
			t.Fatalf("call %d: expected failure", i+1)
		}
	}

	before := calls.Load()
	_, err := client.AnalyzePlayer(context.Background(), "Arjun Sharma")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once circuit is open, got=%v", err)
	}
	if calls.Load() != before {
		t.Fatal("open circuit must not reach the upstream server")
	}
}

func TestClientSuggestPlayingXIMapsPicks(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := xiSuggestionWire{
			TeamName: "India",
			PlayingXI: []xiPickWire{
				{Name: "Rohit Sharma", Role: "Opener", Reason: "strong record at the venue"},
				{Name: "Jasprit Bumrah", Role: "Fast Bowler", Reason: "death overs specialist"},
			},
			Strategy: xiStrategyWire{
				BattingOrder: "aggressive top order",
				BowlingPlan:  "pace up front",
				Fielding:     "ring pressure",
			},
			KeyInsights: []string{"pitch favors pace"},
		}
		raw, _ := sonic.Marshal(resp)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	}))
	defer server.Close()

	client := newTestClient(server.URL, resilience.CircuitBreakerConfig{}, 0)

	suggestion, err := client.SuggestPlayingXI(context.Background(), insights.XIRequest{
		Team:       "India",
		Opposition: "Australia",
	})
	if err != nil {
		t.Fatalf("suggest playing xi: %v", err)
	}
	if suggestion.TeamName != "India" {
		t.Fatalf("expected team name India, got=%q", suggestion.TeamName)
	}
	if len(suggestion.PlayingXI) != 2 {
		t.Fatalf("expected 2 picks, got=%d", len(suggestion.PlayingXI))
	}
	if suggestion.PlayingXI[1].Role != "Fast Bowler" {
		t.Fatalf("unexpected second pick role %q", suggestion.PlayingXI[1].Role)
	}
	if suggestion.Strategy.BowlingPlan != "pace up front" {
		t.Fatalf("unexpected bowling plan %q", suggestion.Strategy.BowlingPlan)
	}
}
