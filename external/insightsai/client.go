// Package insightsai calls the upstream cricket analytics service. The
// service is optional: callers should treat any error as a cue to fall back
// to locally generated insights.
package insightsai

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/cricvibe/cricvibe-api/internal/domain/insights"
	"github.com/cricvibe/cricvibe-api/internal/platform/resilience"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

const (
	pathSuggestXI      = "/v1/insights/playing-xi"
	pathComparePlayers = "/v1/insights/compare-players"
	pathCompareTeams   = "/v1/insights/compare-teams"
	pathAnalyzePlayer  = "/v1/insights/player-analysis"
	pathDossier        = "/v1/insights/opposition-dossier"

	defaultTimeout     = 10 * time.Second
	maxResponseBytes   = 2 << 20
	bodyPreviewMaxSize = 256
)

var errInsightsTransient = crerr.New("insights provider transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *slog.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	apiKey         string
	timeout        time.Duration
	maxRetries     int
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.InsightsProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			MaxResponseBodySize: maxResponseBytes,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) SuggestPlayingXI(ctx context.Context, req insights.XIRequest) (insights.XISuggestion, error) {
	payload := xiRequestWire{
		Team:           req.Team,
		Opposition:     req.Opposition,
		PitchCondition: req.PitchCondition,
		Venue:          req.Venue,
		MatchType:      req.MatchType,
	}

	var resp xiSuggestionWire
	if err := c.doJSON(ctx, pathSuggestXI, payload, &resp); err != nil {
		return insights.XISuggestion{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) ComparePlayers(ctx context.Context, player1, player2 string) (insights.PlayerComparison, error) {
	payload := pairWire{First: player1, Second: player2}

	var resp playerComparisonWire
	if err := c.doJSON(ctx, pathComparePlayers, payload, &resp); err != nil {
		return insights.PlayerComparison{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) CompareTeams(ctx context.Context, team1, team2 string) (insights.TeamComparison, error) {
	payload := pairWire{First: team1, Second: team2}

	var resp teamComparisonWire
	if err := c.doJSON(ctx, pathCompareTeams, payload, &resp); err != nil {
		return insights.TeamComparison{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) AnalyzePlayer(ctx context.Context, playerName string) (insights.Analysis, error) {
	payload := subjectWire{Name: playerName}

	var resp analysisWire
	if err := c.doJSON(ctx, pathAnalyzePlayer, payload, &resp); err != nil {
		return insights.Analysis{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) OppositionDossier(ctx context.Context, teamName string) (insights.Dossier, error) {
	payload := subjectWire{Name: teamName}

	var resp dossierWire
	if err := c.doJSON(ctx, pathDossier, payload, &resp); err != nil {
		return insights.Dossier{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) doJSON(ctx context.Context, path string, payload any, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "insights circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: insights provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode provider request: %w", err)
	}

	key := path + "\n" + string(body)
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, path, body)
		if c.circuitEnabled {
			if reqErr != nil && isInsightsCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, path string, body []byte) ([]byte, error) {
	fullURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.roundTrip(fullURL, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !stderrors.Is(err, errInsightsTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "insights provider request failed", "path", path, "error", lastErr.Error())
	return nil, lastErr
}

func (c *Client) roundTrip(fullURL string, body []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("authorization", "Bearer "+c.apiKey)
	}
	req.SetBody(body)

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errInsightsTransient, err)
	}

	status := resp.StatusCode()
	raw := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return raw, nil
	}
	if isRetryableStatus(status) {
		return nil, fmt.Errorf("%w: provider status=%d body=%s", errInsightsTransient, status, abbreviateBody(raw))
	}
	return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
}

func isInsightsCircuitFailure(err error) bool {
	return stderrors.Is(err, errInsightsTransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > bodyPreviewMaxSize {
		return text[:bodyPreviewMaxSize] + "..."
	}
	return text
}
