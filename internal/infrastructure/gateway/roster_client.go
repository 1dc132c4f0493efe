package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/huddlebot/huddle/internal/platform/cache"
	"github.com/huddlebot/huddle/internal/platform/logging"
	"github.com/huddlebot/huddle/internal/platform/resilience"
	"github.com/huddlebot/huddle/internal/usecase"
)

type RosterClientConfig struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	CacheTTL time.Duration
	Breaker  resilience.BreakerConfig
}

// RosterClient resolves participant display names from the chat gateway.
// Responses are cached and the gateway is guarded by a circuit breaker:
// name resolution decorates output and must never take a command down with
// it.
type RosterClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      *cache.Store
	breaker    *resilience.Breaker
	logger     *logging.Logger
}

func NewRosterClient(cfg RosterClientConfig, logger *logging.Logger) *RosterClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	var breaker *resilience.Breaker
	if cfg.Breaker.Enabled {
		breakerCfg := resilience.NormalizeBreakerConfig(cfg.Breaker)
		breaker = resilience.NewBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenFor, breakerCfg.ProbeLimit)
	}

	return &RosterClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:      strings.TrimSpace(cfg.Token),
		cache:      cache.NewStore(cfg.CacheTTL),
		breaker:    breaker,
		logger:     logger,
	}
}

func (c *RosterClient) DisplayName(ctx context.Context, participantID string) (string, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return "", fmt.Errorf("%w: participant id is required", usecase.ErrInvalidInput)
	}

	value, err := c.cache.GetOrLoad(ctx, participantID, func(ctx context.Context) (any, error) {
		return c.fetchDisplayName(ctx, participantID)
	})
	if err != nil {
		return "", err
	}

	name, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected cached value type %T", value)
	}

	return name, nil
}

func (c *RosterClient) fetchDisplayName(ctx context.Context, participantID string) (string, error) {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return "", crerr.Mark(crerr.Wrap(err, "roster gateway"), usecase.ErrDependencyUnavailable)
		}
	}

	memberURL := c.baseURL + "/v1/members/" + url.PathEscape(participantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, memberURL, nil)
	if err != nil {
		return "", crerr.Wrap(err, "create roster request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		return "", crerr.Mark(crerr.Wrap(err, "request roster gateway"), usecase.ErrDependencyUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.recordFailure()
		return "", crerr.Mark(crerr.Wrap(err, "read roster response"), usecase.ErrDependencyUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// A missing member is an answer, not an outage.
		c.recordSuccess()
		return "", crerr.Mark(crerr.Newf("roster member %s not found", participantID), usecase.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		c.recordFailure()
		c.logger.WarnContext(ctx, "roster gateway non-200", "status_code", resp.StatusCode, "participant_id", participantID)
		return "", crerr.Mark(crerr.Newf("roster gateway status %d", resp.StatusCode), usecase.ErrDependencyUnavailable)
	}

	var decoded memberResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		c.recordFailure()
		return "", crerr.Mark(crerr.Wrap(err, "decode roster response"), usecase.ErrDependencyUnavailable)
	}
	c.recordSuccess()

	name := strings.TrimSpace(decoded.DisplayName)
	if name == "" {
		name = strings.TrimSpace(decoded.Username)
	}
	if name == "" {
		return "", crerr.Newf("roster member %s has no usable name", participantID)
	}

	return name, nil
}

func (c *RosterClient) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *RosterClient) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

type memberResponse struct {
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
}
