package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/huddlebot/huddle/internal/platform/logging"
)

type WebhookBroadcasterConfig struct {
	WebhookURLs []string
	Workers     int
	Timeout     time.Duration
}

// WebhookBroadcaster fans the all-ready announcement out to the configured
// chat webhooks. Deliveries run on a shared worker pool; one slow or broken
// webhook does not hold up the rest.
type WebhookBroadcaster struct {
	httpClient  *http.Client
	webhookURLs []string
	pool        *ants.Pool
	logger      *logging.Logger
}

func NewWebhookBroadcaster(cfg WebhookBroadcasterConfig, logger *logging.Logger) (*WebhookBroadcaster, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 4
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	urls := make([]string, 0, len(cfg.WebhookURLs))
	for _, raw := range cfg.WebhookURLs {
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			urls = append(urls, trimmed)
		}
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create broadcast worker pool: %w", err)
	}

	return &WebhookBroadcaster{
		httpClient:  &http.Client{Timeout: timeout},
		webhookURLs: urls,
		pool:        pool,
		logger:      logger,
	}, nil
}

// Close releases the worker pool.
func (b *WebhookBroadcaster) Close() {
	b.pool.Release()
}

type broadcastPayload struct {
	Content    string `json:"content"`
	ReadyCount int    `json:"ready_count"`
}

func (b *WebhookBroadcaster) BroadcastAllReady(ctx context.Context, readyCount int) error {
	if len(b.webhookURLs) == 0 {
		return nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body, err := sonic.Marshal(broadcastPayload{
		Content:    fmt.Sprintf("Everyone is ready (%d/%d checked in). Advance the week!", readyCount, readyCount),
		ReadyCount: readyCount,
	})
	if err != nil {
		return fmt.Errorf("encode broadcast payload: %w", err)
	}
	buf.Set(body)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		combined error
	)
	for _, webhookURL := range b.webhookURLs {
		webhookURL := webhookURL
		wg.Add(1)
		submitErr := b.pool.Submit(func() {
			defer wg.Done()
			if err := b.deliver(ctx, webhookURL, buf.Bytes()); err != nil {
				b.logger.ErrorContext(ctx, "webhook delivery failed", "webhook_url", webhookURL, "error", err)
				mu.Lock()
				combined = crerr.CombineErrors(combined, err)
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			combined = crerr.CombineErrors(combined, crerr.Wrap(submitErr, "submit broadcast task"))
			mu.Unlock()
		}
	}
	wg.Wait()

	if combined != nil {
		return crerr.Wrap(combined, "broadcast all-ready")
	}
	b.logger.InfoContext(ctx, "all-ready broadcast delivered", "webhooks", len(b.webhookURLs), "ready_count", readyCount)

	return nil
}

func (b *WebhookBroadcaster) deliver(ctx context.Context, webhookURL string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return crerr.Wrap(err, "post webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return crerr.Newf("webhook status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return nil
}
