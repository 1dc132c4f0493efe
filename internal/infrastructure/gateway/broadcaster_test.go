package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestWebhookBroadcaster_DeliversToEveryWebhook(t *testing.T) {
	t.Parallel()

	var delivered atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "ready_count") {
			t.Errorf("unexpected payload: %s", body)
		}
		delivered.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	first := httptest.NewServer(handler)
	defer first.Close()
	second := httptest.NewServer(handler)
	defer second.Close()

	broadcaster, err := NewWebhookBroadcaster(WebhookBroadcasterConfig{
		WebhookURLs: []string{first.URL, second.URL},
		Workers:     2,
	}, nil)
	if err != nil {
		t.Fatalf("create broadcaster: %v", err)
	}
	defer broadcaster.Close()

	if err := broadcaster.BroadcastAllReady(t.Context(), 4); err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}
	if delivered.Load() != 2 {
		t.Fatalf("expected 2 deliveries, got %d", delivered.Load())
	}
}

func TestWebhookBroadcaster_OneFailureDoesNotStopTheRest(t *testing.T) {
	t.Parallel()

	var delivered atomic.Int64
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		delivered.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer healthy.Close()
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	broadcaster, err := NewWebhookBroadcaster(WebhookBroadcasterConfig{
		WebhookURLs: []string{broken.URL, healthy.URL},
		Workers:     2,
	}, nil)
	if err != nil {
		t.Fatalf("create broadcaster: %v", err)
	}
	defer broadcaster.Close()

	if err := broadcaster.BroadcastAllReady(t.Context(), 4); err == nil {
		t.Fatalf("expected an error from the broken webhook")
	}
	if delivered.Load() != 1 {
		t.Fatalf("expected the healthy webhook to be delivered, got %d", delivered.Load())
	}
}

func TestWebhookBroadcaster_NoWebhooksIsANoop(t *testing.T) {
	t.Parallel()

	broadcaster, err := NewWebhookBroadcaster(WebhookBroadcasterConfig{}, nil)
	if err != nil {
		t.Fatalf("create broadcaster: %v", err)
	}
	defer broadcaster.Close()

	if err := broadcaster.BroadcastAllReady(t.Context(), 4); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
