package gateway

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/huddlebot/huddle/internal/platform/resilience"
	"github.com/huddlebot/huddle/internal/usecase"
)

func TestRosterClient_DisplayNameCachesResult(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/v1/members/user-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("unexpected authorization header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Coach Prime","username":"primetime"}`))
	}))
	defer server.Close()

	client := NewRosterClient(RosterClientConfig{
		BaseURL:  server.URL,
		Token:    "token-1",
		CacheTTL: time.Minute,
	}, nil)

	for i := 0; i < 3; i++ {
		name, err := client.DisplayName(t.Context(), "user-1")
		if err != nil {
			t.Fatalf("display name failed: %v", err)
		}
		if name != "Coach Prime" {
			t.Fatalf("unexpected name: %s", name)
		}
	}
	if hits.Load() != 1 {
		t.Fatalf("expected one upstream request, got %d", hits.Load())
	}
}

func TestRosterClient_FallsBackToUsername(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"display_name":"","username":"primetime"}`))
	}))
	defer server.Close()

	client := NewRosterClient(RosterClientConfig{BaseURL: server.URL}, nil)

	name, err := client.DisplayName(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("display name failed: %v", err)
	}
	if name != "primetime" {
		t.Fatalf("unexpected name: %s", name)
	}
}

func TestRosterClient_MissingMemberIsNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewRosterClient(RosterClientConfig{BaseURL: server.URL}, nil)

	_, err := client.DisplayName(t.Context(), "user-404")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRosterClient(RosterClientConfig{
		BaseURL: server.URL,
		Breaker: resilience.BreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenFor:          time.Minute,
			ProbeLimit:       1,
		},
	}, nil)

	for i := 0; i < 2; i++ {
		_, err := client.DisplayName(t.Context(), "user-1")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	}
	hitsBeforeOpen := hits.Load()

	// The circuit is now open; further calls are rejected locally.
	_, err := client.DisplayName(t.Context(), "user-1")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable while open, got %v", err)
	}
	if hits.Load() != hitsBeforeOpen {
		t.Fatalf("open circuit must not reach the gateway, hits went %d -> %d", hitsBeforeOpen, hits.Load())
	}
}
