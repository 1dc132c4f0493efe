package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	t.Parallel()

	clock := time.Now()
	b := NewBreaker(2, 10*time.Second, 1)
	b.now = func() time.Time { return clock }

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker should allow: %v", err)
	}

	b.RecordFailure()
	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	clock = clock.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe should be allowed: %v", err)
	}
	if got := b.State(); got != CircuitHalfOpen {
		t.Fatalf("expected half-open state, got %s", got)
	}

	b.RecordSuccess()
	if got := b.State(); got != CircuitClosed {
		t.Fatalf("expected closed after successful probe, got %s", got)
	}
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	clock := time.Now()
	b := NewBreaker(1, 5*time.Second, 1)
	b.now = func() time.Time { return clock }

	b.RecordFailure()
	clock = clock.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe should be allowed: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}

func TestBreaker_ProbeLimitBoundsHalfOpenTraffic(t *testing.T) {
	t.Parallel()

	clock := time.Now()
	b := NewBreaker(1, 5*time.Second, 2)
	b.now = func() time.Time { return clock }

	b.RecordFailure()
	clock = clock.Add(6 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("first probe should pass: %v", err)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("second probe should pass: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("third probe should be rejected, got %v", err)
	}
}
