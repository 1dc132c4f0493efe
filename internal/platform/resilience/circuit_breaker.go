package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitClosed   CircuitState = "closed"
	CircuitOpen     CircuitState = "open"
	CircuitHalfOpen CircuitState = "half_open"
)

// Breaker guards an outbound dependency. It trips open after a run of
// consecutive failures, waits out openFor, then probes with a limited number
// of half-open requests before closing again.
type Breaker struct {
	mu sync.Mutex

	failureThreshold int
	openFor          time.Duration
	probeLimit       int

	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	probeWins int
	now       func() time.Time
}

func NewBreaker(failureThreshold int, openFor time.Duration, probeLimit int) *Breaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	if openFor <= 0 {
		openFor = 15 * time.Second
	}
	if probeLimit < 1 {
		probeLimit = 1
	}

	return &Breaker{
		failureThreshold: failureThreshold,
		openFor:          openFor,
		probeLimit:       probeLimit,
		state:            CircuitClosed,
		now:              time.Now,
	}
}

// Allow reports whether a request may proceed right now.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitOpen {
		if b.now().Sub(b.openedAt) < b.openFor {
			return ErrCircuitOpen
		}
		b.state = CircuitHalfOpen
		b.probes = 0
		b.probeWins = 0
	}

	if b.state == CircuitHalfOpen {
		if b.probes >= b.probeLimit {
			return ErrCircuitOpen
		}
		b.probes++
	}

	return nil
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitClosed:
		b.failures = 0
	case CircuitHalfOpen:
		if b.probes > 0 {
			b.probes--
		}
		b.probeWins++
		if b.probeWins >= b.probeLimit && b.probes == 0 {
			b.state = CircuitClosed
			b.failures = 0
			b.openedAt = time.Time{}
		}
	}
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitClosed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.trip()
		}
	case CircuitHalfOpen:
		b.trip()
	case CircuitOpen:
		b.openedAt = b.now()
	}
}

func (b *Breaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitOpen && b.now().Sub(b.openedAt) >= b.openFor {
		return CircuitHalfOpen
	}

	return b.state
}

func (b *Breaker) trip() {
	b.state = CircuitOpen
	b.openedAt = b.now()
	b.probes = 0
	b.probeWins = 0
}
