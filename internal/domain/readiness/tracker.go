package readiness

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrAlreadyReady = errors.New("participant is already marked ready")
	ErrNotReady     = errors.New("participant is not marked ready")
)

// Tracker holds the set of participants ready to advance the week. The state
// is process-wide and owned by whoever constructs it; it is not persisted
// unless a caller checkpoints Members externally. Safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	members map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{members: make(map[string]struct{})}
}

// MarkReady transitions a participant to ready. A repeated call is rejected
// with ErrAlreadyReady so the caller can tell the participant instead of
// silently deduplicating.
func (t *Tracker) MarkReady(participantID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.members[participantID]; ok {
		return ErrAlreadyReady
	}
	t.members[participantID] = struct{}{}

	return nil
}

func (t *Tracker) MarkUnready(participantID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.members[participantID]; !ok {
		return ErrNotReady
	}
	delete(t.members, participantID)

	return nil
}

func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.members)
}

func (t *Tracker) Members() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.members))
	for id := range t.members {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Advance clears every member unconditionally and returns how many were
// ready before the clear.
func (t *Tracker) Advance() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cleared := len(t.members)
	t.members = make(map[string]struct{})

	return cleared
}

// Restore replaces the current membership, for checkpoint recovery.
func (t *Tracker) Restore(participantIDs []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.members = make(map[string]struct{}, len(participantIDs))
	for _, id := range participantIDs {
		if id == "" {
			continue
		}
		t.members[id] = struct{}{}
	}
}
