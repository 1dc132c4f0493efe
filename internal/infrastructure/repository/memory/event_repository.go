package memory

import (
	"context"
	"sync"

	"github.com/huddlebot/huddle/internal/domain/registration"
)

// EventRepository keeps the coaching-change log in memory, append order.
type EventRepository struct {
	mu     sync.RWMutex
	events []registration.CoachingChange
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Append(_ context.Context, event registration.CoachingChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

func (r *EventRepository) List(_ context.Context) ([]registration.CoachingChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration.CoachingChange, len(r.events))
	copy(out, r.events)

	return out, nil
}
