package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/huddlebot/huddle/internal/domain/registration"
)

type RegistrationRepository struct {
	mu    sync.RWMutex
	items map[string]registration.Registration
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{
		items: make(map[string]registration.Registration),
	}
}

func (r *RegistrationRepository) Get(_ context.Context, participantID string) (registration.Registration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[participantID]
	return item, ok, nil
}

func (r *RegistrationRepository) Set(_ context.Context, item registration.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ParticipantID] = item
	return nil
}

// ListAll returns registrations sorted by participant id so listings are
// stable across calls.
func (r *RegistrationRepository) ListAll(_ context.Context) ([]registration.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration.Registration, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })

	return out, nil
}
