package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/huddlebot/huddle/internal/domain/registration"
	"github.com/huddlebot/huddle/internal/usecase"
)

// RegistrationRepository stores the participant→team map as a single JSON
// object, rewritten whole on every change. The mutex covers the full
// load-mutate-write cycle so concurrent commands cannot interleave partial
// states.
type RegistrationRepository struct {
	mu   sync.Mutex
	path string
}

func NewRegistrationRepository(dataDir string) *RegistrationRepository {
	return &RegistrationRepository{path: filepath.Join(dataDir, "registrations.json")}
}

func (r *RegistrationRepository) Get(_ context.Context, participantID string) (registration.Registration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return registration.Registration{}, false, err
	}

	teamName, ok := items[participantID]
	if !ok {
		return registration.Registration{}, false, nil
	}

	return registration.Registration{ParticipantID: participantID, TeamName: teamName}, true, nil
}

func (r *RegistrationRepository) Set(_ context.Context, item registration.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	items[item.ParticipantID] = item.TeamName

	return r.store(items)
}

func (r *RegistrationRepository) ListAll(_ context.Context) ([]registration.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]registration.Registration, 0, len(items))
	for participantID, teamName := range items {
		out = append(out, registration.Registration{ParticipantID: participantID, TeamName: teamName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })

	return out, nil
}

func (r *RegistrationRepository) load() (map[string]string, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	items := make(map[string]string)
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	return items, nil
}

func (r *RegistrationRepository) store(items map[string]string) error {
	raw, err := sonic.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registrations: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	return nil
}
