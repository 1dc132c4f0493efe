package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/huddlebot/huddle/internal/domain/registration"
	"github.com/huddlebot/huddle/internal/usecase"
)

type coachingChangeRow struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	DisplayName   string    `json:"display_name"`
	PreviousTeam  string    `json:"previous_team"`
	NewTeam       string    `json:"new_team"`
	ChangedAt     time.Time `json:"changed_at"`
}

// EventRepository persists the coaching-change log as JSON lines, one event
// per line, append only.
type EventRepository struct {
	mu   sync.Mutex
	path string
}

func NewEventRepository(dataDir string) *EventRepository {
	return &EventRepository{path: filepath.Join(dataDir, "coaching_changes.jsonl")}
}

func (r *EventRepository) Append(_ context.Context, event registration.CoachingChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := sonic.Marshal(coachingChangeRow(event))
	if err != nil {
		return fmt.Errorf("encode coaching change: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	if _, err := f.Write(append(raw, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	return nil
}

func (r *EventRepository) List(_ context.Context) ([]registration.CoachingChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}
	defer f.Close()

	var out []registration.CoachingChange
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var row coachingChangeRow
		if err := sonic.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("%w: decode %s line %d: %v", usecase.ErrStorageUnavailable, r.path, line, err)
		}
		out = append(out, registration.CoachingChange(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", usecase.ErrStorageUnavailable, r.path, err)
	}

	return out, nil
}
