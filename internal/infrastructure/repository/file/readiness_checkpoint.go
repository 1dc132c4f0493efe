package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/huddlebot/huddle/internal/usecase"
)

// ReadinessCheckpoint persists the ready set as a JSON array of participant
// ids, so a restart does not lose a half-collected week.
type ReadinessCheckpoint struct {
	mu   sync.Mutex
	path string
}

func NewReadinessCheckpoint(path string) *ReadinessCheckpoint {
	return &ReadinessCheckpoint{path: path}
}

func (c *ReadinessCheckpoint) Save(_ context.Context, participantIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if participantIDs == nil {
		participantIDs = []string{}
	}
	raw, err := sonic.Marshal(participantIDs)
	if err != nil {
		return fmt.Errorf("encode readiness checkpoint: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", usecase.ErrStorageUnavailable, c.path, err)
	}

	return nil
}

func (c *ReadinessCheckpoint) Load(_ context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", usecase.ErrStorageUnavailable, c.path, err)
	}

	var ids []string
	if err := sonic.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", usecase.ErrStorageUnavailable, c.path, err)
	}

	return ids, nil
}
