package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/huddlebot/huddle/internal/domain/history"
)

type HistoryRepository struct {
	mu      sync.RWMutex
	games   []history.GameRecord
	seasons []history.SeasonRecord
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) AppendGame(_ context.Context, game history.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.games = append(r.games, game)
	return nil
}

func (r *HistoryRepository) AppendSeason(_ context.Context, season history.SeasonRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seasons = append(r.seasons, season)
	return nil
}

// ListGames returns games in append order; season 0 disables the filter.
func (r *HistoryRepository) ListGames(_ context.Context, season int) ([]history.GameRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.GameRecord, 0, len(r.games))
	for _, game := range r.games {
		if season != 0 && game.Season != season {
			continue
		}
		out = append(out, game)
	}

	return out, nil
}

// ListSeasons returns award rows newest season first; rows within the same
// season keep append order.
func (r *HistoryRepository) ListSeasons(_ context.Context) ([]history.SeasonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.SeasonRecord, len(r.seasons))
	copy(out, r.seasons)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Season > out[j].Season })

	return out, nil
}
