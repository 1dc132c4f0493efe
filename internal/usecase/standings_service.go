package usecase

import (
	"context"
	"fmt"

	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/domain/standings"
)

type StandingsService struct {
	ledger history.Ledger
}

func NewStandingsService(ledger history.Ledger) *StandingsService {
	return &StandingsService{ledger: ledger}
}

// Compute re-derives the standings table from the full ledger; season 0
// means all seasons. There is deliberately no cache or index in front of
// this: data volumes are a few dozen games per season.
func (s *StandingsService) Compute(ctx context.Context, season int) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Compute")
	defer span.End()

	if season < 0 {
		return nil, fmt.Errorf("%w: season cannot be negative", ErrInvalidInput)
	}

	games, err := s.ledger.ListGames(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return standings.Compute(games), nil
}
