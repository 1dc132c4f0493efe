package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/huddlebot/huddle/internal/domain/history"
)

type HistoryService struct {
	ledger history.Ledger
}

func NewHistoryService(ledger history.Ledger) *HistoryService {
	return &HistoryService{ledger: ledger}
}

// RecordGame appends a game to the ledger. Team names are taken as given:
// the ledger does not cross-check them against the directory, does not
// reject team1 == team2, and ties are legal rows.
func (s *HistoryService) RecordGame(ctx context.Context, game history.GameRecord) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.RecordGame")
	defer span.End()

	if err := game.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ledger.AppendGame(ctx, game); err != nil {
		return fmt.Errorf("append game: %w", err)
	}

	return nil
}

// RecordSeason appends a season awards row. Duplicate rows for the same
// season are allowed.
func (s *HistoryService) RecordSeason(ctx context.Context, season history.SeasonRecord) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.RecordSeason")
	defer span.End()

	if err := season.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ledger.AppendSeason(ctx, season); err != nil {
		return fmt.Errorf("append season: %w", err)
	}

	return nil
}

// ListGames returns games in append order; season 0 means every season.
func (s *HistoryService) ListGames(ctx context.Context, season int) ([]history.GameRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListGames")
	defer span.End()

	if season < 0 {
		return nil, fmt.Errorf("%w: season cannot be negative", ErrInvalidInput)
	}

	games, err := s.ledger.ListGames(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}

// ListSeasons returns championship/award history, newest season first.
func (s *HistoryService) ListSeasons(ctx context.Context) ([]history.SeasonRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListSeasons")
	defer span.End()

	seasons, err := s.ledger.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}

// TeamHistory returns every game a team played, normalized to that team's
// perspective. An unknown name simply yields no games.
func (s *HistoryService) TeamHistory(ctx context.Context, teamName string) ([]history.TeamGame, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.TeamHistory")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	games, err := s.ledger.ListGames(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return history.TeamGames(games, teamName), nil
}

// HeadToHead tallies every meeting between two teams.
func (s *HistoryService) HeadToHead(ctx context.Context, teamA, teamB string) (history.HeadToHeadRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.HeadToHead")
	defer span.End()

	teamA = strings.TrimSpace(teamA)
	teamB = strings.TrimSpace(teamB)
	if teamA == "" || teamB == "" {
		return history.HeadToHeadRecord{}, fmt.Errorf("%w: both team names are required", ErrInvalidInput)
	}

	games, err := s.ledger.ListGames(ctx, 0)
	if err != nil {
		return history.HeadToHeadRecord{}, fmt.Errorf("list games: %w", err)
	}

	return history.HeadToHead(games, teamA, teamB), nil
}

// SeasonYears lists the distinct seasons present in the game ledger,
// newest first.
func (s *HistoryService) SeasonYears(ctx context.Context) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.SeasonYears")
	defer span.End()

	games, err := s.ledger.ListGames(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return history.SeasonYears(games), nil
}
