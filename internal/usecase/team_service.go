package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/huddlebot/huddle/internal/domain/team"
)

type TeamService struct {
	directory team.Directory
}

func NewTeamService(directory team.Directory) *TeamService {
	return &TeamService{directory: directory}
}

// GetTeam resolves an exact canonical name.
func (s *TeamService) GetTeam(ctx context.Context, name string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	item, exists, err := s.directory.Lookup(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("lookup team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, name)
	}

	return item, nil
}

// Search returns substring matches in the directory's table order.
func (s *TeamService) Search(ctx context.Context, query string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	items, err := s.directory.FuzzyFind(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fuzzy find teams: %w", err)
	}

	return items, nil
}

// ListTeams returns the whole table sorted by name.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.directory.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}
