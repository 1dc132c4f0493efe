package usecase

import (
	"errors"
	"testing"

	"github.com/huddlebot/huddle/internal/infrastructure/repository/memory"
)

func TestTeamService_GetTeam(t *testing.T) {
	t.Parallel()

	service := NewTeamService(memory.NewTeamDirectory(memory.SeedTeams()))

	item, err := service.GetTeam(t.Context(), "Georgia")
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if item.Conference != "SEC" {
		t.Fatalf("unexpected conference: %s", item.Conference)
	}
	if item.LogoURL() != "https://a.espncdn.com/i/teamlogos/ncaa/500/61.png" {
		t.Fatalf("unexpected logo url: %s", item.LogoURL())
	}

	if _, err := service.GetTeam(t.Context(), "Hogwarts"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetTeam(t.Context(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_Search_KeepsTableOrder(t *testing.T) {
	t.Parallel()

	service := NewTeamService(memory.NewTeamDirectory(memory.SeedTeams()))

	matches, err := service.Search(t.Context(), "state")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) < 5 {
		t.Fatalf("expected several matches for 'state', got %d", len(matches))
	}
	// Mississippi State appears before Michigan State: the static table is
	// grouped by conference, SEC first.
	if matches[0].Name != "Mississippi State" {
		t.Fatalf("unexpected first match: %s", matches[0].Name)
	}

	if _, err := service.Search(t.Context(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty query, got %v", err)
	}
}

func TestTeamService_ListTeams_Sorted(t *testing.T) {
	t.Parallel()

	service := NewTeamService(memory.NewTeamDirectory(memory.SeedTeams()))

	items, err := service.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != len(memory.SeedTeams()) {
		t.Fatalf("expected the whole table, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Name >= items[i].Name {
			t.Fatalf("list not sorted at %d: %s >= %s", i, items[i-1].Name, items[i].Name)
		}
	}
}
