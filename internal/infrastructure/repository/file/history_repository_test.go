package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/usecase"
)

func TestHistoryRepository_GamesRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := NewHistoryRepository(dir)

	games := []history.GameRecord{
		{Season: 2024, Week: 1, Team1: "Georgia", Team2: "Alabama", Score1: 30, Score2: 24},
		{Season: 2024, Week: 2, Team1: "Alabama", Team2: "Georgia", Score1: 10, Score2: 10},
		{Season: 2025, Week: 1, Team1: "Michigan", Team2: "Ohio State", Score1: 21, Score2: 28},
	}
	for _, game := range games {
		if err := repo.AppendGame(t.Context(), game); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	reopened := NewHistoryRepository(dir)
	all, err := reopened.ListGames(t.Context(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 games, got %d", len(all))
	}
	for i := range games {
		if all[i] != games[i] {
			t.Fatalf("game %d mismatch: got %+v want %+v", i, all[i], games[i])
		}
	}

	filtered, err := reopened.ListGames(t.Context(), 2025)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Team1 != "Michigan" {
		t.Fatalf("unexpected filtered games: %+v", filtered)
	}
}

func TestHistoryRepository_TeamNamesWithCommasSurvive(t *testing.T) {
	t.Parallel()

	repo := NewHistoryRepository(t.TempDir())

	game := history.GameRecord{Season: 2024, Week: 1, Team1: "Texas A&M", Team2: "Miami, FL", Score1: 7, Score2: 3}
	if err := repo.AppendGame(t.Context(), game); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	all, err := repo.ListGames(t.Context(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 || all[0] != game {
		t.Fatalf("round trip mismatch: %+v", all)
	}
}

func TestHistoryRepository_SeasonsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewHistoryRepository(t.TempDir())

	for _, season := range []history.SeasonRecord{
		{Season: 2023, Champion: "Michigan"},
		{Season: 2025, Champion: "Alabama", RunnerUp: "Texas"},
		{Season: 2024, Champion: "Georgia", HeismanWinner: "C. Ward", HeismanTeam: "Miami"},
	} {
		if err := repo.AppendSeason(t.Context(), season); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	seasons, err := repo.ListSeasons(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}
	if seasons[0].Season != 2025 || seasons[1].Season != 2024 || seasons[2].Season != 2023 {
		t.Fatalf("expected newest first, got %+v", seasons)
	}
	if seasons[1].HeismanWinner != "C. Ward" {
		t.Fatalf("award fields lost: %+v", seasons[1])
	}
}

func TestHistoryRepository_MalformedRowFailsTheRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "season,week,team1,team2,score1,score2\n2024,1,Georgia,Alabama,30,twenty\n"
	if err := os.WriteFile(filepath.Join(dir, "game_history.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("seed corrupt file failed: %v", err)
	}
	repo := NewHistoryRepository(dir)

	_, err := repo.ListGames(t.Context(), 0)
	if !errors.Is(err, usecase.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestHistoryRepository_EmptyLedgerIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := NewHistoryRepository(t.TempDir())

	games, err := repo.ListGames(t.Context(), 0)
	if err != nil {
		t.Fatalf("list on missing file failed: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}

	seasons, err := repo.ListSeasons(t.Context())
	if err != nil {
		t.Fatalf("list seasons on missing file failed: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected no seasons, got %d", len(seasons))
	}
}
