package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/domain/registration"
)

const testSchema = `
CREATE TABLE registrations (
    participant_id TEXT PRIMARY KEY,
    team_name TEXT NOT NULL
);
CREATE TABLE game_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    season INTEGER NOT NULL,
    week INTEGER NOT NULL,
    team1 TEXT NOT NULL,
    team2 TEXT NOT NULL,
    score1 INTEGER NOT NULL,
    score2 INTEGER NOT NULL
);
CREATE TABLE season_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    season INTEGER NOT NULL,
    champion TEXT NOT NULL,
    runner_up TEXT NOT NULL DEFAULT '',
    heisman_winner TEXT NOT NULL DEFAULT '',
    heisman_team TEXT NOT NULL DEFAULT ''
);
CREATE TABLE coaching_changes (
    id TEXT NOT NULL,
    participant_id TEXT NOT NULL,
    display_name TEXT NOT NULL DEFAULT '',
    previous_team TEXT NOT NULL,
    new_team TEXT NOT NULL,
    changed_at TIMESTAMP NOT NULL
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "league.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("apply test schema: %v", err)
	}

	return db
}

func TestRegistrationRepository_SetIsAnUpsert(t *testing.T) {
	t.Parallel()

	repo := NewRegistrationRepository(newTestDB(t))

	if err := repo.Set(t.Context(), registration.Registration{ParticipantID: "user-1", TeamName: "Georgia"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := repo.Set(t.Context(), registration.Registration{ParticipantID: "user-1", TeamName: "Alabama"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	item, exists, err := repo.Get(t.Context(), "user-1")
	if err != nil || !exists {
		t.Fatalf("get failed: exists=%v err=%v", exists, err)
	}
	if item.TeamName != "Alabama" {
		t.Fatalf("unexpected team after upsert: %s", item.TeamName)
	}

	_, exists, err = repo.Get(t.Context(), "user-2")
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if exists {
		t.Fatalf("expected user-2 to be missing")
	}

	all, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(all))
	}
}

func TestHistoryRepository_KeepsAppendOrder(t *testing.T) {
	t.Parallel()

	repo := NewHistoryRepository(newTestDB(t))

	games := []history.GameRecord{
		{Season: 2024, Week: 1, Team1: "Georgia", Team2: "Alabama", Score1: 30, Score2: 24},
		{Season: 2025, Week: 1, Team1: "Michigan", Team2: "Ohio State", Score1: 21, Score2: 28},
		{Season: 2024, Week: 2, Team1: "Alabama", Team2: "Georgia", Score1: 10, Score2: 10},
	}
	for _, game := range games {
		if err := repo.AppendGame(t.Context(), game); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	all, err := repo.ListGames(t.Context(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 games, got %d", len(all))
	}
	for i := range games {
		if all[i] != games[i] {
			t.Fatalf("game %d out of order: got %+v want %+v", i, all[i], games[i])
		}
	}

	season2024, err := repo.ListGames(t.Context(), 2024)
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(season2024) != 2 || season2024[1].Week != 2 {
		t.Fatalf("unexpected 2024 games: %+v", season2024)
	}
}

func TestHistoryRepository_SeasonsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewHistoryRepository(newTestDB(t))

	for _, season := range []history.SeasonRecord{
		{Season: 2023, Champion: "Michigan"},
		{Season: 2025, Champion: "Alabama"},
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
	if seasons[0].Season != 2025 || seasons[2].Season != 2023 {
		t.Fatalf("expected newest first, got %+v", seasons)
	}
	if seasons[1].HeismanWinner != "C. Ward" {
		t.Fatalf("award fields lost: %+v", seasons[1])
	}
}

func TestEventRepository_AppendAndList(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(newTestDB(t))

	changedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	event := registration.CoachingChange{
		ID:            "evt-1",
		ParticipantID: "user-1",
		DisplayName:   "Coach Prime",
		PreviousTeam:  "Georgia",
		NewTeam:       "Alabama",
		ChangedAt:     changedAt,
	}
	if err := repo.Append(t.Context(), event); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	events, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID != "evt-1" || events[0].NewTeam != "Alabama" {
		t.Fatalf("event mismatch: %+v", events[0])
	}
	if !events[0].ChangedAt.Equal(changedAt) {
		t.Fatalf("timestamp mismatch: %v", events[0].ChangedAt)
	}
}
