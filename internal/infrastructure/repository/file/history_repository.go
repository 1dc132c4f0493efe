package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/usecase"
)

var (
	gameHeader   = []string{"season", "week", "team1", "team2", "score1", "score2"}
	seasonHeader = []string{"season", "champion", "runner_up", "heisman_winner", "heisman_team"}
)

// HistoryRepository persists game and season history as append-only CSV
// files. Appends open, write a row, and close; reads parse the whole file.
// A malformed row fails the read rather than being skipped: the ledger is the
// league's record and silent data loss is worse than an error.
type HistoryRepository struct {
	mu         sync.Mutex
	gamePath   string
	seasonPath string
}

func NewHistoryRepository(dataDir string) *HistoryRepository {
	return &HistoryRepository{
		gamePath:   filepath.Join(dataDir, "game_history.csv"),
		seasonPath: filepath.Join(dataDir, "season_history.csv"),
	}
}

func (r *HistoryRepository) AppendGame(_ context.Context, game history.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := []string{
		strconv.Itoa(game.Season),
		strconv.Itoa(game.Week),
		game.Team1,
		game.Team2,
		strconv.Itoa(game.Score1),
		strconv.Itoa(game.Score2),
	}

	return appendCSVRow(r.gamePath, gameHeader, row)
}

func (r *HistoryRepository) AppendSeason(_ context.Context, season history.SeasonRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := []string{
		strconv.Itoa(season.Season),
		season.Champion,
		season.RunnerUp,
		season.HeismanWinner,
		season.HeismanTeam,
	}

	return appendCSVRow(r.seasonPath, seasonHeader, row)
}

func (r *HistoryRepository) ListGames(_ context.Context, season int) ([]history.GameRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCSVRows(r.gamePath, len(gameHeader))
	if err != nil {
		return nil, err
	}

	out := make([]history.GameRecord, 0, len(rows))
	for i, row := range rows {
		game, err := parseGameRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", usecase.ErrStorageUnavailable, r.gamePath, i+2, err)
		}
		if season != 0 && game.Season != season {
			continue
		}
		out = append(out, game)
	}

	return out, nil
}

func (r *HistoryRepository) ListSeasons(_ context.Context) ([]history.SeasonRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCSVRows(r.seasonPath, len(seasonHeader))
	if err != nil {
		return nil, err
	}

	out := make([]history.SeasonRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: season: %v", usecase.ErrStorageUnavailable, r.seasonPath, i+2, err)
		}
		out = append(out, history.SeasonRecord{
			Season:        year,
			Champion:      row[1],
			RunnerUp:      row[2],
			HeismanWinner: row[3],
			HeismanTeam:   row[4],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Season > out[j].Season })

	return out, nil
}

func parseGameRow(row []string) (history.GameRecord, error) {
	var game history.GameRecord
	var err error

	if game.Season, err = strconv.Atoi(row[0]); err != nil {
		return history.GameRecord{}, fmt.Errorf("season: %w", err)
	}
	if game.Week, err = strconv.Atoi(row[1]); err != nil {
		return history.GameRecord{}, fmt.Errorf("week: %w", err)
	}
	game.Team1 = row[2]
	game.Team2 = row[3]
	if game.Score1, err = strconv.Atoi(row[4]); err != nil {
		return history.GameRecord{}, fmt.Errorf("score1: %w", err)
	}
	if game.Score2, err = strconv.Atoi(row[5]); err != nil {
		return history.GameRecord{}, fmt.Errorf("score2: %w", err)
	}

	return game, nil
}

// appendCSVRow opens the file for append, writing the header first when the
// file is being created.
func appendCSVRow(path string, header, row []string) error {
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", usecase.ErrStorageUnavailable, path, err)
	}

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("%w: write header %s: %v", usecase.ErrStorageUnavailable, path, err)
		}
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("%w: write row %s: %v", usecase.ErrStorageUnavailable, path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("%w: flush %s: %v", usecase.ErrStorageUnavailable, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", usecase.ErrStorageUnavailable, path, err)
	}

	return nil
}

func readCSVRows(path string, wantFields int) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", usecase.ErrStorageUnavailable, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = wantFields

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", usecase.ErrStorageUnavailable, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Drop the header.
	return rows[1:], nil
}
