package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/huddlebot/huddle/internal/domain/history"
	qb "github.com/huddlebot/huddle/internal/platform/querybuilder"
)

// HistoryRepository stores the append-only game and season ledgers. The id
// column preserves append order across reads.
type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) AppendGame(ctx context.Context, game history.GameRecord) error {
	query, args, err := qb.InsertModel("game_history", gameInsertModel{
		Season: game.Season,
		Week:   game.Week,
		Team1:  game.Team1,
		Team2:  game.Team2,
		Score1: game.Score1,
		Score2: game.Score2,
	}, "")
	if err != nil {
		return fmt.Errorf("build append game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append game: %w", err)
	}

	return nil
}

func (r *HistoryRepository) AppendSeason(ctx context.Context, season history.SeasonRecord) error {
	query, args, err := qb.InsertModel("season_history", seasonInsertModel{
		Season:        season.Season,
		Champion:      season.Champion,
		RunnerUp:      season.RunnerUp,
		HeismanWinner: season.HeismanWinner,
		HeismanTeam:   season.HeismanTeam,
	}, "")
	if err != nil {
		return fmt.Errorf("build append season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append season: %w", err)
	}

	return nil
}

func (r *HistoryRepository) ListGames(ctx context.Context, season int) ([]history.GameRecord, error) {
	builder := qb.Select("id", "season", "week", "team1", "team2", "score1", "score2").
		From("game_history").
		OrderBy("id")
	if season != 0 {
		builder = builder.Where(qb.Eq("season", season))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	out := make([]history.GameRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}

	return out, nil
}

func (r *HistoryRepository) ListSeasons(ctx context.Context) ([]history.SeasonRecord, error) {
	query, args, err := qb.Select("id", "season", "champion", "runner_up", "heisman_winner", "heisman_team").
		From("season_history").
		OrderBy("season DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]history.SeasonRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}

	return out, nil
}
