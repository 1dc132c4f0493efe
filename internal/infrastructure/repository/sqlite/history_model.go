package sqlite

import "github.com/huddlebot/huddle/internal/domain/history"

type gameTableModel struct {
	ID     int64  `db:"id"`
	Season int    `db:"season"`
	Week   int    `db:"week"`
	Team1  string `db:"team1"`
	Team2  string `db:"team2"`
	Score1 int    `db:"score1"`
	Score2 int    `db:"score2"`
}

type gameInsertModel struct {
	Season int    `db:"season"`
	Week   int    `db:"week"`
	Team1  string `db:"team1"`
	Team2  string `db:"team2"`
	Score1 int    `db:"score1"`
	Score2 int    `db:"score2"`
}

func gameFromRow(row gameTableModel) history.GameRecord {
	return history.GameRecord{
		Season: row.Season,
		Week:   row.Week,
		Team1:  row.Team1,
		Team2:  row.Team2,
		Score1: row.Score1,
		Score2: row.Score2,
	}
}

type seasonTableModel struct {
	ID            int64  `db:"id"`
	Season        int    `db:"season"`
	Champion      string `db:"champion"`
	RunnerUp      string `db:"runner_up"`
	HeismanWinner string `db:"heisman_winner"`
	HeismanTeam   string `db:"heisman_team"`
}

type seasonInsertModel struct {
	Season        int    `db:"season"`
	Champion      string `db:"champion"`
	RunnerUp      string `db:"runner_up"`
	HeismanWinner string `db:"heisman_winner"`
	HeismanTeam   string `db:"heisman_team"`
}

func seasonFromRow(row seasonTableModel) history.SeasonRecord {
	return history.SeasonRecord{
		Season:        row.Season,
		Champion:      row.Champion,
		RunnerUp:      row.RunnerUp,
		HeismanWinner: row.HeismanWinner,
		HeismanTeam:   row.HeismanTeam,
	}
}
