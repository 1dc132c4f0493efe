package standings

import (
	"sort"

	"github.com/huddlebot/huddle/internal/domain/history"
)

// Row is one team's derived record. Rows are never stored; Compute rebuilds
// them from the full ledger on every query.
type Row struct {
	Team          string
	Wins          int
	Losses        int
	PointsFor     int
	PointsAgainst int
}

func (r Row) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

// Compute folds the games into per-team rows and ranks them. Teams appear in
// the order the fold first sees them, then a stable sort ranks by wins
// descending and point differential descending, so equal records keep ledger
// order and the output is reproducible for identical input.
//
// Wins and losses follow history.GameRecord.Team1Won: a tie is a win for the
// second-listed team.
func Compute(games []history.GameRecord) []Row {
	index := make(map[string]int)
	rows := make([]Row, 0)

	at := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(rows)
		rows = append(rows, Row{Team: name})
		return len(rows) - 1
	}

	for _, g := range games {
		i1 := at(g.Team1)
		i2 := at(g.Team2)

		rows[i1].PointsFor += g.Score1
		rows[i1].PointsAgainst += g.Score2
		rows[i2].PointsFor += g.Score2
		rows[i2].PointsAgainst += g.Score1

		if g.Team1Won() {
			rows[i1].Wins++
			rows[i2].Losses++
		} else {
			rows[i2].Wins++
			rows[i1].Losses++
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Wins != rows[b].Wins {
			return rows[a].Wins > rows[b].Wins
		}
		return rows[a].PointDiff() > rows[b].PointDiff()
	})

	return rows
}
