package history

import (
	"fmt"
	"sort"
)

// TeamGames filters the ledger down to one team and normalizes each game to
// that team's perspective: opponent, "for-against" score string, and W/L with
// a win only on a strictly greater score. Append order is preserved.
func TeamGames(games []GameRecord, teamName string) []TeamGame {
	out := make([]TeamGame, 0)
	for _, g := range games {
		switch teamName {
		case g.Team1:
			out = append(out, perspective(g.Season, g.Week, g.Team2, g.Score1, g.Score2))
		case g.Team2:
			out = append(out, perspective(g.Season, g.Week, g.Team1, g.Score2, g.Score1))
		}
	}

	return out
}

func perspective(season, week int, opponent string, scoreFor, scoreAgainst int) TeamGame {
	result := ResultLoss
	if scoreFor > scoreAgainst {
		result = ResultWin
	}

	return TeamGame{
		Season:   season,
		Week:     week,
		Opponent: opponent,
		Score:    fmt.Sprintf("%d-%d", scoreFor, scoreAgainst),
		Result:   result,
	}
}

// HeadToHead tallies every meeting between teamA and teamB in append order.
func HeadToHead(games []GameRecord, teamA, teamB string) HeadToHeadRecord {
	record := HeadToHeadRecord{
		TeamA: teamA,
		TeamB: teamB,
		Games: make([]GameRecord, 0),
	}

	for _, g := range games {
		switch {
		case g.Team1 == teamA && g.Team2 == teamB:
			record.Games = append(record.Games, g)
			if g.Team1Won() {
				record.WinsA++
			} else {
				record.WinsB++
			}
		case g.Team1 == teamB && g.Team2 == teamA:
			record.Games = append(record.Games, g)
			if g.Team1Won() {
				record.WinsB++
			} else {
				record.WinsA++
			}
		}
	}

	return record
}

// SeasonYears lists the distinct seasons present in the game ledger, newest
// first.
func SeasonYears(games []GameRecord) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, g := range games {
		if _, ok := seen[g.Season]; ok {
			continue
		}
		seen[g.Season] = struct{}{}
		out = append(out, g.Season)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}
