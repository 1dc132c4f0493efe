package history

import "fmt"

// GameRecord is one played game, immutable once appended to the ledger.
// Team names are not cross-checked against the directory and team1/team2 may
// even match; the ledger stores what it is given.
type GameRecord struct {
	Season int
	Week   int
	Team1  string
	Team2  string
	Score1 int
	Score2 int
}

func (g GameRecord) Validate() error {
	if g.Season <= 0 {
		return fmt.Errorf("game season must be a positive year")
	}
	if g.Week <= 0 {
		return fmt.Errorf("game week must be positive")
	}
	if g.Team1 == "" {
		return fmt.Errorf("game team1 is required")
	}
	if g.Team2 == "" {
		return fmt.Errorf("game team2 is required")
	}
	if g.Score1 < 0 || g.Score2 < 0 {
		return fmt.Errorf("game scores cannot be negative")
	}

	return nil
}

// Team1Won reports whether the first-listed team took the game. A tie goes to
// the second-listed team; every win/loss fold in the system shares this rule
// and it must not be evened out.
func (g GameRecord) Team1Won() bool {
	return g.Score1 > g.Score2
}

// SeasonRecord is one completed season's awards row. Multiple rows for the
// same season are allowed.
type SeasonRecord struct {
	Season        int
	Champion      string
	RunnerUp      string
	HeismanWinner string
	HeismanTeam   string
}

func (s SeasonRecord) Validate() error {
	if s.Season <= 0 {
		return fmt.Errorf("season must be a positive year")
	}
	if s.Champion == "" {
		return fmt.Errorf("season champion is required")
	}

	return nil
}

// TeamGame is a GameRecord normalized to one team's perspective.
type TeamGame struct {
	Season   int
	Week     int
	Opponent string
	Score    string
	Result   string
}

const (
	ResultWin  = "W"
	ResultLoss = "L"
)

// HeadToHeadRecord summarizes every meeting between two teams. Wins follow
// the same ties-to-team2 rule as GameRecord.Team1Won, applied per game as
// listed in the ledger, not per the order the teams were asked about.
type HeadToHeadRecord struct {
	TeamA string
	TeamB string
	WinsA int
	WinsB int
	Games []GameRecord
}
