package history

import "context"

// Ledger is the append-only game and season store. No update or delete
// exists; queries re-read the whole ledger every time.
type Ledger interface {
	AppendGame(ctx context.Context, game GameRecord) error
	AppendSeason(ctx context.Context, season SeasonRecord) error
	// ListGames returns games in append order. A season of 0 means no filter.
	ListGames(ctx context.Context, season int) ([]GameRecord, error)
	// ListSeasons returns season rows ordered by season descending; rows for
	// the same season keep append order.
	ListSeasons(ctx context.Context) ([]SeasonRecord, error)
}
