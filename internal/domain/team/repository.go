package team

import "context"

// Directory is the read-only lookup surface over the static team table.
type Directory interface {
	// Lookup is a case-sensitive exact match on the canonical name.
	Lookup(ctx context.Context, name string) (Team, bool, error)
	// FuzzyFind returns every team whose name contains the query,
	// case-insensitive, in table order. Table order drives suggestion
	// output and must stay stable across calls.
	FuzzyFind(ctx context.Context, query string) ([]Team, error)
	// ListAll returns every team sorted lexicographically by name.
	ListAll(ctx context.Context) ([]Team, error)
}
