package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/huddlebot/huddle/internal/domain/team"
)

// TeamDirectory serves the static team table. The table never changes at
// runtime, so reads need no locking.
type TeamDirectory struct {
	teams  []team.Team
	byName map[string]team.Team
}

func NewTeamDirectory(teams []team.Team) *TeamDirectory {
	byName := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		byName[item.Name] = item
	}

	return &TeamDirectory{teams: teams, byName: byName}
}

// Lookup resolves an exact team name. Matching is case-sensitive: "georgia"
// does not resolve, only "Georgia" does.
func (d *TeamDirectory) Lookup(_ context.Context, name string) (team.Team, bool, error) {
	item, ok := d.byName[name]
	return item, ok, nil
}

// FuzzyFind returns every team whose name contains the query,
// case-insensitively, in table order.
func (d *TeamDirectory) FuzzyFind(_ context.Context, query string) ([]team.Team, error) {
	needle := strings.ToLower(query)

	matches := make([]team.Team, 0)
	for _, item := range d.teams {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matches = append(matches, item)
		}
	}

	return matches, nil
}

// ListAll returns every team sorted by name.
func (d *TeamDirectory) ListAll(_ context.Context) ([]team.Team, error) {
	out := make([]team.Team, len(d.teams))
	copy(out, d.teams)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
