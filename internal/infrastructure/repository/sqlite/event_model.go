package sqlite

import (
	"time"

	"github.com/huddlebot/huddle/internal/domain/registration"
)

type coachingChangeTableModel struct {
	RowID         int64     `db:"rowid"`
	ID            string    `db:"id"`
	ParticipantID string    `db:"participant_id"`
	DisplayName   string    `db:"display_name"`
	PreviousTeam  string    `db:"previous_team"`
	NewTeam       string    `db:"new_team"`
	ChangedAt     time.Time `db:"changed_at"`
}

type coachingChangeInsertModel struct {
	ID            string    `db:"id"`
	ParticipantID string    `db:"participant_id"`
	DisplayName   string    `db:"display_name"`
	PreviousTeam  string    `db:"previous_team"`
	NewTeam       string    `db:"new_team"`
	ChangedAt     time.Time `db:"changed_at"`
}

func coachingChangeFromRow(row coachingChangeTableModel) registration.CoachingChange {
	return registration.CoachingChange{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		DisplayName:   row.DisplayName,
		PreviousTeam:  row.PreviousTeam,
		NewTeam:       row.NewTeam,
		ChangedAt:     row.ChangedAt,
	}
}
