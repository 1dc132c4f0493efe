package sqlite

import "github.com/huddlebot/huddle/internal/domain/registration"

type registrationTableModel struct {
	ParticipantID string `db:"participant_id"`
	TeamName      string `db:"team_name"`
}

func registrationFromRow(row registrationTableModel) registration.Registration {
	return registration.Registration{
		ParticipantID: row.ParticipantID,
		TeamName:      row.TeamName,
	}
}
