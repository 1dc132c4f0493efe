package registration

import (
	"fmt"
	"time"
)

// Registration maps one participant to the team they currently coach.
type Registration struct {
	ParticipantID string
	TeamName      string
}

func (r Registration) Validate() error {
	if r.ParticipantID == "" {
		return fmt.Errorf("registration participant id is required")
	}
	if r.TeamName == "" {
		return fmt.Errorf("registration team name is required")
	}

	return nil
}

// CoachingChange records a participant switching programs. Events are
// append-only and independent of the game/season ledgers.
type CoachingChange struct {
	ID            string
	ParticipantID string
	DisplayName   string
	PreviousTeam  string
	NewTeam       string
	ChangedAt     time.Time
}

func (c CoachingChange) Validate() error {
	if c.ParticipantID == "" {
		return fmt.Errorf("coaching change participant id is required")
	}
	if c.PreviousTeam == "" {
		return fmt.Errorf("coaching change previous team is required")
	}
	if c.NewTeam == "" {
		return fmt.Errorf("coaching change new team is required")
	}
	if c.ChangedAt.IsZero() {
		return fmt.Errorf("coaching change timestamp is required")
	}

	return nil
}
