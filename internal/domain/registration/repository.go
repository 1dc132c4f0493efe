package registration

import "context"

// Repository persists the participant -> team mapping. One active
// registration per participant; Set overwrites.
type Repository interface {
	Get(ctx context.Context, participantID string) (Registration, bool, error)
	Set(ctx context.Context, item Registration) error
	ListAll(ctx context.Context) ([]Registration, error)
}

// EventLog is the append-only coaching-change history.
type EventLog interface {
	Append(ctx context.Context, event CoachingChange) error
	List(ctx context.Context) ([]CoachingChange, error)
}
