package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/huddlebot/huddle/internal/domain/registration"
	qb "github.com/huddlebot/huddle/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Append(ctx context.Context, event registration.CoachingChange) error {
	query, args, err := qb.InsertModel("coaching_changes", coachingChangeInsertModel{
		ID:            event.ID,
		ParticipantID: event.ParticipantID,
		DisplayName:   event.DisplayName,
		PreviousTeam:  event.PreviousTeam,
		NewTeam:       event.NewTeam,
		ChangedAt:     event.ChangedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build append coaching change query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append coaching change: %w", err)
	}

	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]registration.CoachingChange, error) {
	query, args, err := qb.Select("rowid", "id", "participant_id", "display_name", "previous_team", "new_team", "changed_at").
		From("coaching_changes").
		OrderBy("rowid").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list coaching changes query: %w", err)
	}

	var rows []coachingChangeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list coaching changes: %w", err)
	}

	out := make([]registration.CoachingChange, 0, len(rows))
	for _, row := range rows {
		out = append(out, coachingChangeFromRow(row))
	}

	return out, nil
}
