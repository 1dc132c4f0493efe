package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/huddlebot/huddle/internal/domain/registration"
	qb "github.com/huddlebot/huddle/internal/platform/querybuilder"
)

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Get(ctx context.Context, participantID string) (registration.Registration, bool, error) {
	query, args, err := qb.Select("participant_id", "team_name").
		From("registrations").
		Where(qb.Eq("participant_id", participantID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return registration.Registration{}, false, fmt.Errorf("build get registration query: %w", err)
	}

	var row registrationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return registration.Registration{}, false, nil
		}
		return registration.Registration{}, false, fmt.Errorf("get registration: %w", err)
	}

	return registrationFromRow(row), true, nil
}

func (r *RegistrationRepository) Set(ctx context.Context, item registration.Registration) error {
	query, args, err := qb.InsertModel("registrations", registrationTableModel{
		ParticipantID: item.ParticipantID,
		TeamName:      item.TeamName,
	}, "ON CONFLICT (participant_id) DO UPDATE SET team_name = excluded.team_name")
	if err != nil {
		return fmt.Errorf("build set registration query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]registration.Registration, error) {
	query, args, err := qb.Select("participant_id", "team_name").
		From("registrations").
		OrderBy("participant_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list registrations query: %w", err)
	}

	var rows []registrationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	out := make([]registration.Registration, 0, len(rows))
	for _, row := range rows {
		out = append(out, registrationFromRow(row))
	}

	return out, nil
}
