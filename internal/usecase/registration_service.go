package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huddlebot/huddle/internal/domain/registration"
	"github.com/huddlebot/huddle/internal/domain/team"
	idgen "github.com/huddlebot/huddle/internal/platform/id"
	"github.com/huddlebot/huddle/internal/platform/logging"
)

// RegisterResult reports what a Register call did. PreviousTeam is empty for
// a first-time registration.
type RegisterResult struct {
	Team             team.Team
	IsCoachingChange bool
	PreviousTeam     string
}

// RegisteredCoach is one row of the registration listing, with the display
// name already resolved (or fallen back to an id label).
type RegisteredCoach struct {
	ParticipantID string
	DisplayName   string
	TeamName      string
	Conference    string
	LogoURL       string
}

type RegistrationService struct {
	directory team.Directory
	regRepo   registration.Repository
	eventLog  registration.EventLog
	roster    RosterResolver
	ids       idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewRegistrationService(
	directory team.Directory,
	regRepo registration.Repository,
	eventLog registration.EventLog,
	roster RosterResolver,
	ids idgen.Generator,
	logger *logging.Logger,
) *RegistrationService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &RegistrationService{
		directory: directory,
		regRepo:   regRepo,
		eventLog:  eventLog,
		roster:    roster,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

// Register claims a team for a participant. The team name must resolve
// exactly in the directory before anything is written. Re-registering with a
// different team records a coaching-change event; re-registering with the
// same team is a no-op beyond the rewrite.
func (s *RegistrationService) Register(ctx context.Context, participantID, displayName, teamName string) (RegisterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Register")
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return RegisterResult{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return RegisterResult{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	claimed, exists, err := s.directory.Lookup(ctx, teamName)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("lookup team: %w", err)
	}
	if !exists {
		return RegisterResult{}, fmt.Errorf("%w: team=%s", ErrUnknownTeam, teamName)
	}

	previous, hadPrevious, err := s.regRepo.Get(ctx, participantID)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("get registration: %w", err)
	}

	if err := s.regRepo.Set(ctx, registration.Registration{
		ParticipantID: participantID,
		TeamName:      claimed.Name,
	}); err != nil {
		return RegisterResult{}, fmt.Errorf("set registration: %w", err)
	}

	result := RegisterResult{Team: claimed}
	if hadPrevious {
		result.PreviousTeam = previous.TeamName
		result.IsCoachingChange = previous.TeamName != claimed.Name
	}

	if result.IsCoachingChange {
		s.appendCoachingChange(ctx, participantID, displayName, previous.TeamName, claimed.Name)
	}

	return result, nil
}

// appendCoachingChange writes the event log entry. A failed append does not
// undo the registration; the mapping is the source of truth.
func (s *RegistrationService) appendCoachingChange(ctx context.Context, participantID, displayName, previousTeam, newTeam string) {
	eventID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate coaching change id failed", "error", err)
		eventID = ""
	}

	event := registration.CoachingChange{
		ID:            eventID,
		ParticipantID: participantID,
		DisplayName:   strings.TrimSpace(displayName),
		PreviousTeam:  previousTeam,
		NewTeam:       newTeam,
		ChangedAt:     s.now().UTC(),
	}
	if err := s.eventLog.Append(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "append coaching change failed",
			"participant_id", participantID,
			"previous_team", previousTeam,
			"new_team", newTeam,
			"error", err,
		)
		return
	}

	s.logger.InfoContext(ctx, "coaching change recorded",
		"participant_id", participantID,
		"previous_team", previousTeam,
		"new_team", newTeam,
	)
}

// Get returns a participant's current registration.
func (s *RegistrationService) Get(ctx context.Context, participantID string) (registration.Registration, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Get")
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return registration.Registration{}, false, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	item, exists, err := s.regRepo.Get(ctx, participantID)
	if err != nil {
		return registration.Registration{}, false, fmt.Errorf("get registration: %w", err)
	}

	return item, exists, nil
}

// List returns every registration enriched with team metadata and a
// resolved display name.
func (s *RegistrationService) List(ctx context.Context) ([]RegisteredCoach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.List")
	defer span.End()

	items, err := s.regRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	out := make([]RegisteredCoach, 0, len(items))
	for _, item := range items {
		coach := RegisteredCoach{
			ParticipantID: item.ParticipantID,
			DisplayName:   displayNameOrFallback(ctx, s.roster, item.ParticipantID),
			TeamName:      item.TeamName,
		}
		if claimed, exists, lookupErr := s.directory.Lookup(ctx, item.TeamName); lookupErr == nil && exists {
			coach.Conference = claimed.Conference
			coach.LogoURL = claimed.LogoURL()
		}
		out = append(out, coach)
	}

	return out, nil
}

// ListCoachingChanges returns the append-only coaching-change history.
func (s *RegistrationService) ListCoachingChanges(ctx context.Context) ([]registration.CoachingChange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.ListCoachingChanges")
	defer span.End()

	events, err := s.eventLog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coaching changes: %w", err)
	}

	return events, nil
}
