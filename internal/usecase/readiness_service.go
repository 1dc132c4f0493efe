package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huddlebot/huddle/internal/domain/readiness"
	"github.com/huddlebot/huddle/internal/domain/registration"
	"github.com/huddlebot/huddle/internal/platform/logging"
)

// AllReadyBroadcaster announces that the league can advance. Implementations
// talk to the chat gateway; a broadcast failure never fails the command that
// triggered it.
type AllReadyBroadcaster interface {
	BroadcastAllReady(ctx context.Context, readyCount int) error
}

// ReadinessCheckpoint optionally persists tracker membership across
// restarts. The default deployment runs without one and resets on restart.
type ReadinessCheckpoint interface {
	Save(ctx context.Context, participantIDs []string) error
	Load(ctx context.Context) ([]string, error)
}

// ReadyMember is one participant in a readiness status view.
type ReadyMember struct {
	ParticipantID string
	DisplayName   string
	TeamName      string
}

// ReadyStatus is the full readiness picture: who is ready, who the league is
// still waiting on (registered but not ready), and the advance threshold.
type ReadyStatus struct {
	Count     int
	Required  int
	AllReady  bool
	Ready     []ReadyMember
	WaitingOn []ReadyMember
}

type ReadinessService struct {
	tracker       *readiness.Tracker
	regRepo       registration.Repository
	roster        RosterResolver
	broadcaster   AllReadyBroadcaster
	checkpoint    ReadinessCheckpoint
	requiredCount int
	logger        *logging.Logger
}

func NewReadinessService(
	tracker *readiness.Tracker,
	regRepo registration.Repository,
	roster RosterResolver,
	broadcaster AllReadyBroadcaster,
	checkpoint ReadinessCheckpoint,
	requiredCount int,
	logger *logging.Logger,
) *ReadinessService {
	if requiredCount < 1 {
		requiredCount = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &ReadinessService{
		tracker:       tracker,
		regRepo:       regRepo,
		roster:        roster,
		broadcaster:   broadcaster,
		checkpoint:    checkpoint,
		requiredCount: requiredCount,
		logger:        logger,
	}
}

// RestoreFromCheckpoint reloads tracker membership, if a checkpoint is
// configured. Called once at startup.
func (s *ReadinessService) RestoreFromCheckpoint(ctx context.Context) error {
	if s.checkpoint == nil {
		return nil
	}

	members, err := s.checkpoint.Load(ctx)
	if err != nil {
		return fmt.Errorf("load readiness checkpoint: %w", err)
	}
	s.tracker.Restore(members)
	s.logger.InfoContext(ctx, "readiness state restored", "count", len(members))

	return nil
}

// MarkReady flags a participant as ready. When the threshold is met the
// service, not the tracker, fires the all-ready broadcast.
func (s *ReadinessService) MarkReady(ctx context.Context, participantID string) (ReadyStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReadinessService.MarkReady")
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return ReadyStatus{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	if err := s.tracker.MarkReady(participantID); err != nil {
		if errors.Is(err, readiness.ErrAlreadyReady) {
			return ReadyStatus{}, fmt.Errorf("%w: participant=%s is already ready", ErrAlreadyInState, participantID)
		}
		return ReadyStatus{}, fmt.Errorf("mark ready: %w", err)
	}
	s.saveCheckpoint(ctx)

	status := s.statusCounts()
	if status.AllReady {
		s.broadcastAllReady(ctx, status.Count)
	}

	return status, nil
}

// MarkUnready removes a participant from the ready set.
func (s *ReadinessService) MarkUnready(ctx context.Context, participantID string) (ReadyStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReadinessService.MarkUnready")
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return ReadyStatus{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	if err := s.tracker.MarkUnready(participantID); err != nil {
		if errors.Is(err, readiness.ErrNotReady) {
			return ReadyStatus{}, fmt.Errorf("%w: participant=%s is not marked ready", ErrAlreadyInState, participantID)
		}
		return ReadyStatus{}, fmt.Errorf("mark unready: %w", err)
	}
	s.saveCheckpoint(ctx)

	return s.statusCounts(), nil
}

// Status reports who is ready and who the league is waiting on.
func (s *ReadinessService) Status(ctx context.Context) (ReadyStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReadinessService.Status")
	defer span.End()

	status := s.statusCounts()
	readyIDs := s.tracker.Members()
	readySet := make(map[string]struct{}, len(readyIDs))

	status.Ready = make([]ReadyMember, 0, len(readyIDs))
	for _, id := range readyIDs {
		readySet[id] = struct{}{}
		status.Ready = append(status.Ready, s.member(ctx, id))
	}

	registrations, err := s.regRepo.ListAll(ctx)
	if err != nil {
		return ReadyStatus{}, fmt.Errorf("list registrations: %w", err)
	}

	status.WaitingOn = make([]ReadyMember, 0)
	for _, reg := range registrations {
		if _, ok := readySet[reg.ParticipantID]; ok {
			continue
		}
		status.WaitingOn = append(status.WaitingOn, ReadyMember{
			ParticipantID: reg.ParticipantID,
			DisplayName:   displayNameOrFallback(ctx, s.roster, reg.ParticipantID),
			TeamName:      reg.TeamName,
		})
	}

	return status, nil
}

// Advance clears the ready set unconditionally and reports how many
// participants had been ready.
func (s *ReadinessService) Advance(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReadinessService.Advance")
	defer span.End()

	cleared := s.tracker.Advance()
	s.saveCheckpoint(ctx)
	s.logger.InfoContext(ctx, "week advanced", "cleared", cleared)

	return cleared, nil
}

func (s *ReadinessService) statusCounts() ReadyStatus {
	count := s.tracker.Count()
	return ReadyStatus{
		Count:    count,
		Required: s.requiredCount,
		AllReady: count >= s.requiredCount,
	}
}

func (s *ReadinessService) member(ctx context.Context, participantID string) ReadyMember {
	m := ReadyMember{
		ParticipantID: participantID,
		DisplayName:   displayNameOrFallback(ctx, s.roster, participantID),
	}
	if reg, exists, err := s.regRepo.Get(ctx, participantID); err == nil && exists {
		m.TeamName = reg.TeamName
	}

	return m
}

func (s *ReadinessService) broadcastAllReady(ctx context.Context, count int) {
	if s.broadcaster == nil {
		return
	}
	if err := s.broadcaster.BroadcastAllReady(ctx, count); err != nil {
		s.logger.ErrorContext(ctx, "all-ready broadcast failed", "count", count, "error", err)
		return
	}
	s.logger.InfoContext(ctx, "all-ready broadcast sent", "count", count)
}

func (s *ReadinessService) saveCheckpoint(ctx context.Context) {
	if s.checkpoint == nil {
		return
	}
	if err := s.checkpoint.Save(ctx, s.tracker.Members()); err != nil {
		s.logger.WarnContext(ctx, "save readiness checkpoint failed", "error", err)
	}
}
