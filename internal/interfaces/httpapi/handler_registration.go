package httpapi

import (
	"fmt"
	"net/http"

	"github.com/huddlebot/huddle/internal/usecase"
)

func errParticipantNotRegistered(participantID string) error {
	return fmt.Errorf("%w: participant %s has no registration", usecase.ErrNotFound, participantID)
}

type registerRequest struct {
	ParticipantID string `json:"participantId" validate:"required"`
	DisplayName   string `json:"displayName"`
	TeamName      string `json:"teamName" validate:"required"`
}

type claimTeamRequest struct {
	DisplayName string `json:"displayName"`
	TeamName    string `json:"teamName" validate:"required"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.register")
	defer span.End()

	var req registerRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.registrationService.Register(ctx, req.ParticipantID, req.DisplayName, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "participant_id", req.ParticipantID, "team", req.TeamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registerResultDTO{
		Team:             toTeamDTO(result.Team),
		IsCoachingChange: result.IsCoachingChange,
		PreviousTeam:     result.PreviousTeam,
	})
}

func (h *Handler) claimTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.claimTeam")
	defer span.End()

	participantID := r.PathValue("participantID")

	var req claimTeamRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.registrationService.Register(ctx, participantID, req.DisplayName, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "claim team failed", "participant_id", participantID, "team", req.TeamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registerResultDTO{
		Team:             toTeamDTO(result.Team),
		IsCoachingChange: result.IsCoachingChange,
		PreviousTeam:     result.PreviousTeam,
	})
}

func (h *Handler) getRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.getRegistration")
	defer span.End()

	participantID := r.PathValue("participantID")

	item, exists, err := h.registrationService.Get(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "get registration failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, errParticipantNotRegistered(participantID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, registrationDTO{
		ParticipantID: item.ParticipantID,
		TeamName:      item.TeamName,
	})
}

func (h *Handler) listRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listRegistrations")
	defer span.End()

	items, err := h.registrationService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list registrations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRegisteredCoachDTOs(items))
}

func (h *Handler) listCoachingChanges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listCoachingChanges")
	defer span.End()

	events, err := h.registrationService.ListCoachingChanges(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list coaching changes failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toCoachingChangeDTOs(events))
}
