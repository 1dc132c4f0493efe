package httpapi

import "net/http"

func (h *Handler) markReady(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.markReady")
	defer span.End()

	participantID := r.PathValue("participantID")

	status, err := h.readinessService.MarkReady(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "mark ready failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toReadyStatusDTO(status))
}

func (h *Handler) markUnready(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.markUnready")
	defer span.End()

	participantID := r.PathValue("participantID")

	status, err := h.readinessService.MarkUnready(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "mark unready failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toReadyStatusDTO(status))
}

func (h *Handler) readyStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.readyStatus")
	defer span.End()

	status, err := h.readinessService.Status(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "ready status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toReadyStatusDTO(status))
}

type advanceResultDTO struct {
	Cleared int `json:"cleared"`
}

func (h *Handler) advanceWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.advanceWeek")
	defer span.End()

	cleared, err := h.readinessService.Advance(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "advance week failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, advanceResultDTO{Cleared: cleared})
}
