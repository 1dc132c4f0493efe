package httpapi

import "net/http"

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTOs(items))
}

func (h *Handler) searchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.searchTeams")
	defer span.End()

	items, err := h.teamService.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WarnContext(ctx, "search teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTOs(items))
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.getTeam")
	defer span.End()

	item, err := h.teamService.GetTeam(ctx, r.PathValue("teamName"))
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team", r.PathValue("teamName"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTO(item))
}

func (h *Handler) getTeamGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.getTeamGames")
	defer span.End()

	games, err := h.historyService.TeamHistory(ctx, r.PathValue("teamName"))
	if err != nil {
		h.logger.WarnContext(ctx, "team history failed", "team", r.PathValue("teamName"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamGameDTOs(games))
}
