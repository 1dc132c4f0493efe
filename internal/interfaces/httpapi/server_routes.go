package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /healthz", h.healthz)
}

// Public routes are read-only views safe to expose without the gateway
// token.
func registerPublicRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /v1/teams", h.listTeams)
	mux.HandleFunc("GET /v1/teams/search", h.searchTeams)
	mux.HandleFunc("GET /v1/teams/{teamName}", h.getTeam)
	mux.HandleFunc("GET /v1/teams/{teamName}/games", h.getTeamGames)

	mux.HandleFunc("GET /v1/registrations", h.listRegistrations)
	mux.HandleFunc("GET /v1/participants/{participantID}/registration", h.getRegistration)
	mux.HandleFunc("GET /v1/coaching-changes", h.listCoachingChanges)

	mux.HandleFunc("GET /v1/ready", h.readyStatus)

	mux.HandleFunc("GET /v1/games", h.listGames)
	mux.HandleFunc("GET /v1/games/seasons", h.listGameSeasons)
	mux.HandleFunc("GET /v1/seasons", h.listSeasons)
	mux.HandleFunc("GET /v1/standings", h.standings)
	mux.HandleFunc("GET /v1/head-to-head", h.headToHead)
}

// Gateway routes mutate league state and require the shared gateway token.
func registerGatewayRoutes(mux *http.ServeMux, h *Handler, token string) {
	mux.HandleFunc("POST /v1/registrations", RequireGatewayToken(token, h.register))
	mux.HandleFunc("PUT /v1/participants/{participantID}/registration", RequireGatewayToken(token, h.claimTeam))

	mux.HandleFunc("POST /v1/participants/{participantID}/ready", RequireGatewayToken(token, h.markReady))
	mux.HandleFunc("DELETE /v1/participants/{participantID}/ready", RequireGatewayToken(token, h.markUnready))
	mux.HandleFunc("POST /v1/advance", RequireGatewayToken(token, h.advanceWeek))

	mux.HandleFunc("POST /v1/games", RequireGatewayToken(token, h.recordGame))
	mux.HandleFunc("POST /v1/seasons", RequireGatewayToken(token, h.recordSeason))
}
