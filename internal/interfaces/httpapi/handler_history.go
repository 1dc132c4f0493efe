package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/usecase"
)

type recordGameRequest struct {
	Season int    `json:"season" validate:"required,gt=0"`
	Week   int    `json:"week" validate:"required,gt=0"`
	Team1  string `json:"team1" validate:"required"`
	Team2  string `json:"team2" validate:"required"`
	Score1 int    `json:"score1" validate:"gte=0"`
	Score2 int    `json:"score2" validate:"gte=0"`
}

type recordSeasonRequest struct {
	Season        int    `json:"season" validate:"required,gt=0"`
	Champion      string `json:"champion" validate:"required"`
	RunnerUp      string `json:"runnerUp"`
	HeismanWinner string `json:"heismanWinner"`
	HeismanTeam   string `json:"heismanTeam"`
}

// seasonQueryParam parses an optional ?season= filter; absent means all
// seasons.
func seasonQueryParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return 0, nil
	}

	season, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: season must be a year: %v", usecase.ErrInvalidInput, err)
	}

	return season, nil
}

func (h *Handler) recordGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.recordGame")
	defer span.End()

	var req recordGameRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	game := history.GameRecord{
		Season: req.Season,
		Week:   req.Week,
		Team1:  req.Team1,
		Team2:  req.Team2,
		Score1: req.Score1,
		Score2: req.Score2,
	}
	if err := h.historyService.RecordGame(ctx, game); err != nil {
		h.logger.WarnContext(ctx, "record game failed", "season", req.Season, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toGameDTO(game))
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listGames")
	defer span.End()

	season, err := seasonQueryParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.historyService.ListGames(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameDTOs(games))
}

func (h *Handler) listGameSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listGameSeasons")
	defer span.End()

	years, err := h.historyService.SeasonYears(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list game seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, years)
}

func (h *Handler) recordSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.recordSeason")
	defer span.End()

	var req recordSeasonRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record := history.SeasonRecord{
		Season:        req.Season,
		Champion:      req.Champion,
		RunnerUp:      req.RunnerUp,
		HeismanWinner: req.HeismanWinner,
		HeismanTeam:   req.HeismanTeam,
	}
	if err := h.historyService.RecordSeason(ctx, record); err != nil {
		h.logger.WarnContext(ctx, "record season failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonDTO{
		Season:        record.Season,
		Champion:      record.Champion,
		RunnerUp:      record.RunnerUp,
		HeismanWinner: record.HeismanWinner,
		HeismanTeam:   record.HeismanTeam,
	})
}

func (h *Handler) listSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listSeasons")
	defer span.End()

	seasons, err := h.historyService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSeasonDTOs(seasons))
}

func (h *Handler) headToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.headToHead")
	defer span.End()

	query := r.URL.Query()
	record, err := h.historyService.HeadToHead(ctx, query.Get("team1"), query.Get("team2"))
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadDTO{
		TeamA: record.TeamA,
		TeamB: record.TeamB,
		WinsA: record.WinsA,
		WinsB: record.WinsB,
		Games: toGameDTOs(record.Games),
	})
}

func (h *Handler) standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.standings")
	defer span.End()

	season, err := seasonQueryParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.Compute(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsRowDTOs(rows))
}
