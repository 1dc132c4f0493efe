package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/domain/registration"
	"github.com/huddlebot/huddle/internal/domain/standings"
	"github.com/huddlebot/huddle/internal/domain/team"
	"github.com/huddlebot/huddle/internal/platform/logging"
	"github.com/huddlebot/huddle/internal/usecase"
)

// Handler carries the wired services for every route. One instance serves the
// whole API.
type Handler struct {
	teamService         *usecase.TeamService
	registrationService *usecase.RegistrationService
	readinessService    *usecase.ReadinessService
	historyService      *usecase.HistoryService
	standingsService    *usecase.StandingsService

	logger   *logging.Logger
	validate *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	registrationService *usecase.RegistrationService,
	readinessService *usecase.ReadinessService,
	historyService *usecase.HistoryService,
	standingsService *usecase.StandingsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		teamService:         teamService,
		registrationService: registrationService,
		readinessService:    readinessService,
		historyService:      historyService,
		standingsService:    standingsService,
		logger:              logger,
		validate:            validator.New(),
	}
}

func (h *Handler) decodeRequest(body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(req any) error {
	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type teamDTO struct {
	Name       string `json:"name"`
	Conference string `json:"conference"`
	LogoURL    string `json:"logoUrl"`
}

func toTeamDTO(item team.Team) teamDTO {
	return teamDTO{
		Name:       item.Name,
		Conference: item.Conference,
		LogoURL:    item.LogoURL(),
	}
}

func toTeamDTOs(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toTeamDTO(item))
	}

	return out
}

type registrationDTO struct {
	ParticipantID string `json:"participantId"`
	TeamName      string `json:"teamName"`
}

type registeredCoachDTO struct {
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName"`
	TeamName      string `json:"teamName"`
	Conference    string `json:"conference,omitempty"`
	LogoURL       string `json:"logoUrl,omitempty"`
}

func toRegisteredCoachDTOs(items []usecase.RegisteredCoach) []registeredCoachDTO {
	out := make([]registeredCoachDTO, 0, len(items))
	for _, item := range items {
		out = append(out, registeredCoachDTO{
			ParticipantID: item.ParticipantID,
			DisplayName:   item.DisplayName,
			TeamName:      item.TeamName,
			Conference:    item.Conference,
			LogoURL:       item.LogoURL,
		})
	}

	return out
}

type registerResultDTO struct {
	Team             teamDTO `json:"team"`
	IsCoachingChange bool    `json:"isCoachingChange"`
	PreviousTeam     string  `json:"previousTeam,omitempty"`
}

type coachingChangeDTO struct {
	ID            string `json:"id,omitempty"`
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName,omitempty"`
	PreviousTeam  string `json:"previousTeam"`
	NewTeam       string `json:"newTeam"`
	ChangedAt     string `json:"changedAt"`
}

func toCoachingChangeDTOs(items []registration.CoachingChange) []coachingChangeDTO {
	out := make([]coachingChangeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, coachingChangeDTO{
			ID:            item.ID,
			ParticipantID: item.ParticipantID,
			DisplayName:   item.DisplayName,
			PreviousTeam:  item.PreviousTeam,
			NewTeam:       item.NewTeam,
			ChangedAt:     item.ChangedAt.UTC().Format(time.RFC3339),
		})
	}

	return out
}

type readyMemberDTO struct {
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName"`
	TeamName      string `json:"teamName,omitempty"`
}

type readyStatusDTO struct {
	Count     int              `json:"count"`
	Required  int              `json:"required"`
	AllReady  bool             `json:"allReady"`
	Ready     []readyMemberDTO `json:"ready,omitempty"`
	WaitingOn []readyMemberDTO `json:"waitingOn,omitempty"`
}

func toReadyStatusDTO(status usecase.ReadyStatus) readyStatusDTO {
	dto := readyStatusDTO{
		Count:    status.Count,
		Required: status.Required,
		AllReady: status.AllReady,
	}
	for _, m := range status.Ready {
		dto.Ready = append(dto.Ready, toReadyMemberDTO(m))
	}
	for _, m := range status.WaitingOn {
		dto.WaitingOn = append(dto.WaitingOn, toReadyMemberDTO(m))
	}

	return dto
}

func toReadyMemberDTO(m usecase.ReadyMember) readyMemberDTO {
	return readyMemberDTO{
		ParticipantID: m.ParticipantID,
		DisplayName:   m.DisplayName,
		TeamName:      m.TeamName,
	}
}

type gameDTO struct {
	Season int    `json:"season"`
	Week   int    `json:"week"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
}

func toGameDTO(g history.GameRecord) gameDTO {
	return gameDTO{
		Season: g.Season,
		Week:   g.Week,
		Team1:  g.Team1,
		Team2:  g.Team2,
		Score1: g.Score1,
		Score2: g.Score2,
	}
}

func toGameDTOs(games []history.GameRecord) []gameDTO {
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, toGameDTO(g))
	}

	return out
}

type seasonDTO struct {
	Season        int    `json:"season"`
	Champion      string `json:"champion"`
	RunnerUp      string `json:"runnerUp,omitempty"`
	HeismanWinner string `json:"heismanWinner,omitempty"`
	HeismanTeam   string `json:"heismanTeam,omitempty"`
}

func toSeasonDTOs(items []history.SeasonRecord) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonDTO{
			Season:        item.Season,
			Champion:      item.Champion,
			RunnerUp:      item.RunnerUp,
			HeismanWinner: item.HeismanWinner,
			HeismanTeam:   item.HeismanTeam,
		})
	}

	return out
}

type teamGameDTO struct {
	Season   int    `json:"season"`
	Week     int    `json:"week"`
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Result   string `json:"result"`
}

func toTeamGameDTOs(games []history.TeamGame) []teamGameDTO {
	out := make([]teamGameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, teamGameDTO{
			Season:   g.Season,
			Week:     g.Week,
			Opponent: g.Opponent,
			Score:    g.Score,
			Result:   g.Result,
		})
	}

	return out
}

type headToHeadDTO struct {
	TeamA string    `json:"teamA"`
	TeamB string    `json:"teamB"`
	WinsA int       `json:"winsA"`
	WinsB int       `json:"winsB"`
	Games []gameDTO `json:"games"`
}

type standingsRowDTO struct {
	Team          string `json:"team"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"pointsFor"`
	PointsAgainst int    `json:"pointsAgainst"`
	PointDiff     int    `json:"pointDiff"`
}

func toStandingsRowDTOs(rows []standings.Row) []standingsRowDTO {
	out := make([]standingsRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingsRowDTO{
			Team:          row.Team,
			Wins:          row.Wins,
			Losses:        row.Losses,
			PointsFor:     row.PointsFor,
			PointsAgainst: row.PointsAgainst,
			PointDiff:     row.PointDiff(),
		})
	}

	return out
}
