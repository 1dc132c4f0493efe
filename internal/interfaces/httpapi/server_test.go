package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/huddlebot/huddle/internal/domain/readiness"
	"github.com/huddlebot/huddle/internal/infrastructure/repository/memory"
	"github.com/huddlebot/huddle/internal/platform/id"
	"github.com/huddlebot/huddle/internal/usecase"
)

const testGatewayToken = "gateway-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	directory := memory.NewTeamDirectory(memory.SeedTeams())
	regRepo := memory.NewRegistrationRepository()
	eventLog := memory.NewEventRepository()
	ledger := memory.NewHistoryRepository()
	tracker := readiness.NewTracker()

	teamService := usecase.NewTeamService(directory)
	registrationService := usecase.NewRegistrationService(directory, regRepo, eventLog, nil, id.NewRandomGenerator(), nil)
	readinessService := usecase.NewReadinessService(tracker, regRepo, nil, nil, nil, 2, nil)
	historyService := usecase.NewHistoryService(ledger)
	standingsService := usecase.NewStandingsService(ledger)

	handler := NewHandler(teamService, registrationService, readinessService, historyService, standingsService, nil)
	router := NewRouter(handler, RouterConfig{GatewayToken: testGatewayToken}, nil)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url, body string, withToken bool) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set("X-Gateway-Token", testGatewayToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	return resp, raw
}

func decodeData(t *testing.T, raw []byte, dst any) {
	t.Helper()

	var envelope struct {
		APIVersion string          `json:"apiVersion"`
		Data       json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, raw)
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("apiVersion = %s", envelope.APIVersion)
	}
	if err := sonic.Unmarshal(envelope.Data, dst); err != nil {
		t.Fatalf("decode data: %v (data: %s)", err, envelope.Data)
	}
}

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/healthz", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
}

func TestServer_TeamRoutes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/v1/teams/Georgia", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var got teamDTO
	decodeData(t, body, &got)
	if got.Name != "Georgia" || got.Conference != "SEC" {
		t.Fatalf("unexpected team: %+v", got)
	}
	if !strings.Contains(got.LogoURL, "/500/61.png") {
		t.Fatalf("unexpected logo url: %s", got.LogoURL)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/teams/Hogwarts", "", false)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/teams/search?q=state", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var matches []teamDTO
	decodeData(t, body, &matches)
	if len(matches) == 0 {
		t.Fatal("expected search matches")
	}
}

func TestServer_RegistrationFlow(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	// Mutations without the gateway token are rejected.
	resp, _ := doJSON(t, http.MethodPost, server.URL+"/v1/registrations",
		`{"participantId":"user-1","displayName":"Coach","teamName":"Georgia"}`, false)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, server.URL+"/v1/registrations",
		`{"participantId":"user-1","displayName":"Coach","teamName":"Georgia"}`, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var result registerResultDTO
	decodeData(t, body, &result)
	if result.Team.Name != "Georgia" || result.IsCoachingChange {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Switching programs reports a coaching change.
	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/registrations",
		`{"participantId":"user-1","displayName":"Coach","teamName":"Alabama"}`, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	decodeData(t, body, &result)
	if !result.IsCoachingChange || result.PreviousTeam != "Georgia" {
		t.Fatalf("unexpected result: %+v", result)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/participants/user-1/registration", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var reg registrationDTO
	decodeData(t, body, &reg)
	if reg.TeamName != "Alabama" {
		t.Fatalf("unexpected registration: %+v", reg)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/coaching-changes", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var changes []coachingChangeDTO
	decodeData(t, body, &changes)
	if len(changes) != 1 || changes[0].PreviousTeam != "Georgia" || changes[0].NewTeam != "Alabama" {
		t.Fatalf("unexpected changes: %+v", changes)
	}

	// An unregistered team name is a 400, not a 404.
	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/registrations",
		`{"participantId":"user-2","displayName":"Coach","teamName":"Hogwarts"}`, true)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "unknownTeam") {
		t.Fatalf("expected unknownTeam reason, body = %s", body)
	}
}

func TestServer_ReadinessFlow(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/v1/participants/user-1/ready", "", true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var status readyStatusDTO
	decodeData(t, body, &status)
	if status.Count != 1 || status.AllReady {
		t.Fatalf("unexpected status: %+v", status)
	}

	// Duplicate ready is a conflict.
	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/participants/user-1/ready", "", true)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/participants/user-2/ready", "", true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	decodeData(t, body, &status)
	if !status.AllReady || status.Count != 2 {
		t.Fatalf("unexpected status: %+v", status)
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/advance", "", true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var advanced advanceResultDTO
	decodeData(t, body, &advanced)
	if advanced.Cleared != 2 {
		t.Fatalf("cleared = %d, want 2", advanced.Cleared)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/ready", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	decodeData(t, body, &status)
	if status.Count != 0 {
		t.Fatalf("expected a cleared tracker, got %+v", status)
	}
}

func TestServer_HistoryAndStandings(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	games := []string{
		`{"season":2025,"week":1,"team1":"Alabama","team2":"Georgia","score1":21,"score2":24}`,
		`{"season":2025,"week":2,"team1":"Alabama","team2":"Georgia","score1":17,"score2":17}`,
	}
	for _, game := range games {
		resp, body := doJSON(t, http.MethodPost, server.URL+"/v1/games", game, true)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
		}
	}

	resp, body := doJSON(t, http.MethodGet, server.URL+"/v1/standings?season=2025", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var rows []standingsRowDTO
	decodeData(t, body, &rows)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	// The week 2 tie goes to the second-listed team, so Georgia is 2-0.
	if rows[0].Team != "Georgia" || rows[0].Wins != 2 || rows[0].Losses != 0 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/head-to-head?team1=Georgia&team2=Alabama", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var h2h headToHeadDTO
	decodeData(t, body, &h2h)
	if h2h.WinsA != 2 || h2h.WinsB != 0 {
		t.Fatalf("unexpected head to head: %+v", h2h)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/teams/Georgia/games", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var teamGames []teamGameDTO
	decodeData(t, body, &teamGames)
	if len(teamGames) != 2 || teamGames[0].Result != "W" {
		t.Fatalf("unexpected team games: %+v", teamGames)
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/seasons",
		`{"season":2025,"champion":"Georgia","runnerUp":"Alabama","heismanWinner":"QB One","heismanTeam":"Georgia"}`, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/v1/seasons", "", false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
	var seasons []seasonDTO
	decodeData(t, body, &seasons)
	if len(seasons) != 1 || seasons[0].Champion != "Georgia" {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}

	// Unknown fields in a payload are rejected.
	resp, body = doJSON(t, http.MethodPost, server.URL+"/v1/games",
		`{"season":2025,"week":3,"team1":"A","team2":"B","score1":1,"score2":0,"extra":true}`, true)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("code = %d, body = %s", resp.StatusCode, body)
	}
}
