package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/huddlebot/huddle/internal/config"
	"github.com/huddlebot/huddle/internal/domain/history"
	"github.com/huddlebot/huddle/internal/domain/readiness"
	"github.com/huddlebot/huddle/internal/domain/registration"
	"github.com/huddlebot/huddle/internal/infrastructure/gateway"
	"github.com/huddlebot/huddle/internal/infrastructure/repository/file"
	"github.com/huddlebot/huddle/internal/infrastructure/repository/memory"
	"github.com/huddlebot/huddle/internal/infrastructure/repository/sqlite"
	"github.com/huddlebot/huddle/internal/interfaces/httpapi"
	idgen "github.com/huddlebot/huddle/internal/platform/id"
	"github.com/huddlebot/huddle/internal/platform/logging"
	"github.com/huddlebot/huddle/internal/usecase"
)

// App owns the HTTP server and the resources that must be released on
// shutdown.
type App struct {
	Server *http.Server

	closers []func()
}

// Close releases pooled resources in reverse acquisition order. Safe to call
// after a failed start.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// New wires repositories, services, gateway clients, and the router into a
// ready-to-run HTTP server.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	a := &App{}

	var (
		regRepo  registration.Repository
		eventLog registration.EventLog
		ledger   history.Ledger
	)

	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		a.closers = append(a.closers, func() { _ = db.Close() })

		regRepo = sqlite.NewRegistrationRepository(db)
		eventLog = sqlite.NewEventRepository(db)
		ledger = sqlite.NewHistoryRepository(db)
	case config.StorageDriverFile:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			a.Close()
			return nil, fmt.Errorf("create data dir: %w", err)
		}

		regRepo = file.NewRegistrationRepository(cfg.DataDir)
		eventLog = file.NewEventRepository(cfg.DataDir)
		ledger = file.NewHistoryRepository(cfg.DataDir)
	default:
		a.Close()
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	var roster usecase.RosterResolver
	if cfg.RosterEnabled {
		roster = gateway.NewRosterClient(gateway.RosterClientConfig{
			BaseURL:  cfg.RosterBaseURL,
			Token:    cfg.RosterToken,
			Timeout:  cfg.RosterTimeout,
			CacheTTL: cfg.RosterCacheTTL,
			Breaker:  cfg.RosterBreaker,
		}, logger)
	}

	var broadcaster usecase.AllReadyBroadcaster
	if cfg.BroadcastEnabled {
		wb, err := gateway.NewWebhookBroadcaster(gateway.WebhookBroadcasterConfig{
			WebhookURLs: cfg.BroadcastWebhookURLs,
			Workers:     cfg.BroadcastWorkers,
			Timeout:     cfg.BroadcastTimeout,
		}, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("create broadcaster: %w", err)
		}
		a.closers = append(a.closers, wb.Close)
		broadcaster = wb
	}

	var checkpoint usecase.ReadinessCheckpoint
	if cfg.ReadyCheckpointEnabled {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			a.Close()
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		checkpoint = file.NewReadinessCheckpoint(filepath.Join(cfg.DataDir, cfg.ReadyCheckpointFilename))
	}

	directory := memory.NewTeamDirectory(memory.SeedTeams())
	tracker := readiness.NewTracker()

	teamSvc := usecase.NewTeamService(directory)
	registrationSvc := usecase.NewRegistrationService(directory, regRepo, eventLog, roster, idgen.NewRandomGenerator(), logger)
	readinessSvc := usecase.NewReadinessService(tracker, regRepo, roster, broadcaster, checkpoint, cfg.RequiredReadyCount, logger)
	historySvc := usecase.NewHistoryService(ledger)
	standingsSvc := usecase.NewStandingsService(ledger)

	if err := readinessSvc.RestoreFromCheckpoint(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("restore readiness checkpoint: %w", err)
	}

	handler := httpapi.NewHandler(teamSvc, registrationSvc, readinessSvc, historySvc, standingsSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{GatewayToken: cfg.GatewayToken}, logger)

	if cfg.HTTPAddr == "" {
		a.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}
