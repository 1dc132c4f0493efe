package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huddlebot/huddle/internal/platform/logging"
	"github.com/huddlebot/huddle/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	StorageDriver string
	DataDir       string
	SQLitePath    string

	GatewayToken string

	RequiredReadyCount      int
	ReadyCheckpointEnabled  bool
	ReadyCheckpointFilename string

	RosterEnabled  bool
	RosterBaseURL  string
	RosterToken    string
	RosterTimeout  time.Duration
	RosterCacheTTL time.Duration
	RosterBreaker  resilience.BreakerConfig

	BroadcastEnabled     bool
	BroadcastWebhookURLs []string
	BroadcastWorkers     int
	BroadcastTimeout     time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	storageDriver, err := parseStorageDriver(getEnv("STORAGE_DRIVER", StorageDriverFile))
	if err != nil {
		return Config{}, err
	}

	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "./data"))
	sqlitePath := strings.TrimSpace(getEnv("SQLITE_PATH", ""))
	if storageDriver == StorageDriverSQLite && sqlitePath == "" {
		return Config{}, fmt.Errorf("SQLITE_PATH is required when STORAGE_DRIVER=sqlite")
	}

	requiredReadyCount, err := getEnvAsInt("REQUIRED_READY_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse REQUIRED_READY_COUNT: %w", err)
	}
	if requiredReadyCount < 1 {
		return Config{}, fmt.Errorf("REQUIRED_READY_COUNT must be >= 1")
	}

	checkpointEnabled, err := strconv.ParseBool(getEnv("READY_CHECKPOINT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse READY_CHECKPOINT_ENABLED: %w", err)
	}

	rosterEnabled, err := strconv.ParseBool(getEnv("ROSTER_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_ENABLED: %w", err)
	}
	rosterBaseURL := strings.TrimSpace(getEnv("ROSTER_BASE_URL", ""))
	if rosterEnabled && rosterBaseURL == "" {
		return Config{}, fmt.Errorf("ROSTER_BASE_URL is required when ROSTER_ENABLED=true")
	}
	rosterTimeout, err := time.ParseDuration(getEnv("ROSTER_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_TIMEOUT: %w", err)
	}
	rosterCacheTTL, err := time.ParseDuration(getEnv("ROSTER_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_CACHE_TTL: %w", err)
	}
	rosterCircuitEnabled, err := strconv.ParseBool(getEnv("ROSTER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_CIRCUIT_ENABLED: %w", err)
	}
	rosterCircuitFailureCount, err := getEnvAsInt("ROSTER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	rosterCircuitOpenTimeout, err := time.ParseDuration(getEnv("ROSTER_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	rosterCircuitHalfOpenMaxReq, err := getEnvAsInt("ROSTER_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	broadcastEnabled, err := strconv.ParseBool(getEnv("BROADCAST_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BROADCAST_ENABLED: %w", err)
	}
	broadcastWebhookURLs := splitAndTrim(getEnv("BROADCAST_WEBHOOK_URLS", ""))
	if broadcastEnabled && len(broadcastWebhookURLs) == 0 {
		return Config{}, fmt.Errorf("BROADCAST_WEBHOOK_URLS is required when BROADCAST_ENABLED=true")
	}
	broadcastWorkers, err := getEnvAsInt("BROADCAST_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse BROADCAST_WORKERS: %w", err)
	}
	broadcastTimeout, err := time.ParseDuration(getEnv("BROADCAST_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BROADCAST_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "huddle"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),

		StorageDriver: storageDriver,
		DataDir:       dataDir,
		SQLitePath:    sqlitePath,

		GatewayToken: strings.TrimSpace(getEnv("GATEWAY_TOKEN", "")),

		RequiredReadyCount:      requiredReadyCount,
		ReadyCheckpointEnabled:  checkpointEnabled,
		ReadyCheckpointFilename: getEnv("READY_CHECKPOINT_FILENAME", "ready_checkpoint.json"),

		RosterEnabled:  rosterEnabled,
		RosterBaseURL:  rosterBaseURL,
		RosterToken:    strings.TrimSpace(getEnv("ROSTER_TOKEN", "")),
		RosterTimeout:  rosterTimeout,
		RosterCacheTTL: rosterCacheTTL,
		RosterBreaker: resilience.BreakerConfig{
			Enabled:          rosterCircuitEnabled,
			FailureThreshold: rosterCircuitFailureCount,
			OpenFor:          rosterCircuitOpenTimeout,
			ProbeLimit:       rosterCircuitHalfOpenMaxReq,
		},

		BroadcastEnabled:     broadcastEnabled,
		BroadcastWebhookURLs: broadcastWebhookURLs,
		BroadcastWorkers:     broadcastWorkers,
		BroadcastTimeout:     broadcastTimeout,
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseStorageDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StorageDriverFile, StorageDriverSQLite:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", v, StorageDriverFile, StorageDriverSQLite)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}

	return out
}
