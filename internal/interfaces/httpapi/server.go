package httpapi

import (
	"net/http"

	"github.com/huddlebot/huddle/internal/platform/logging"
)

// RouterConfig carries everything route registration needs beyond the
// handler itself.
type RouterConfig struct {
	GatewayToken string
}

// NewRouter assembles the mux and the middleware chain. Order matters:
// tracing wraps logging so the log line carries trace ids, and panic
// recovery sits innermost so a panic still produces a traced, logged 500.
func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	mux := http.NewServeMux()

	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerGatewayRoutes(mux, handler, cfg.GatewayToken)

	return RequestTracing(RequestLogging(logger, RecoverPanic(logger, mux)))
}
