package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/huddlebot/huddle/internal/platform/logging"
	"github.com/huddlebot/huddle/internal/usecase"
)

const gatewayTokenHeader = "X-Gateway-Token"

// RequireGatewayToken guards mutating routes: only the chat gateway, which
// holds the shared token, may invoke them. An unconfigured token fails closed.
func RequireGatewayToken(expectedToken string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if expectedToken == "" {
			writeError(ctx, w, fmt.Errorf("%w: gateway token is not configured", usecase.ErrDependencyUnavailable))
			return
		}

		provided := r.Header.Get(gatewayTokenHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expectedToken)) != 1 {
			writeError(ctx, w, fmt.Errorf("%w: invalid gateway token", usecase.ErrUnauthorized))
			return
		}

		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogging emits one line per request with trace correlation fields.
func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// RequestTracing wraps the mux in otelhttp server spans. Health checks are
// filtered out so probes do not pollute traces.
func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "huddle-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz"
		}),
	)
}

// RecoverPanic converts handler panics into a 500 envelope instead of
// tearing down the connection.
func RecoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				ctx := r.Context()
				logger.ErrorContext(ctx, "handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", fmt.Sprintf("%v", recovered),
					"trace_id", trace.SpanContextFromContext(ctx).TraceID().String(),
				)
				writeInternalError(ctx, w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
