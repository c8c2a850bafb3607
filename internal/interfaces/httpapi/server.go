package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-center/internal/platform/id"
	"github.com/riskibarqy/football-center/internal/platform/logging"
)

// NewRouter wires routes and middleware. proxy is mounted under /api when
// non-nil.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	proxy http.Handler,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerBrowseRoutes(mux, handler)
	registerProxyRoutes(mux, proxy)

	return RequestTracing(
		RequestID(id.NewUUIDGenerator(), logger,
			RequestLogging(logger,
				CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "request_id", requestIDFromContext(ctx))
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
