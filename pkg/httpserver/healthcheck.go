package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// HealthCheckHandler answers "ALIVE" when no checks are given. Otherwise it
// runs every check with the request context and answers "READY", or 503
// "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...func(*http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, check := range checks {
			if err := check(r); err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err), logger.Component("healthcheck"))
				}
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
