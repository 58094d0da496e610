package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// Middleware ensures every request has a session and stores it in the
// request context.
func (m *Manager[S]) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.Ensure(r.Context(), w, r)
		if err != nil {
			m.logger.ErrorContext(r.Context(), "session unavailable", logger.Component("session"), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// LoggerExtractor adds the session id to log records.
func LoggerExtractor[S any]() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		session, ok := FromContext[S](ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("session_id", session.ID.String()), true
	}
}
