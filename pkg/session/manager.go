package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// Manager creates and resolves visitor sessions.
type Manager[S any] struct {
	newState  func() S
	store     Store[S]
	transport Transport
	config    Config
	now       func() time.Time
	logger    *slog.Logger
	closer    io.Closer
}

// New creates a manager backed by a MemoryStore it owns. newState builds
// the initial state of a fresh session.
func New[S any](newState func() S, opts ...Option[S]) *Manager[S] {
	if newState == nil {
		panic("session: newState is required")
	}
	m := &Manager[S]{
		newState: newState,
		config:   DefaultConfig(),
		now:      time.Now,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.config.IdleTimeout <= 0 {
		m.config.IdleTimeout = DefaultConfig().IdleTimeout
	}
	store := NewMemoryStore[S](m.config.CleanupInterval, m.now)
	m.store = store
	m.closer = store
	m.transport = NewCookieTransport(m.config.CookieName, m.config.SecureCookies)
	return m
}

// Get resolves the request's existing session and extends it.
func (m *Manager[S]) Get(ctx context.Context, r *http.Request) (*Session[S], error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}
	return m.store.Touch(ctx, token, m.now(), m.config.IdleTimeout)
}

// Ensure returns the request's session, creating one when it is missing
// or expired. The cookie is rewritten on every call so its lifetime
// follows the server-side idle timeout.
func (m *Manager[S]) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session[S], error) {
	session, err := m.Get(ctx, r)
	if err == nil {
		if err := m.transport.SetToken(w, session.Token, m.config.IdleTimeout); err != nil {
			return nil, err
		}
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
		return nil, err
	}

	session = NewSession(uuid.NewString(), m.newState(), m.now(), m.config.IdleTimeout)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, session.Token, m.config.IdleTimeout); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}
	m.logger.DebugContext(ctx, "session created", logger.Component("session"), slog.String("session_id", session.ID.String()))
	return session, nil
}

// Close releases the store the manager created itself.
func (m *Manager[S]) Close() error {
	if m.closer != nil {
		return m.closer.Close()
	}
	return nil
}
