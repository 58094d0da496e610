package session

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option[S any] func(*Manager[S])

func WithConfig[S any](cfg Config) Option[S] {
	return func(m *Manager[S]) {
		m.config = cfg
	}
}

func WithIdleTimeout[S any](d time.Duration) Option[S] {
	return func(m *Manager[S]) {
		if d > 0 {
			m.config.IdleTimeout = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock[S any](now func() time.Time) Option[S] {
	return func(m *Manager[S]) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(m *Manager[S]) {
		if logger != nil {
			m.logger = logger
		}
	}
}
