package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is one visitor's server-side record.
type Session[S any] struct {
	ID             uuid.UUID
	Token          string
	State          S
	ExpiresAt      time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
}

// NewSession creates a session valid for ttl from now.
func NewSession[S any](token string, state S, now time.Time, ttl time.Duration) *Session[S] {
	return &Session[S]{
		ID:             uuid.New(),
		Token:          token,
		State:          state,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsExpired reports whether the session had expired at now.
func (s *Session[S]) IsExpired(now time.Time) bool {
	return s != nil && now.After(s.ExpiresAt)
}
