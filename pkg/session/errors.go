package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session.not_found")
	ErrSessionExpired  = errors.New("session.expired")
	ErrInvalidSession  = errors.New("session.invalid")
	ErrNoSession       = errors.New("session.missing_in_context")
)
