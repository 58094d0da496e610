package session

import "context"

type sessionContextKey struct{}

func WithSession[S any](ctx context.Context, session *Session[S]) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func FromContext[S any](ctx context.Context) (*Session[S], bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session[S])
	return session, ok && session != nil
}

// MustFromContext panics when Middleware did not run.
func MustFromContext[S any](ctx context.Context) *Session[S] {
	session, ok := FromContext[S](ctx)
	if !ok {
		panic(ErrNoSession)
	}
	return session
}
