// Package session keeps anonymous per-visitor state on the server.
//
// A Manager hands every visitor an opaque token in a cookie and keeps the
// visitor's state value in a Store. The state type is chosen by the
// application:
//
//	mgr := session.New(widgets.NewPage, session.WithConfig[*widgets.Page](cfg))
//	defer mgr.Close()
//
//	r.Use(mgr.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		sess := session.MustFromContext[*widgets.Page](r.Context())
//		...
//	})
//
// Sessions expire after the configured idle timeout; every successful
// lookup extends them. The memory store removes expired sessions from a
// single cleanup goroutine which Close stops.
//
// The store keeps the state value itself, not a copy, so state types that
// are mutated by concurrent requests must synchronise internally.
package session
