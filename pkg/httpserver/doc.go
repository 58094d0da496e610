// Package httpserver runs the page server's http.Handler with configured
// timeouts and shuts it down gracefully when the context is cancelled or the
// process receives SIGINT/SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(*slog.Logger) { sessions.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
