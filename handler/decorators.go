package handler

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// Logged logs every handled request at debug level with its duration.
func Logged[C Context, R any](log *slog.Logger, name string) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "handled",
				logger.Handler(name),
				slog.Bool("is_datastar", IsDataStar(ctx.Request())),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
