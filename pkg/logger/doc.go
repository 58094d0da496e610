// Package logger builds the *slog.Logger used across the page server and
// provides attribute constructors that keep key names consistent.
//
// New applies functional options to pick the output format (text for
// development, JSON elsewhere), the minimum level and static attributes, and
// wraps the handler with a decorator that pulls request-scoped values such as
// the request id out of the context on every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "pagekit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "signup submitted", logger.Component("signup"), logger.Outcome("failure"))
package logger
