// Package logger builds the *slog.Logger used by the binding engine.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the chosen slog handler with
// LogHandlerDecorator, which injects request-scoped attributes pulled from the
// context on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "api"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "resolve parameters",
//	    logger.Location("query"),
//	    logger.Model("SearchParams"),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
