// Package logger builds configured slog loggers for tapline services.
//
// The factory produces JSON output at INFO by default, which is what the
// log aggregation stack expects; local development flips to text/debug
// with a single option:
//
//	log := logger.New(logger.WithDevelopment("authz"))
//
// Context extractors inject request-scoped attributes (request id,
// principal id) at log time through a handler decorator, so callers keep
// passing the same *slog.Logger around.
package logger
