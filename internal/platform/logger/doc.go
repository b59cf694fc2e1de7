// Package logger configures structured JSON logging on top of the
// standard library log/slog, with levels taken from the server
// configuration and a helper for carrying request-scoped loggers in a
// context.
package logger
