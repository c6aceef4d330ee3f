// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logging and provides the adapters
// needed to surface SQL query logs from the database driver (PGX)
// through the same logger.
package logger

import (
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New builds the application's main logger from the logging config.
//
// Format "console" produces human-friendly output for local work;
// anything else produces JSON lines for log pipelines. Unknown level
// strings fall back to info.
func New(env, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(lvl).With().
		Timestamp().
		Str("service", "items-api").
		Str("env", env).
		Logger()
}

// NewPgxLogger creates the logger handed to the pgx tracelog adapter.
//
// SQL logs are only enabled in the local environment, so this always
// uses the console writer for readable query output.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx's
// tracelog levels so SQL logging honors the configured verbosity.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
