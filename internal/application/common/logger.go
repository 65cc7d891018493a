package common

import "context"

// Logger receives operator-visible anomalies from calculations, such
// as malformed exchange preference codes. Calculations never fail on
// these; they log and proceed with the documented fallback.
type Logger interface {
	Log(level string, message string, metadata map[string]interface{})
}

type contextKey int

const loggerKey contextKey = iota

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from the context, or a no-op
// logger if none was attached.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return NopLogger{}
}

// NopLogger discards all log output.
type NopLogger struct{}

// Log does nothing.
func (NopLogger) Log(level string, message string, metadata map[string]interface{}) {}
