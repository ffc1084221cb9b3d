package common

import "context"

// RunLogger receives the structured events of a production run. Levels are
// upper-case names such as INFO and WARNING; metadata keys are snake_case.
type RunLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

type runLoggerKey struct{}

// WithLogger returns a copy of ctx that carries logger
func WithLogger(ctx context.Context, logger RunLogger) context.Context {
	return context.WithValue(ctx, runLoggerKey{}, logger)
}

// LoggerFromContext returns the logger stored by WithLogger. Events sent to a
// context without one are discarded.
func LoggerFromContext(ctx context.Context) RunLogger {
	if logger, ok := ctx.Value(runLoggerKey{}).(RunLogger); ok && logger != nil {
		return logger
	}
	return discardLogger{}
}

type discardLogger struct{}

func (discardLogger) Log(string, string, map[string]interface{}) {}
