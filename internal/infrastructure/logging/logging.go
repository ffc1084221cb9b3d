package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/andrescamacho/bakery-go/internal/infrastructure/config"
)

// New builds a slog logger from the logging configuration
func New(cfg config.LoggingConfig) (*slog.Logger, error) {
	var out io.Writer
	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	default:
		return nil, fmt.Errorf("unsupported log output %q", cfg.Output)
	}
	return NewWithWriter(cfg, out)
}

// NewWithWriter builds a slog logger writing to w
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return slog.New(handler), nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q", level)
	}
}

// RunLogger adapts a slog.Logger to common.RunLogger
type RunLogger struct {
	logger *slog.Logger
}

// NewRunLogger wraps logger; a nil logger uses slog.Default()
func NewRunLogger(logger *slog.Logger) *RunLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunLogger{logger: logger}
}

// Log implements common.RunLogger. Metadata keys are emitted in sorted order.
func (l *RunLogger) Log(level, message string, metadata map[string]interface{}) {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}

	l.logger.LogAttrs(context.Background(), lvl, message, attrs...)
}
