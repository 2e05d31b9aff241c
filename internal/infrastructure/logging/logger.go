package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging settings, read from the [logging] section of the
// settings file.
type Config struct {
	// Level filters log records: debug, info, warn or error.
	Level string

	// Format selects the handler: "text" for development, anything else JSON.
	Format string
}

// Logger wraps slog.Logger with HBP Core-specific functionality.
//
// It provides structured logging with default fields and level-based
// filtering. The output writer is injected by the caller, so the same logger
// construction serves the console, a FileTee, or a test buffer — there is no
// process-wide sink swap.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the specified configuration.
//
// Parameters:
//   - cfg: Logging configuration from the settings file
//   - output: Destination writer; nil defaults to os.Stdout
//   - version: Application version for the default field
//
// Returns:
//   - *Logger: Configured logger ready for use
func New(cfg Config, output io.Writer, version string) *Logger {
	if output == nil {
		output = os.Stdout
	}

	level := parseLevel(cfg.Level)

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	// Add default fields
	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "hbp-core"),
		slog.String("version", version),
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// parseLevel converts a string log level to slog.Level.
//
// Supported levels: debug, info, warn, error
// Defaults to info if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional default attributes.
//
// Example:
//
//	dbLogger := logger.With("component", "sqlite")
//	dbLogger.Info("opened") // Includes component=sqlite
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// Default creates a default logger for use before configuration is loaded.
//
// This logger outputs to stdout in text format at info level. It should only
// be used during early startup before the settings file is available.
func Default() *Logger {
	return New(Config{
		Level:  "info",
		Format: "text",
	}, os.Stdout, "dev")
}
