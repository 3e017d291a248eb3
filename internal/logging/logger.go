package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output targets.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds logger configuration.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult describes where logs actually go.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	if strings.EqualFold(cfg.Format, FormatConsole) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger for cfg. When Output is "file" the file is
// opened in append mode; if that fails the logger falls back to stderr and the
// result records the reason.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return LogPathResult{
			Logger:         NewLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("create log directory: %v", err),
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return LogPathResult{
			Logger:         NewLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("open log file: %v", err),
		}
	}

	return LogPathResult{
		Logger:    NewLogger(cfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user that file logging could not be set up.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
