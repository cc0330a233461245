// Package logger is a printf-style logging facade over logrus.
//
// Output goes to stderr unless a file is configured: the stdio MCP transport
// owns stdout, and anything else written there corrupts the protocol stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers do not need to import logrus directly.
type Fields = logrus.Fields

// Config controls the process-wide logger.
type Config struct {
	// Level is one of trace, debug, info, warn, error.
	Level string
	// Format is "text" or "json".
	Format string
	// OutputPath is a log file path. Empty means stderr.
	OutputPath string
}

var (
	std = logrus.New()

	mu   sync.Mutex
	file *os.File
)

func init() {
	std.SetOutput(os.Stderr)
	std.SetLevel(logrus.InfoLevel)
	std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Init applies cfg to the process-wide logger.
func Init(cfg Config) error {
	if cfg.Level != "" {
		if err := SetLevel(cfg.Level); err != nil {
			return err
		}
	}

	switch cfg.Format {
	case "", "text":
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	if cfg.OutputPath == "" {
		return nil
	}
	return InitLog(cfg.OutputPath)
}

// InitLog redirects log output to the file at path, creating parent
// directories as needed.
func InitLog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	std.SetOutput(f)
	return nil
}

// FlushLog syncs and closes the log file, if any, and falls back to stderr.
func FlushLog() {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return
	}
	_ = file.Sync()
	_ = file.Close()
	file = nil
	std.SetOutput(os.Stderr)
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	std.SetLevel(lvl)
	return nil
}

// SetOutput replaces the output writer. Mostly useful in tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// StandardLogger returns the underlying logrus logger.
func StandardLogger() *logrus.Logger {
	return std
}

// WithFields returns an entry carrying fields, for per-request diagnostics.
func WithFields(fields Fields) logrus.FieldLogger {
	return std.WithFields(fields)
}

// Discard returns a logger that drops everything.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func Debug(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	std.Infof(format, args...)
}

func Warn(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

func Fatal(format string, args ...interface{}) {
	std.Fatalf(format, args...)
}
