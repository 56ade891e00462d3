// ABOUTME: Structured logger implementation backed by sirupsen/logrus
// ABOUTME: Writes to stdout and optionally to a size-rotated file through lumberjack

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is "json" or "text"
	Format string

	// File enables rotated file output in addition to stdout
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// NewLogger creates a logger writing to stdout and, when configured, to a rotated file
func NewLogger(opts Options) *Logger {
	var out io.Writer = os.Stdout
	var closer io.Closer

	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotated)
		closer = rotated
	}

	return newLogger(out, closer, opts)
}

// NewWriterLogger creates a logger writing only to w
func NewWriterLogger(w io.Writer, opts Options) *Logger {
	return newLogger(w, nil, opts)
}

func newLogger(out io.Writer, closer io.Closer, opts Options) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(ParseLevel(opts.Level))

	if strings.EqualFold(opts.Format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{entry: l, closer: closer}
}

// ParseLevel maps a level name to a logrus level; unknown names give info
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close flushes and closes the rotated file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func orDefault(v, d int) int {
	if v <= 0 {
		return d
	}
	return v
}
