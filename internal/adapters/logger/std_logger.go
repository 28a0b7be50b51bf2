// Package logger adapts github.com/baditaflorin/l into ports.Logger, kept
// directly from the teacher: the core and driver depend on the narrow
// ports.Logger interface, never on l.Logger, so the adapter is the only
// file that imports l.
package logger

import (
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_cluster_words/internal/ports"
)

// StdLogger adapts an l.Logger to ports.Logger.
type StdLogger struct {
	logger l.Logger
}

// NewStdLogger creates a standard logger writing to stdout.
func NewStdLogger() (ports.Logger, error) {
	return NewStdLoggerTo(os.Stdout)
}

// NewStdLoggerTo creates a standard logger writing to the given output,
// used by the CLI's --log-file flag and by the server's log-file flag.
func NewStdLoggerTo(out *os.File) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      out,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// FromExisting wraps an already-constructed l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}
