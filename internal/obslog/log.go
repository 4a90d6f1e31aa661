// File: internal/obslog/log.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structured logging indirection for the offload core. internal/ioloop
// never imports logrus directly (internal/fiber does no logging at all);
// it takes a Logger,
// letting callers swap the sink the way the teacher's control package
// keeps its own small, focused structs behind a package boundary.

package obslog

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the minimal structured-logging surface the offload core
// needs: leveled, printf-style messages.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// Fatalf logs at the highest severity then terminates the process.
	// Reserved for the handful of conditions spec §7 calls genuinely
	// unrecoverable (response-channel read failure other than EAGAIN,
	// socket-pair creation failure).
	Fatalf(format string, args ...any)
}

// logrusLogger adapts *logrus.Logger to Logger.
type logrusLogger struct {
	l *logrus.Logger
}

// New returns the default logrus-backed Logger, writing to stderr at Info
// level with the text formatter (matching the teacher's plain, timestamped
// log.Printf texture rather than forcing JSON on every consumer).
func New() Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &logrusLogger{l: l}
}

// NewWithLevel returns a logrus-backed Logger at the given level, e.g.
// logrus.DebugLevel for verbose worker-pool tracing during development.
func NewWithLevel(level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &logrusLogger{l: l}
}

func (g *logrusLogger) Debugf(format string, args ...any) { g.l.Debugf(format, args...) }
func (g *logrusLogger) Infof(format string, args ...any)  { g.l.Infof(format, args...) }
func (g *logrusLogger) Warnf(format string, args ...any)  { g.l.Warnf(format, args...) }
func (g *logrusLogger) Errorf(format string, args ...any) { g.l.Errorf(format, args...) }
func (g *logrusLogger) Fatalf(format string, args ...any) { g.l.Fatalf(format, args...) }

// noop discards everything; useful in tests that don't want log noise on
// stderr but still need a Logger to hand to ioloop.
type noop struct{}

// NewNoop returns a Logger that discards all messages except Fatalf,
// which still panics (it must never silently swallow a fatal condition).
func NewNoop() Logger { return noop{} }

func (noop) Debugf(string, ...any) {}
func (noop) Infof(string, ...any)  {}
func (noop) Warnf(string, ...any)  {}
func (noop) Errorf(string, ...any) {}
func (noop) Fatalf(format string, args ...any) {
	panic("obslog: fatal: " + fmt.Sprintf(format, args...))
}
