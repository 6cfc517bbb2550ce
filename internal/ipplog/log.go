/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by the project contributors
 * See LICENSE for license terms and conditions
 *
 * Leveled logging shared by the client transport and the CLI
 */

// Package ipplog implements a small leveled logger in the style of
// ipp-usb's logging facility, trimmed to what a client library needs:
// no log rotation, no carbon-copy fan-out, no on-disk file management.
package ipplog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	goipp "github.com/alexpevzner/ippclient"
)

// Level is a logging verbosity level, ordered from quiet to noisy
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// String returns the canonical name of the level
func (lvl Level) String() string {
	switch lvl {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	}
	return "unknown"
}

// ParseLevel parses a level name, as found in the IPP_LOG_LEVEL
// environment variable. Unrecognized input yields LevelWarning
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError
	case "warning", "warn":
		return LevelWarning
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	}
	return LevelWarning
}

// Logger is a simple leveled logger writing formatted lines to an
// io.Writer. It is safe for concurrent use
type Logger struct {
	lock  sync.Mutex
	out   io.Writer
	level Level
}

// New creates a Logger writing to out at the given level
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// Default returns the package default logger: stderr, level taken
// from the IPP_LOG_LEVEL environment variable (default "warning")
func Default() *Logger {
	return New(os.Stderr, ParseLevel(os.Getenv("IPP_LOG_LEVEL")))
}

func (l *Logger) log(level Level, prefix string, format string, args ...interface{}) {
	if level > l.level {
		return
	}

	line := fmt.Sprintf(format, args...)
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.out, "%s: %s: %s\n", prefix, level, line)
}

// Error logs at LevelError
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, "ippclient", format, args...)
}

// Warning logs at LevelWarning
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(LevelWarning, "ippclient", format, args...)
}

// Info logs at LevelInfo
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, "ippclient", format, args...)
}

// Debug logs at LevelDebug
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, "ippclient", format, args...)
}

// LogMessage dumps a goipp.Message at LevelDebug, using the wire
// codec's own Formatter. request selects OPERATION vs STATUS
// rendering, matching Message.Print's convention
func (l *Logger) LogMessage(prefix string, m *goipp.Message, request bool) {
	if LevelDebug > l.level {
		return
	}

	f := goipp.NewFormatter()
	if request {
		f.FmtRequest(m)
	} else {
		f.FmtResponse(m)
	}

	l.log(LevelDebug, prefix, "%s", f.String())
}
