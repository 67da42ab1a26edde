// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled = false
	quietEnabled = false
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("RL_ACADEMY_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetQuiet suppresses Info and Success output when enabled.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quietEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the defaults.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelSuccess
	levelWarning
	levelError
)

func emit(lvl level, msgs []string) {
	msg := strings.Join(msgs, " ")

	mu.RLock()
	l, out, errOut := logger, stdout, stderr
	debug, quiet := debugEnabled, quietEnabled
	mu.RUnlock()

	if lvl == levelDebug && !debug {
		return
	}
	// Mirror to structured logger if set
	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg)
		case levelInfo:
			l.Info(msg)
		case levelSuccess:
			l.Info(msg, "type", "success")
		case levelWarning:
			l.Warn(msg)
		case levelError:
			l.Error(msg)
		}
	}

	var err error
	switch lvl {
	case levelDebug:
		_, err = fmt.Fprintf(errOut, "%sDebug:%s %s\n", Cyan, Reset, msg)
	case levelInfo:
		if quiet {
			return
		}
		_, err = fmt.Fprintf(out, "%s%s%s\n", Blue, msg, Reset)
	case levelSuccess:
		if quiet {
			return
		}
		_, err = fmt.Fprintf(out, "%s%s%s %s\n", Green, checkmark, Reset, msg)
	case levelWarning:
		_, err = fmt.Fprintf(errOut, "%sWarning:%s %s\n", Yellow, Reset, msg)
	case levelError:
		_, err = fmt.Fprintf(errOut, "%sError:%s %s\n", Red, Reset, msg)
	}
	if err != nil {
		// Direct write to stderr, ignore errors
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) { emit(levelError, msgs) }

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) { emit(levelWarning, msgs) }

// Info outputs an informational message to stdout.
func Info(msgs ...string) { emit(levelInfo, msgs) }

// Success outputs a success message to stdout.
func Success(msgs ...string) { emit(levelSuccess, msgs) }

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) { emit(levelDebug, msgs) }
