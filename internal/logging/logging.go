// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// Prefix is printed before every log line.
	Prefix = "rtsh"
	// LevelEnvVar overrides the level selected by flags.
	LevelEnvVar = "RTSH_LOG_LEVEL"
	// DefaultLevel is used without --debug or LevelEnvVar.
	DefaultLevel = log.WarnLevel
)

// ErrInvalidLevel is the sentinel error wrapped by InvalidLevelError.
var ErrInvalidLevel = errors.New("invalid log level")

type (
	// Options configures New.
	Options struct {
		// Debug selects log.DebugLevel unless Level is set.
		Debug bool
		// Level is a level name such as "info"; it wins over Debug.
		Level string
		// ReportTimestamp adds a timestamp to every line.
		ReportTimestamp bool
	}

	// InvalidLevelError is returned for an unknown level name.
	InvalidLevelError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error, fatal)", e.Value)
}

// Unwrap returns ErrInvalidLevel for errors.Is() compatibility.
func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }

// ResolveLevel returns the level opts select.
func ResolveLevel(opts Options) (log.Level, error) {
	if name := strings.TrimSpace(opts.Level); name != "" {
		lvl, err := log.ParseLevel(strings.ToLower(name))
		if err != nil {
			return DefaultLevel, &InvalidLevelError{Value: opts.Level}
		}
		return lvl, nil
	}
	if opts.Debug {
		return log.DebugLevel, nil
	}
	return DefaultLevel, nil
}

// New returns a logger writing to w. An invalid Level falls back to the
// default level and is reported once through the returned logger.
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := ResolveLevel(opts)
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: opts.ReportTimestamp,
	})
	if err != nil {
		logger.Warn("ignoring "+LevelEnvVar, "err", err)
	}
	return logger
}

// FromEnv is New with Level read through lookup from LevelEnvVar.
func FromEnv(w io.Writer, debug bool, lookup func(string) (string, bool)) *log.Logger {
	opts := Options{Debug: debug}
	if lookup != nil {
		if v, ok := lookup(LevelEnvVar); ok {
			opts.Level = v
		}
	}
	return New(w, opts)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
