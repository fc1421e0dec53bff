// SPDX-License-Identifier: MPL-2.0

package shellenv

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

const (
	// DialectPOSIX is the default dialect for sh-compatible shells.
	DialectPOSIX Dialect = iota
	// DialectCsh is used for csh and tcsh.
	DialectCsh
	// DialectCmd is used on Windows.
	DialectCmd
)

// ErrInvalidName is returned when the variable name is not a valid shell identifier.
var ErrInvalidName = errors.New("invalid variable name")

type (
	// Dialect selects the assignment syntax of the target shell.
	Dialect int

	// InvalidNameError reports a variable name the shell would reject.
	InvalidNameError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q", e.Name)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Detect picks the dialect for the given GOOS and SHELL value.
func Detect(goos, shell string) Dialect {
	switch {
	case goos == "windows":
		return DialectCmd
	case strings.Contains(shell, "csh"):
		return DialectCsh
	default:
		return DialectPOSIX
	}
}

// String returns the command word used by the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectCsh:
		return "setenv"
	case DialectCmd:
		return "set"
	default:
		return "export"
	}
}

// SetLine renders the command that assigns value to name.
//
// Paths are normally emitted inside plain double quotes. A value holding a
// character that is special inside double quotes falls back to a quoted
// word produced by the sh parser so the evaluated result stays literal.
func (d Dialect) SetLine(name, value string) (string, error) {
	if !syntax.ValidName(name) {
		return "", &InvalidNameError{Name: name}
	}

	switch d {
	case DialectCmd:
		return fmt.Sprintf("set %s=%s", name, value), nil
	case DialectCsh:
		return fmt.Sprintf("setenv %s %s", name, quote(value)), nil
	default:
		if needsEscape(value) {
			q, err := syntax.Quote(value, syntax.LangPOSIX)
			if err != nil {
				return "", fmt.Errorf("quote %q: %w", value, err)
			}
			return fmt.Sprintf("export %s=%s", name, q), nil
		}
		return fmt.Sprintf("export %s=%s", name, quote(value)), nil
	}
}

func quote(value string) string {
	return `"` + value + `"`
}

func needsEscape(value string) bool {
	return strings.ContainsAny(value, "\"$`\\")
}
