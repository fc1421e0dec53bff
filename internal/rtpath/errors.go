// SPDX-License-Identifier: MPL-2.0

package rtpath

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPath is returned when no path was given and no working directory is set.
	ErrNoPath = errors.New("no path given and no working directory set")
	// ErrBadPath is the sentinel error wrapped by PathError.
	ErrBadPath = errors.New("bad path")
	// ErrPortOnDirectory is returned when a path ends in a separator and also names a port.
	ErrPortOnDirectory = errors.New("a directory path cannot address a port")
)

type (
	// NoPathError is returned by Resolve when the raw path is empty and there is
	// no working directory to fall back to.
	NoPathError struct{}

	// PathError describes a path that is malformed or cannot address the
	// requested kind of object.
	PathError struct {
		Path   string
		Reason string
		// Err is an optional more specific sentinel (e.g. ErrPortOnDirectory).
		Err error
	}
)

// Error implements the error interface.
func (e *NoPathError) Error() string { return ErrNoPath.Error() }

// Unwrap returns ErrNoPath for errors.Is() compatibility.
func (e *NoPathError) Unwrap() error { return ErrNoPath }

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: bad path", e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns the specific sentinel if set, otherwise ErrBadPath.
func (e *PathError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrBadPath, e.Err}
	}
	return []error{ErrBadPath}
}
