// SPDX-License-Identifier: MPL-2.0

package rttree

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("no such directory or object")
	// ErrTypeMismatch is the sentinel error wrapped by TypeMismatchError.
	ErrTypeMismatch = errors.New("wrong kind of object")
	// ErrNoSuchSet is the sentinel error wrapped by NoSuchSetError.
	ErrNoSuchSet = errors.New("no such configuration set")
	// ErrNoSuchParam is the sentinel error wrapped by NoSuchParamError.
	ErrNoSuchParam = errors.New("no such configuration parameter")
	// ErrBadIndex is the sentinel error wrapped by BadIndexError.
	ErrBadIndex = errors.New("no execution context at index")
	// ErrBadPath is the sentinel error wrapped by BadPathError.
	ErrBadPath = errors.New("bad binding")
	// ErrUnreachable is the sentinel error wrapped by UnreachableError.
	ErrUnreachable = errors.New("name server unreachable")
	// ErrPrecondition is returned when a state change is not allowed from the current state.
	ErrPrecondition = errors.New("precondition not met")
)

type (
	// NotFoundError is returned when a path does not name a node.
	NotFoundError struct {
		Path string
	}

	// TypeMismatchError is returned when a node exists but is the wrong kind
	// for an operation.
	TypeMismatchError struct {
		Path string
		Want string
		Got  Kind
	}

	// NoSuchSetError is returned when a configuration set does not exist.
	NoSuchSetError struct {
		Set string
	}

	// NoSuchParamError is returned when a parameter is not present in a set.
	NoSuchParamError struct {
		Set   string
		Param string
	}

	// BadIndexError is returned when an execution context index is out of range.
	BadIndexError struct {
		Index int
	}

	// BadPathError is returned by Bind and Unbind.
	BadPathError struct {
		Name   string
		Reason string
	}

	// UnreachableError is returned when a name server cannot be contacted.
	UnreachableError struct {
		Server string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, ErrNotFound)
}

// Unwrap returns ErrNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: not a %s (is a %s)", e.Path, e.Want, e.Got)
}

// Unwrap returns ErrTypeMismatch for errors.Is() compatibility.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// Error implements the error interface.
func (e *NoSuchSetError) Error() string {
	return fmt.Sprintf("%s: %s", e.Set, ErrNoSuchSet)
}

// Unwrap returns ErrNoSuchSet for errors.Is() compatibility.
func (e *NoSuchSetError) Unwrap() error { return ErrNoSuchSet }

// Error implements the error interface.
func (e *NoSuchParamError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Set, e.Param, ErrNoSuchParam)
}

// Unwrap returns ErrNoSuchParam for errors.Is() compatibility.
func (e *NoSuchParamError) Unwrap() error { return ErrNoSuchParam }

// Error implements the error interface.
func (e *BadIndexError) Error() string {
	return fmt.Sprintf("%s %d", ErrBadIndex, e.Index)
}

// Unwrap returns ErrBadIndex for errors.Is() compatibility.
func (e *BadIndexError) Unwrap() error { return ErrBadIndex }

// Error implements the error interface.
func (e *BadPathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

// Unwrap returns ErrBadPath for errors.Is() compatibility.
func (e *BadPathError) Unwrap() error { return ErrBadPath }

// Error implements the error interface.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Server, ErrUnreachable)
}

// Unwrap returns ErrUnreachable for errors.Is() compatibility.
func (e *UnreachableError) Unwrap() error { return ErrUnreachable }
