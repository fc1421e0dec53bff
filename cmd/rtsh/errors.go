// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/query"
	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"
	"github.com/rtshell/rtshell/pkg/types"
)

// Diagnostic messages shared by several commands.
const (
	msgNoPath         = "No path given"
	msgNotFound       = "No such directory or object"
	msgNotADirectory  = "Not a directory"
	msgNotAComponent  = "Not a component"
	msgNoSuchObject   = "No such object"
	msgNotAnObject    = "Not an object"
	msgNotRegistered  = "No such name registered"
	msgTreeLoadFailed = "Failed to load the namespace"
)

// fail builds the command failure for a diagnostic the command detected itself.
func fail(op, resource, msg string, id issue.Id, suggestions ...string) error {
	return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
		WithOperation(op).
		WithResource(resource).
		WithMessage(msg).
		WithIssue(id).
		WithSuggestions(suggestions...).
		BuildError()}
}

// describe maps an error from the path, tree or query layers to the command
// failure printed for it. resource is the path as the user typed it.
func describe(op, resource string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	ctx := issue.NewErrorContext().WithOperation(op).WithResource(resource).Wrap(err)

	var (
		pathErr     *rtpath.PathError
		mismatchErr *rttree.TypeMismatchError
		noSetErr    *rttree.NoSuchSetError
		noParamErr  *rttree.NoSuchParamError
		badIndexErr *rttree.BadIndexError
		unreachErr  *rttree.UnreachableError
	)

	switch {
	case errors.Is(err, rtpath.ErrNoPath):
		ctx.WithMessage(msgNoPath).WithIssue(issue.NoPathId)
	case errors.Is(err, rtpath.ErrPortOnDirectory), errors.Is(err, query.ErrInvalidRoot):
		ctx.WithMessage(msgNotADirectory).WithIssue(issue.NotADirectoryId)
	case errors.As(err, &pathErr):
		ctx.WithMessage(capitalize(pathErr.Reason))
	case errors.Is(err, rttree.ErrNotFound):
		ctx.WithMessage(msgNotFound).WithIssue(issue.PathNotFoundId)
	case errors.As(err, &mismatchErr):
		if mismatchErr.Want == rttree.KindComponent.String() {
			ctx.WithMessage(msgNotAComponent).WithIssue(issue.NotAComponentId)
		} else {
			ctx.WithMessage(msgNotADirectory).WithIssue(issue.NotADirectoryId)
		}
	case errors.As(err, &noSetErr):
		ctx.WithMessage(noSetErr.Set + ": No such configuration set").WithIssue(issue.NoSuchConfSetId)
	case errors.As(err, &noParamErr):
		ctx.WithMessage(noParamErr.Param + ": No such configuration parameter").WithIssue(issue.NoSuchConfParamId)
	case errors.As(err, &badIndexErr):
		ctx.WithMessage(fmt.Sprintf("No execution context at index %d", badIndexErr.Index)).WithIssue(issue.BadExecContextId)
	case errors.Is(err, rttree.ErrBadPath):
		ctx.WithMessage(msgNotRegistered)
	case errors.As(err, &unreachErr):
		ctx.WithMessage(unreachErr.Server + ": Name server unreachable").
			WithSuggestion("Check the unreachable flag of the name server in the snapshot file")
	default:
		ctx.WithMessage(capitalize(err.Error()))
	}

	return &ExitError{Code: types.ExitFailure, Err: ctx.BuildError()}
}

// treeLoadError reports a snapshot that could not be opened or decoded.
func treeLoadError(op, path string, err error) error {
	return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
		WithOperation(op).
		WithResource(path).
		WithMessage(msgTreeLoadFailed + ": " + err.Error()).
		WithIssue(issue.TreeLoadFailedId).
		WithSuggestions(
			"Pass the snapshot explicitly with --tree FILE",
			"Set tree_file in the configuration file",
		).
		Wrap(err).
		BuildError()}
}

// capitalize upper-cases the first letter of msg.
func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimSpace(string(r))
}
