// SPDX-License-Identifier: MPL-2.0

package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rtshell/rtshell/internal/pattern"
	"github.com/rtshell/rtshell/internal/rttree"
)

// AllTypes selects every kind of node.
const AllTypes = "cdmn"

var (
	// ErrInvalidTypes is the sentinel error wrapped by InvalidTypesError.
	ErrInvalidTypes = errors.New("invalid type selection")
	// ErrInvalidDepth is returned for a negative maximum depth.
	ErrInvalidDepth = errors.New("maximum depth must not be negative")
	// ErrInvalidRoot is returned when a search root cannot be searched as
	// requested, such as a component given with a trailing separator.
	ErrInvalidRoot = errors.New("not a directory")
)

type (
	// TypeSet is a set of type letters: c (component), d (directory),
	// m (manager) and n (name server).
	TypeSet struct {
		component, directory, manager, nameServer bool
	}

	// InvalidTypesError is returned by ParseTypes for an unknown letter.
	InvalidTypesError struct {
		Value  string
		Letter rune
	}

	// Filter selects the nodes a query returns.
	Filter struct {
		// Types selects node kinds. The zero value selects nothing; use
		// ParseTypes(AllTypes) to select everything.
		Types TypeSet
		// Patterns are matched against full node paths; empty matches all.
		Patterns pattern.Set
		// MaxDepth limits how many levels below the root are visited.
		// Zero means unlimited.
		MaxDepth int
		// CmdPath is the path as the user typed it. Results below it are
		// shown relative to it.
		CmdPath string
	}
)

// Error implements the error interface.
func (e *InvalidTypesError) Error() string {
	return fmt.Sprintf("invalid type %q in %q (use any of c, d, m, n)", e.Letter, e.Value)
}

// Unwrap returns ErrInvalidTypes for errors.Is() compatibility.
func (e *InvalidTypesError) Unwrap() error { return ErrInvalidTypes }

// ParseTypes parses a --type value such as "cd" or "dmn".
func ParseTypes(s string) (TypeSet, error) {
	var ts TypeSet
	if s == "" {
		return ts, &InvalidTypesError{Value: s}
	}
	for _, r := range s {
		switch r {
		case 'c':
			ts.component = true
		case 'd':
			ts.directory = true
		case 'm':
			ts.manager = true
		case 'n':
			ts.nameServer = true
		default:
			return TypeSet{}, &InvalidTypesError{Value: s, Letter: r}
		}
	}
	return ts, nil
}

// MustParseTypes is like ParseTypes but panics on error.
func MustParseTypes(s string) TypeSet {
	ts, err := ParseTypes(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Selects reports whether nodes of kind k are selected. 'd' selects every
// directory-like kind: plain directories, managers and name servers.
func (ts TypeSet) Selects(k rttree.Kind) bool {
	switch k {
	case rttree.KindComponent:
		return ts.component
	case rttree.KindManager:
		return ts.manager || ts.directory
	case rttree.KindNameServer:
		return ts.nameServer || ts.directory
	case rttree.KindDirectory:
		return ts.directory
	default:
		return false
	}
}

// String returns the letters of the set in canonical order.
func (ts TypeSet) String() string {
	var sb strings.Builder
	if ts.component {
		sb.WriteByte('c')
	}
	if ts.directory {
		sb.WriteByte('d')
	}
	if ts.manager {
		sb.WriteByte('m')
	}
	if ts.nameServer {
		sb.WriteByte('n')
	}
	return sb.String()
}

// Validate checks the filter for values that cannot be searched with.
func (f Filter) Validate() error {
	if f.MaxDepth < 0 {
		return ErrInvalidDepth
	}
	return nil
}

// Matches reports whether n passes the type and name filters.
func (f Filter) Matches(n rttree.Node) bool {
	return f.Types.Selects(n.Kind()) && f.Patterns.Match(n.FullPath())
}

// Display returns how a matching node is shown: relative to CmdPath when its
// full path starts with it, its own name when it is the search root itself,
// and its full path otherwise.
func (f Filter) Display(n rttree.Node) string {
	full := n.FullPath()
	rest, ok := strings.CutPrefix(full, f.CmdPath)
	if !ok {
		return full
	}
	if rest == "" {
		return n.Name()
	}
	return rest
}
