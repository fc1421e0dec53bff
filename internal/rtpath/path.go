// SPDX-License-Identifier: MPL-2.0

package rtpath

import (
	"slices"
	"strings"
)

// PortSeparator separates a component name from one of its port names.
const PortSeparator = ":"

// Path is a parsed absolute path.
type Path struct {
	// Elems are the naming elements below the root, outermost first.
	Elems []string
	// Trailing is set when the textual path ended in a separator, marking
	// it as a directory path.
	Trailing bool
	// Port is the port name addressed on the final element, if any.
	Port string
}

// Parse splits an absolute path into its elements and optional port.
func Parse(abs string) (Path, error) {
	if !IsAbs(abs) {
		return Path{}, &PathError{Path: abs, Reason: "not an absolute path"}
	}

	rest := strings.TrimLeft(abs, Separator)
	if rest == "" {
		return Path{}, nil
	}

	var p Path
	if strings.HasSuffix(rest, Separator) {
		p.Trailing = true
		rest = strings.TrimRight(rest, Separator)
	}

	elems := strings.Split(rest, Separator)
	for _, e := range elems {
		if e == "" {
			return Path{}, &PathError{Path: abs, Reason: "empty path element"}
		}
	}

	if !p.Trailing {
		last := elems[len(elems)-1]
		if name, port, ok := strings.Cut(last, PortSeparator); ok {
			if name == "" {
				return Path{}, &PathError{Path: abs, Reason: "port without an object"}
			}
			elems[len(elems)-1] = name
			p.Port = port
		}
	} else if strings.Contains(elems[len(elems)-1], PortSeparator) {
		return Path{}, &PathError{Path: abs, Reason: "not a directory", Err: ErrPortOnDirectory}
	}

	p.Elems = elems
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(abs string) Path {
	p, err := Parse(abs)
	if err != nil {
		panic(err)
	}
	return p
}

// IsRoot reports whether p names the namespace root.
func (p Path) IsRoot() bool { return len(p.Elems) == 0 }

// HasPort reports whether p addresses a port.
func (p Path) HasPort() bool { return p.Port != "" }

// Len returns the number of elements including the root marker, so "/" has
// length 1 and a name-server entry such as "/localhost" has length 2.
func (p Path) Len() int { return len(p.Elems) + 1 }

// Name returns the final element, or the root separator for the root.
func (p Path) Name() string {
	if p.IsRoot() {
		return Root
	}
	return p.Elems[len(p.Elems)-1]
}

// Parent returns the path one level up, without trailing marker or port.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return Path{}
	}
	return Path{Elems: slices.Clone(p.Elems[:len(p.Elems)-1])}
}

// Object returns p with the trailing marker and port removed.
func (p Path) Object() Path {
	return Path{Elems: slices.Clone(p.Elems)}
}

// Child returns the path of a named child of p.
func (p Path) Child(name string) Path {
	elems := make([]string, 0, len(p.Elems)+1)
	elems = append(elems, p.Elems...)
	return Path{Elems: append(elems, name)}
}

// String renders p in its textual absolute form.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(Root)
	sb.WriteString(strings.Join(p.Elems, Separator))
	if p.Trailing && !p.IsRoot() {
		sb.WriteString(Separator)
	}
	if p.Port != "" {
		sb.WriteString(PortSeparator)
		sb.WriteString(p.Port)
	}
	return sb.String()
}

// Key returns a canonical lookup key for the object p names, ignoring the
// trailing marker and port.
func (p Path) Key() string {
	return Root + strings.Join(p.Elems, Separator)
}
