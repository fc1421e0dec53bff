// SPDX-License-Identifier: MPL-2.0

package rtpath

import "strings"

const (
	// Separator separates naming elements in a path.
	Separator = "/"
	// Root is the absolute path of the namespace root.
	Root = "/"
)

// WorkingDir is the virtual current directory a command runs in. The zero
// value means no working directory is set.
type WorkingDir struct {
	Path string
	Set  bool
}

// NewWorkingDir returns a WorkingDir from an environment lookup result,
// treating an empty value as unset.
func NewWorkingDir(value string, ok bool) WorkingDir {
	return WorkingDir{Path: value, Set: ok && value != ""}
}

// OrRoot returns the working directory, or the root when none is set.
func (w WorkingDir) OrRoot() string {
	if !w.Set {
		return Root
	}
	return w.Path
}

// Resolve converts raw into an absolute path relative to w.
func (w WorkingDir) Resolve(raw string) (string, error) {
	return Resolve(raw, w.Path, w.Set)
}

// Resolve converts a command-line path into an absolute path.
//
// An empty raw path resolves to cwd, failing with *NoPathError when cwd is
// unset. Absolute paths are returned unchanged. "." and ".." are interpreted
// against cwd and never fail, even at the root. Anything else is joined onto
// cwd (or the root) with duplicate separators collapsed; a trailing separator
// is kept because it changes the meaning of the path.
func Resolve(raw, cwd string, hasCwd bool) (string, error) {
	if hasCwd && cwd == "" {
		hasCwd = false
	}

	switch raw {
	case "":
		if !hasCwd {
			return "", &NoPathError{}
		}
		return cwd, nil
	case ".", "./":
		if !hasCwd {
			return Root, nil
		}
		return cwd, nil
	case "..", "../":
		if !hasCwd {
			return Root, nil
		}
		return Parent(cwd), nil
	}

	if strings.HasPrefix(raw, Separator) {
		return raw, nil
	}

	base := Root
	if hasCwd {
		base = cwd
	}
	return collapseSeparators(base + Separator + raw), nil
}

// Parent returns the parent of an absolute path by removing its last
// non-empty element. The parent of the root is the root.
func Parent(abs string) string {
	trimmed := strings.TrimRight(abs, Separator)
	if trimmed == "" {
		return Root
	}
	idx := strings.LastIndex(trimmed, Separator)
	if idx <= 0 {
		return Root
	}
	return trimmed[:idx]
}

// IsAbs reports whether p starts at the namespace root.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, Separator)
}

func collapseSeparators(p string) string {
	if !strings.Contains(p, "//") {
		return p
	}
	var sb strings.Builder
	sb.Grow(len(p))
	prevSep := false
	for i := range len(p) {
		c := p[i]
		if c == '/' {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
