// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/rtshell/rtshell/internal/rtpath"
)

// target is a command-line path after resolution against the working directory.
type target struct {
	// Raw is the path as typed, or the resolved path when nothing was typed.
	Raw string
	// Abs is the resolved absolute path.
	Abs string
	// Path is the parsed form of Abs.
	Path rtpath.Path
}

// resolve turns the optional positional argument into a target.
func (s *session) resolve(op string, args []string) (target, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	}

	abs, err := s.cwd.Resolve(raw)
	if err != nil {
		return target{}, describe(op, raw, err)
	}
	if raw == "" {
		raw = abs
	}

	p, err := rtpath.Parse(abs)
	if err != nil {
		return target{}, describe(op, raw, err)
	}
	s.logger.Debug("resolved path", "raw", raw, "abs", abs, "port", p.Port, "trailing", p.Trailing)
	return target{Raw: raw, Abs: abs, Path: p}, nil
}
