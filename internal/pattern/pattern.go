// SPDX-License-Identifier: MPL-2.0

// Package pattern compiles the shell-style name patterns accepted by find.
//
// A '*' matches any run of characters and a '?' matches exactly one. Every
// other character is literal. There is no way to escape a wildcard, so a
// pattern cannot match a literal '*' or '?' on its own.
//
// Patterns are searched for anywhere in the candidate, not anchored, because
// they are applied to full node paths: "motor" matches both
// /localhost/motor0.rtc and /localhost/motor/left.rtc.
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

type (
	// Pattern is a compiled name pattern.
	Pattern struct {
		// Source is the glob the pattern was compiled from.
		Source string
		// CaseInsensitive is set for patterns given with --iname.
		CaseInsensitive bool

		re *regexp.Regexp
	}

	// Set is a group of patterns combined with logical OR.
	Set []*Pattern
)

// Compile translates glob into a Pattern.
func Compile(glob string, caseInsensitive bool) (*Pattern, error) {
	expr := Translate(glob)
	if caseInsensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile name pattern %q: %w", glob, err)
	}
	return &Pattern{Source: glob, CaseInsensitive: caseInsensitive, re: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(glob string, caseInsensitive bool) *Pattern {
	p, err := Compile(glob, caseInsensitive)
	if err != nil {
		panic(err)
	}
	return p
}

// Translate returns the regular expression for glob. Metacharacters are
// quoted first and the quoted wildcards are then substituted, so the
// wildcards typed by the user always act as wildcards.
func Translate(glob string) string {
	expr := regexp.QuoteMeta(glob)
	expr = strings.ReplaceAll(expr, `\*`, `.*?`)
	expr = strings.ReplaceAll(expr, `\?`, `.`)
	return expr
}

// Match reports whether the pattern occurs anywhere in candidate.
func (p *Pattern) Match(candidate string) bool {
	return p.re.MatchString(candidate)
}

// String returns the compiled regular expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// CompileAll compiles case-sensitive names followed by case-insensitive inames.
func CompileAll(names, inames []string) (Set, error) {
	set := make(Set, 0, len(names)+len(inames))
	for _, n := range names {
		p, err := Compile(n, false)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	for _, n := range inames {
		p, err := Compile(n, true)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Match reports whether any pattern in s matches candidate. An empty set
// matches everything.
func (s Set) Match(candidate string) bool {
	if len(s) == 0 {
		return true
	}
	for _, p := range s {
		if p.Match(candidate) {
			return true
		}
	}
	return false
}
