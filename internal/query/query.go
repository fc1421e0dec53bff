// SPDX-License-Identifier: MPL-2.0

package query

import (
	"iter"

	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"
)

// Run returns the display paths of the nodes below root (root included) that
// match f, in depth-first order with siblings sorted by name.
//
// If enumerating children fails, the error is yielded once and the sequence
// ends. The tree is never modified.
func Run(root rttree.Node, f Filter) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := f.Validate(); err != nil {
			yield("", err)
			return
		}
		visit(root, 0, f, yield)
	}
}

// visit reports false once the consumer stopped or an error was yielded.
func visit(n rttree.Node, depth int, f Filter, yield func(string, error) bool) bool {
	if f.Matches(n) {
		if !yield(f.Display(n), nil) {
			return false
		}
	}
	if f.MaxDepth > 0 && depth >= f.MaxDepth {
		return true
	}
	children, err := n.Children()
	if err != nil {
		yield("", err)
		return false
	}
	for _, c := range children {
		if !visit(c, depth+1, f, yield) {
			return false
		}
	}
	return true
}

// Collect drains a query into a slice. It stops at the first error and
// returns the results gathered so far along with it.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var out []string
	for p, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Root looks up and checks the node a search starts from. abs is the
// resolved absolute path; a trailing separator asks for the root to be a
// directory.
func Root(tree *rttree.Tree, abs string) (rttree.Node, error) {
	p, err := rtpath.Parse(abs)
	if err != nil {
		return nil, err
	}
	if p.HasPort() {
		return nil, &rtpath.PathError{Path: abs, Reason: "cannot search in a port"}
	}
	n, err := tree.Get(p)
	if err != nil {
		return nil, err
	}
	if p.Trailing && rttree.IsComponent(n) {
		return nil, ErrInvalidRoot
	}
	return n, nil
}
