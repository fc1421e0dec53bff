// SPDX-License-Identifier: MPL-2.0

package rttree

import (
	"slices"
	"strings"

	"github.com/rtshell/rtshell/internal/rtpath"
)

type (
	// Node is an entry in the namespace tree. The set of implementations is
	// closed: *NameServer, *Directory, *Manager and *Component.
	Node interface {
		// Kind returns the variant tag of the node.
		Kind() Kind
		// Name returns the node's own name ("/" for the root).
		Name() string
		// FullPath returns the absolute path of the node.
		FullPath() string
		// Path returns the parsed absolute path of the node.
		Path() rtpath.Path
		// Parent returns the enclosing node, or nil for the root and for
		// detached nodes.
		Parent() Node
		// Children enumerates the nodes directly below this one, sorted by
		// name. Components have no children.
		Children() ([]Node, error)

		base() *nodeBase
	}

	// Container is implemented by the nodes that hold other nodes.
	Container interface {
		Node
		// Child returns the named child, or nil when there is none.
		Child(name string) (Node, error)
		// Bind registers target under name.
		Bind(name string, target Node) error
		// Unbind removes the registration of name.
		Unbind(name string) error
	}

	nodeBase struct {
		name   string
		parent Container
		tree   *Tree
	}

	// container implements child bookkeeping shared by every directory kind.
	container struct {
		nodeBase
		children map[string]Node
	}
)

func (b *nodeBase) base() *nodeBase { return b }

// Name returns the node's own name.
func (b *nodeBase) Name() string {
	if b.parent == nil && b.name == "" {
		return rtpath.Root
	}
	return b.name
}

// Parent returns the enclosing node.
func (b *nodeBase) Parent() Node {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func (b *nodeBase) elems() []string {
	var elems []string
	for n := b; n.parent != nil; n = n.parent.base() {
		elems = append(elems, n.name)
	}
	slices.Reverse(elems)
	return elems
}

// Path returns the parsed absolute path of the node.
func (b *nodeBase) Path() rtpath.Path {
	return rtpath.Path{Elems: b.elems()}
}

// FullPath returns the absolute path of the node.
func (b *nodeBase) FullPath() string {
	return rtpath.Root + strings.Join(b.elems(), rtpath.Separator)
}

func (b *nodeBase) attach(parent Container, name string, tree *Tree) {
	b.parent = parent
	b.name = name
	b.tree = tree
}

func (b *nodeBase) detach() {
	b.parent = nil
	b.tree = nil
}

func (b *nodeBase) invalidate() {
	if b.tree != nil {
		b.tree.purge()
	}
}

func newContainer(name string) container {
	return container{nodeBase: nodeBase{name: name}, children: make(map[string]Node)}
}

func (c *container) sortedChildren() []Node {
	names := make([]string, 0, len(c.children))
	for n := range c.children {
		names = append(names, n)
	}
	slices.Sort(names)
	out := make([]Node, 0, len(names))
	for _, n := range names {
		out = append(out, c.children[n])
	}
	return out
}

func (c *container) bind(self Container, name string, target Node, allowed func(Kind) bool) error {
	if name == "" || strings.ContainsAny(name, rtpath.Separator+rtpath.PortSeparator) {
		return &BadPathError{Name: name, Reason: "invalid name"}
	}
	if target == nil {
		return &BadPathError{Name: name, Reason: "nothing to bind"}
	}
	if !allowed(target.Kind()) {
		return &BadPathError{Name: name, Reason: "cannot bind a " + target.Kind().String() + " here"}
	}
	if _, exists := c.children[name]; exists {
		return &BadPathError{Name: name, Reason: "name already bound"}
	}
	if target.Parent() != nil {
		return &BadPathError{Name: name, Reason: "object is already bound at " + target.FullPath()}
	}
	target.base().attach(self, name, c.tree)
	setTree(target, c.tree)
	c.children[name] = target
	c.invalidate()
	return nil
}

func (c *container) unbind(name string) error {
	child, ok := c.children[name]
	if !ok {
		return &BadPathError{Name: name, Reason: "no such name registered"}
	}
	delete(c.children, name)
	child.base().detach()
	c.invalidate()
	return nil
}

// setTree propagates tree ownership to a freshly bound subtree.
func setTree(n Node, tree *Tree) {
	n.base().tree = tree
	if c, ok := n.(interface{ rawChildren() map[string]Node }); ok {
		for _, child := range c.rawChildren() {
			setTree(child, tree)
		}
	}
}

func (c *container) rawChildren() map[string]Node { return c.children }

// IsDirectory reports whether n can hold other nodes.
func IsDirectory(n Node) bool { return n != nil && n.Kind().IsDirectory() }

// IsComponent reports whether n is a component.
func IsComponent(n Node) bool { return n != nil && n.Kind() == KindComponent }

// IsManager reports whether n is a manager.
func IsManager(n Node) bool { return n != nil && n.Kind() == KindManager }

// IsNameServer reports whether n is a name server.
func IsNameServer(n Node) bool { return n != nil && n.Kind() == KindNameServer }
