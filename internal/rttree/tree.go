// SPDX-License-Identifier: MPL-2.0

package rttree

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rtshell/rtshell/internal/rtpath"
)

// DefaultCacheSize is the number of path lookups a Tree remembers.
const DefaultCacheSize = 256

type (
	// Tree is a namespace tree. Lookups by path are cached; any bind or
	// unbind anywhere in the tree clears the cache.
	Tree struct {
		root   *Directory
		cache  *lru.Cache[string, Node]
		logger *log.Logger
	}

	// Option configures a Tree.
	Option func(*treeOptions)

	treeOptions struct {
		cacheSize int
		logger    *log.Logger
	}
)

// WithCacheSize sets the lookup cache size. Zero or less disables caching.
func WithCacheSize(n int) Option {
	return func(o *treeOptions) { o.cacheSize = n }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *treeOptions) { o.logger = l }
}

// New creates an empty tree holding only the root directory.
func New(opts ...Option) *Tree {
	o := treeOptions{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	t := &Tree{logger: o.logger}
	t.root = NewDirectory("")
	t.root.tree = t
	if o.cacheSize > 0 {
		cache, err := lru.New[string, Node](o.cacheSize)
		if err == nil {
			t.cache = cache
		}
	}
	return t
}

// Root returns the root directory.
func (t *Tree) Root() *Directory { return t.root }

// AddNameServer binds a name server at the first level of the tree.
func (t *Tree) AddNameServer(ns *NameServer) error {
	return t.root.Bind(ns.Name(), ns)
}

// NameServers returns the name servers of the tree, sorted by name.
func (t *Tree) NameServers() []*NameServer {
	children, _ := t.root.Children()
	out := make([]*NameServer, 0, len(children))
	for _, c := range children {
		if ns, ok := c.(*NameServer); ok {
			out = append(out, ns)
		}
	}
	return out
}

// Get returns the node named by p. The trailing marker and port of p are
// ignored; callers decide what they mean.
func (t *Tree) Get(p rtpath.Path) (Node, error) {
	key := p.Key()
	if t.cache != nil {
		if n, ok := t.cache.Get(key); ok {
			t.logger.Debug("lookup cache hit", "path", key)
			return n, nil
		}
	}

	var cur Node = t.root
	for i, name := range p.Elems {
		c, ok := cur.(Container)
		if !ok {
			return nil, &NotFoundError{Path: key}
		}
		next, err := c.Child(name)
		if err != nil {
			return nil, fmt.Errorf("look up %s: %w", rtpath.Path{Elems: p.Elems[:i+1]}, err)
		}
		if next == nil {
			return nil, &NotFoundError{Path: key}
		}
		cur = next
	}

	if t.cache != nil {
		t.cache.Add(key, cur)
	}
	return cur, nil
}

// Has reports whether p names a node.
func (t *Tree) Has(p rtpath.Path) bool {
	_, err := t.Get(p)
	return err == nil
}

// GetComponent returns the component named by p.
func (t *Tree) GetComponent(p rtpath.Path) (*Component, error) {
	n, err := t.Get(p)
	if err != nil {
		return nil, err
	}
	c, ok := n.(*Component)
	if !ok {
		return nil, &TypeMismatchError{Path: p.Key(), Want: KindComponent.String(), Got: n.Kind()}
	}
	return c, nil
}

// Walk visits every node reachable from the root in depth-first order.
// Enumeration errors stop the walk and are returned.
func (t *Tree) Walk(fn func(Node) error) error {
	return walk(t.root, fn)
}

func walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	children, err := n.Children()
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) purge() {
	if t.cache != nil {
		t.cache.Purge()
	}
}
