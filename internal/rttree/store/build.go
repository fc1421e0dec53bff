// SPDX-License-Identifier: MPL-2.0

package store

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rtshell/rtshell/internal/rttree"
)

// ErrInvalidDocument is returned when a snapshot passes the schema but
// cannot be turned into a tree.
var ErrInvalidDocument = errors.New("invalid namespace snapshot")

// InvalidDocumentError names the entry of a snapshot that could not be built.
type InvalidDocumentError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidDocument for errors.Is() compatibility.
func (e *InvalidDocumentError) Unwrap() error { return ErrInvalidDocument }

// Build creates a tree from doc.
func Build(doc *Document, opts ...rttree.Option) (*rttree.Tree, error) {
	tree := rttree.New(opts...)
	for _, sd := range normalize(doc).Servers {
		ns := rttree.NewNameServer(sd.Name, sd.Address)
		if err := tree.AddNameServer(ns); err != nil {
			return nil, &InvalidDocumentError{Path: "/" + sd.Name, Reason: err.Error()}
		}
		if err := bindAll(ns, sd.Children); err != nil {
			return nil, err
		}
		// Marked last; an unreachable server refuses binds too.
		ns.SetUnreachable(sd.Unreachable)
	}
	return tree, nil
}

func bindAll(parent rttree.Container, docs []NodeDoc) error {
	for i := range docs {
		nd := &docs[i]
		n, err := buildNode(nd)
		if err != nil {
			return &InvalidDocumentError{Path: parent.FullPath() + "/" + nd.Name, Reason: err.Error()}
		}
		if err := parent.Bind(nd.Name, n); err != nil {
			return &InvalidDocumentError{Path: parent.FullPath() + "/" + nd.Name, Reason: err.Error()}
		}
		if c, ok := n.(rttree.Container); ok {
			if err := bindAll(c, nd.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildNode(nd *NodeDoc) (rttree.Node, error) {
	kind, ok := rttree.ParseKind(nd.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", nd.Kind)
	}

	switch kind {
	case rttree.KindDirectory:
		return rttree.NewDirectory(nd.Name), nil
	case rttree.KindManager:
		m := rttree.NewManager(nd.Name)
		m.Loadable = slices.Clone(nd.Loadable)
		return m, nil
	case rttree.KindComponent:
		if len(nd.Children) > 0 {
			return nil, errors.New("a component cannot have children")
		}
		return buildComponent(nd)
	default:
		return nil, fmt.Errorf("kind %s cannot appear below a name server", kind)
	}
}

func buildComponent(nd *NodeDoc) (*rttree.Component, error) {
	c := rttree.NewComponent(nd.Name)
	c.TypeName = nd.TypeName
	c.Vendor = nd.Vendor
	c.Category = nd.Category

	// The first set added becomes the active one.
	sets := slices.Clone(nd.ConfSets)
	if nd.ActiveSet != "" {
		i := slices.IndexFunc(sets, func(s ConfSetDoc) bool { return s.Name == nd.ActiveSet })
		if i < 0 {
			return nil, fmt.Errorf("active set %q is not defined", nd.ActiveSet)
		}
		active := sets[i]
		sets = append([]ConfSetDoc{active}, slices.Delete(sets, i, i+1)...)
	}
	for _, s := range sets {
		c.AddConfSet(rttree.ConfigurationSet{Name: s.Name, Description: s.Description, Data: maps.Clone(s.Data)})
	}

	for _, p := range nd.Ports {
		c.AddPort(rttree.Port{Name: p.Name, Type: p.Type})
	}
	for _, ec := range nd.ExecContexts {
		state, ok := rttree.ParseExecState(ec.State)
		if !ok {
			return nil, fmt.Errorf("unknown execution state %q", ec.State)
		}
		c.AddExecContext(rttree.ExecContext{Handle: ec.Handle, Kind: ec.Kind, Rate: ec.Rate, State: state})
	}
	return c, nil
}

// Snapshot describes tree as a document. Unreachable name servers keep
// their registered children.
func Snapshot(tree *rttree.Tree) (*Document, error) {
	doc := &Document{Servers: []ServerDoc{}}
	for _, ns := range tree.NameServers() {
		sd := ServerDoc{Name: ns.Name(), Unreachable: ns.Unreachable()}
		if ns.Address != ns.Name() {
			sd.Address = ns.Address
		}
		children, err := snapshotNodes(ns.Registered())
		if err != nil {
			return nil, err
		}
		sd.Children = children
		doc.Servers = append(doc.Servers, sd)
	}
	return doc, nil
}

func snapshotNodes(nodes []rttree.Node) ([]NodeDoc, error) {
	var out []NodeDoc
	for _, n := range nodes {
		nd := NodeDoc{Name: n.Name(), Kind: n.Kind().String()}
		switch v := n.(type) {
		case *rttree.Component:
			snapshotComponent(v, &nd)
		case *rttree.Manager:
			nd.Loadable = slices.Clone(v.Loadable)
		}
		if c, ok := n.(rttree.Container); ok {
			children, err := c.Children()
			if err != nil {
				return nil, err
			}
			if nd.Children, err = snapshotNodes(children); err != nil {
				return nil, err
			}
		}
		out = append(out, nd)
	}
	return out, nil
}

func snapshotComponent(c *rttree.Component, nd *NodeDoc) {
	nd.TypeName = c.TypeName
	nd.Vendor = c.Vendor
	nd.Category = c.Category
	nd.ActiveSet = c.ActiveConfSetName()

	sets := c.ConfSets()
	for _, name := range slices.Sorted(maps.Keys(sets)) {
		s := sets[name]
		nd.ConfSets = append(nd.ConfSets, ConfSetDoc{Name: s.Name, Description: s.Description, Data: s.Data})
	}
	for _, p := range c.Ports() {
		nd.Ports = append(nd.Ports, PortDoc{Name: p.Name, Type: p.Type})
	}
	for _, ec := range c.ExecContexts() {
		nd.ExecContexts = append(nd.ExecContexts, ExecContextDoc{
			Handle: ec.Handle,
			Kind:   ec.Kind,
			Rate:   ec.Rate,
			State:  ec.State.String(),
		})
	}
}
