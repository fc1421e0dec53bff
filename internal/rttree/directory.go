// SPDX-License-Identifier: MPL-2.0

package rttree

type (
	// Directory is a plain naming context. The tree root is a Directory.
	Directory struct {
		container
	}

	// NameServer is a name server at the first level of the tree.
	NameServer struct {
		container
		// Address is the host[:port] the name server was registered with.
		Address string
		// unreachable makes enumeration fail, as when the server is down.
		unreachable bool
	}

	// Manager is a manager process. The components it owns are listed below
	// it; deleting them is the manager's business, not the name server's.
	Manager struct {
		container
		// Loadable lists the module names the manager can create components from.
		Loadable []string
	}
)

var (
	_ Container = (*Directory)(nil)
	_ Container = (*NameServer)(nil)
	_ Container = (*Manager)(nil)
)

// NewDirectory creates a detached directory.
func NewDirectory(name string) *Directory {
	return &Directory{container: newContainer(name)}
}

// NewNameServer creates a detached name server.
func NewNameServer(name, address string) *NameServer {
	if address == "" {
		address = name
	}
	return &NameServer{container: newContainer(name), Address: address}
}

// NewManager creates a detached manager.
func NewManager(name string) *Manager {
	return &Manager{container: newContainer(name)}
}

// Kind returns KindDirectory.
func (d *Directory) Kind() Kind { return KindDirectory }

// Children returns the nodes bound in the directory.
func (d *Directory) Children() ([]Node, error) { return d.sortedChildren(), nil }

// Child returns the named child, or nil.
func (d *Directory) Child(name string) (Node, error) { return d.children[name], nil }

// Bind binds target under name. The root accepts only name servers; other
// directories accept anything but name servers.
func (d *Directory) Bind(name string, target Node) error {
	isRoot := d.parent == nil && d.tree != nil && d.tree.root == d
	return d.bind(d, name, target, func(k Kind) bool {
		if isRoot {
			return k == KindNameServer
		}
		return k != KindNameServer
	})
}

// Unbind removes name from the directory.
func (d *Directory) Unbind(name string) error { return d.unbind(name) }

// Kind returns KindNameServer.
func (s *NameServer) Kind() Kind { return KindNameServer }

// SetUnreachable marks the server as unreachable (or reachable again).
func (s *NameServer) SetUnreachable(v bool) { s.unreachable = v }

// Unreachable reports whether the server is marked unreachable.
func (s *NameServer) Unreachable() bool { return s.unreachable }

// Children returns the nodes registered on the server.
func (s *NameServer) Children() ([]Node, error) {
	if s.unreachable {
		return nil, &UnreachableError{Server: s.Address}
	}
	return s.sortedChildren(), nil
}

// Registered returns the registrations recorded for the server, even when it
// is unreachable.
func (s *NameServer) Registered() []Node { return s.sortedChildren() }

// Child returns the named child, or nil.
func (s *NameServer) Child(name string) (Node, error) {
	if s.unreachable {
		return nil, &UnreachableError{Server: s.Address}
	}
	return s.children[name], nil
}

// Bind registers target on the server.
func (s *NameServer) Bind(name string, target Node) error {
	if s.unreachable {
		return &UnreachableError{Server: s.Address}
	}
	return s.bind(s, name, target, func(k Kind) bool { return k != KindNameServer })
}

// Unbind removes a registration from the server.
func (s *NameServer) Unbind(name string) error {
	if s.unreachable {
		return &UnreachableError{Server: s.Address}
	}
	return s.unbind(name)
}

// Kind returns KindManager.
func (m *Manager) Kind() Kind { return KindManager }

// Children returns the components and slave managers of the manager.
func (m *Manager) Children() ([]Node, error) { return m.sortedChildren(), nil }

// Child returns the named child, or nil.
func (m *Manager) Child(name string) (Node, error) { return m.children[name], nil }

// Bind adds a component or slave manager to the manager.
func (m *Manager) Bind(name string, target Node) error {
	return m.bind(m, name, target, func(k Kind) bool {
		return k == KindComponent || k == KindManager
	})
}

// Unbind removes a component or slave manager from the manager.
func (m *Manager) Unbind(name string) error { return m.unbind(name) }
