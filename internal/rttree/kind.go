// SPDX-License-Identifier: MPL-2.0

package rttree

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindNameServer is a name server registered at the first tree level.
	KindNameServer Kind = iota + 1
	// KindDirectory is a plain naming context, including the tree root.
	KindDirectory
	// KindManager is a manager that creates and owns components.
	KindManager
	// KindComponent is a running component.
	KindComponent
)

// Letter returns the single-letter tag used by the find --type option.
func (k Kind) Letter() byte {
	switch k {
	case KindNameServer:
		return 'n'
	case KindDirectory:
		return 'd'
	case KindManager:
		return 'm'
	case KindComponent:
		return 'c'
	default:
		return '?'
	}
}

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNameServer:
		return "nameserver"
	case KindDirectory:
		return "directory"
	case KindManager:
		return "manager"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// IsDirectory reports whether nodes of this kind can hold other nodes.
// Name servers and managers are directories as well.
func (k Kind) IsDirectory() bool {
	return k == KindNameServer || k == KindDirectory || k == KindManager
}

// ParseKind converts the String form back into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "nameserver":
		return KindNameServer, true
	case "directory":
		return KindDirectory, true
	case "manager":
		return KindManager, true
	case "component":
		return KindComponent, true
	default:
		return 0, false
	}
}
