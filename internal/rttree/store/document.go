// SPDX-License-Identifier: MPL-2.0

package store

type (
	// Document is a namespace snapshot.
	Document struct {
		Servers []ServerDoc `json:"servers" toml:"servers" yaml:"servers"`
	}

	// ServerDoc describes one name server.
	ServerDoc struct {
		Name    string `json:"name" toml:"name" yaml:"name"`
		Address string `json:"address,omitempty" toml:"address,omitempty" yaml:"address,omitempty"`
		// Unreachable makes the server fail every enumeration, as a name
		// server that is registered but down would.
		Unreachable bool      `json:"unreachable,omitempty" toml:"unreachable,omitempty" yaml:"unreachable,omitempty"`
		Children    []NodeDoc `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
	}

	// NodeDoc describes a directory, manager or component.
	NodeDoc struct {
		Name     string    `json:"name" toml:"name" yaml:"name"`
		Kind     string    `json:"kind" toml:"kind" yaml:"kind"`
		Children []NodeDoc `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`

		Loadable []string `json:"loadable,omitempty" toml:"loadable,omitempty" yaml:"loadable,omitempty"`

		TypeName     string           `json:"type_name,omitempty" toml:"type_name,omitempty" yaml:"type_name,omitempty"`
		Vendor       string           `json:"vendor,omitempty" toml:"vendor,omitempty" yaml:"vendor,omitempty"`
		Category     string           `json:"category,omitempty" toml:"category,omitempty" yaml:"category,omitempty"`
		ActiveSet    string           `json:"active_set,omitempty" toml:"active_set,omitempty" yaml:"active_set,omitempty"`
		ConfSets     []ConfSetDoc     `json:"conf_sets,omitempty" toml:"conf_sets,omitempty" yaml:"conf_sets,omitempty"`
		Ports        []PortDoc        `json:"ports,omitempty" toml:"ports,omitempty" yaml:"ports,omitempty"`
		ExecContexts []ExecContextDoc `json:"exec_contexts,omitempty" toml:"exec_contexts,omitempty" yaml:"exec_contexts,omitempty"`
	}

	// ConfSetDoc describes a configuration set.
	ConfSetDoc struct {
		Name        string            `json:"name" toml:"name" yaml:"name"`
		Description string            `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
		Data        map[string]string `json:"data,omitempty" toml:"data,omitempty" yaml:"data,omitempty"`
	}

	// PortDoc describes a port.
	PortDoc struct {
		Name string `json:"name" toml:"name" yaml:"name"`
		Type string `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
	}

	// ExecContextDoc describes an execution context.
	ExecContextDoc struct {
		Handle int     `json:"handle,omitempty" toml:"handle,omitempty" yaml:"handle,omitempty"`
		Kind   string  `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`
		Rate   float64 `json:"rate,omitempty" toml:"rate,omitempty" yaml:"rate,omitempty"`
		State  string  `json:"state,omitempty" toml:"state,omitempty" yaml:"state,omitempty"`
	}
)
