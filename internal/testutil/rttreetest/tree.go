// SPDX-License-Identifier: MPL-2.0

package rttreetest

import (
	"testing"

	"github.com/rtshell/rtshell/internal/rttree"
)

// ComponentOption configures a test component.
type ComponentOption func(*rttree.Component)

// NewComponent creates a detached component with the given options applied
// in order. Configuration sets are given as name, description and
// alternating key/value pairs.
func NewComponent(name string, opts ...ComponentOption) *rttree.Component {
	c := rttree.NewComponent(name)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithConfSet adds a configuration set. kv holds alternating keys and values.
func WithConfSet(name, description string, kv ...string) ComponentOption {
	return func(c *rttree.Component) {
		data := make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			data[kv[i]] = kv[i+1]
		}
		c.AddConfSet(rttree.ConfigurationSet{Name: name, Description: description, Data: data})
	}
}

// WithActiveSet activates the named set. It must be applied after the set
// was added.
func WithActiveSet(name string) ComponentOption {
	return func(c *rttree.Component) {
		_ = c.ActivateConfSet(name) // test fixture; a missing set shows up in assertions
	}
}

// WithPort adds a port.
func WithPort(name, typ string) ComponentOption {
	return func(c *rttree.Component) {
		c.AddPort(rttree.Port{Name: name, Type: typ})
	}
}

// WithExecContext adds an execution context in the given state.
func WithExecContext(state rttree.ExecState) ComponentOption {
	return func(c *rttree.Component) {
		c.AddExecContext(rttree.ExecContext{Handle: len(c.ExecContexts()), Kind: "periodic", Rate: 1000, State: state})
	}
}

// MustBind binds target under parent, failing the test on error.
func MustBind(t testing.TB, parent rttree.Container, name string, target rttree.Node) {
	t.Helper()
	if err := parent.Bind(name, target); err != nil {
		t.Fatalf("failed to bind %s under %s: %v", name, parent.FullPath(), err)
	}
}

// Sample builds the tree used across command and engine tests:
//
//	/
//	  localhost/                    name server
//	    ConsoleIn0.rtc              component (sets: default*, outdoor)
//	    ConsoleOut0.rtc             component
//	    lab.host_cxt/               directory
//	      Sensor0.rtc               component
//	      motor.host_cxt/           directory
//	        Motor0.rtc              component
//	    manager.mgr/                manager
//	      Motor1.rtc                component
//	  remotehost/                   name server
func Sample(t testing.TB) *rttree.Tree {
	t.Helper()

	tree := rttree.New()
	localhost := rttree.NewNameServer("localhost", "localhost:2809")
	remote := rttree.NewNameServer("remotehost", "remotehost:2809")
	if err := tree.AddNameServer(localhost); err != nil {
		t.Fatalf("failed to add name server: %v", err)
	}
	if err := tree.AddNameServer(remote); err != nil {
		t.Fatalf("failed to add name server: %v", err)
	}

	consoleIn := NewComponent("ConsoleIn0.rtc",
		WithConfSet("default", "Default configuration", "max_speed", "1", "gain", "0.5"),
		WithConfSet("outdoor", "", "max_speed", "3", "gain", "0.8"),
		WithPort("out", "DataOutPort"),
		WithExecContext(rttree.StateInactive),
	)
	MustBind(t, localhost, "ConsoleIn0.rtc", consoleIn)
	MustBind(t, localhost, "ConsoleOut0.rtc", NewComponent("ConsoleOut0.rtc",
		WithPort("in", "DataInPort"),
		WithExecContext(rttree.StateActive),
	))

	lab := rttree.NewDirectory("lab.host_cxt")
	MustBind(t, localhost, "lab.host_cxt", lab)
	MustBind(t, lab, "Sensor0.rtc", NewComponent("Sensor0.rtc"))
	motorDir := rttree.NewDirectory("motor.host_cxt")
	MustBind(t, lab, "motor.host_cxt", motorDir)
	MustBind(t, motorDir, "Motor0.rtc", NewComponent("Motor0.rtc",
		WithExecContext(rttree.StateError),
	))

	mgr := rttree.NewManager("manager.mgr")
	MustBind(t, localhost, "manager.mgr", mgr)
	MustBind(t, mgr, "Motor1.rtc", NewComponent("Motor1.rtc"))

	return tree
}
