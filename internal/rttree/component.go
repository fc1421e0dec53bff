// SPDX-License-Identifier: MPL-2.0

package rttree

import (
	"maps"
	"slices"
)

// ExecState is the state of a component within one execution context.
type ExecState int

const (
	// StateInactive means the component is created but not executing.
	StateInactive ExecState = iota
	// StateActive means the component is executing.
	StateActive
	// StateError means the component stopped with an error and must be reset.
	StateError
)

type (
	// ConfigurationSet is a named bag of configuration parameters.
	ConfigurationSet struct {
		Name        string
		Description string
		Data        map[string]string
	}

	// Port is a communication endpoint owned by a component.
	Port struct {
		Name string
		// Type is the port interface type, e.g. "DataInPort".
		Type string
	}

	// ExecContext is an execution context the component participates in.
	ExecContext struct {
		Handle int
		Kind   string
		Rate   float64
		State  ExecState
	}

	// Configurable is the configuration-set capability of a component.
	Configurable interface {
		// ConfSets returns copies of the component's configuration sets.
		ConfSets() map[string]ConfigurationSet
		// ActiveConfSetName returns the name of the active set.
		ActiveConfSetName() string
		// SetConfSetValue changes one parameter of a stored set. It does not
		// change the values the running component uses.
		SetConfSetValue(set, param, value string) error
		// ActivateConfSet makes set the active set and pushes its values into
		// the running component.
		ActivateConfSet(set string) error
	}

	// Component is a running component.
	Component struct {
		nodeBase

		// TypeName, Vendor and Category describe the component's profile.
		TypeName string
		Vendor   string
		Category string

		ports        []Port
		confSets     map[string]*ConfigurationSet
		activeSet    string
		applied      map[string]string
		activations  int
		execContexts []*ExecContext
	}
)

var _ Configurable = (*Component)(nil)

// String returns a lower-case name for the state.
func (s ExecState) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseExecState converts the String form back into an ExecState.
func ParseExecState(s string) (ExecState, bool) {
	switch s {
	case "", "inactive":
		return StateInactive, true
	case "active":
		return StateActive, true
	case "error":
		return StateError, true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of the set.
func (s ConfigurationSet) Clone() ConfigurationSet {
	s.Data = maps.Clone(s.Data)
	if s.Data == nil {
		s.Data = map[string]string{}
	}
	return s
}

// NewComponent creates a detached component.
func NewComponent(name string) *Component {
	return &Component{
		nodeBase: nodeBase{name: name},
		confSets: make(map[string]*ConfigurationSet),
		applied:  make(map[string]string),
	}
}

// Kind returns KindComponent.
func (c *Component) Kind() Kind { return KindComponent }

// Children returns nothing; ports are not tree nodes.
func (c *Component) Children() ([]Node, error) { return nil, nil }

// AddPort adds a port to the component.
func (c *Component) AddPort(p Port) {
	c.ports = append(c.ports, p)
}

// Ports returns the component's ports.
func (c *Component) Ports() []Port { return slices.Clone(c.ports) }

// Port returns the named port.
func (c *Component) Port(name string) (Port, bool) {
	for _, p := range c.ports {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// AddConfSet stores a configuration set, replacing one of the same name.
// The first set added becomes the active set.
func (c *Component) AddConfSet(set ConfigurationSet) {
	s := set.Clone()
	c.confSets[s.Name] = &s
	if c.activeSet == "" {
		c.activeSet = s.Name
		c.applied = maps.Clone(s.Data)
	}
}

// ConfSets returns copies of the configuration sets keyed by name.
func (c *Component) ConfSets() map[string]ConfigurationSet {
	out := make(map[string]ConfigurationSet, len(c.confSets))
	for name, s := range c.confSets {
		out[name] = s.Clone()
	}
	return out
}

// ActiveConfSetName returns the name of the active set.
func (c *Component) ActiveConfSetName() string { return c.activeSet }

// SetConfSetValue updates a parameter of a stored set.
func (c *Component) SetConfSetValue(set, param, value string) error {
	s, ok := c.confSets[set]
	if !ok {
		return &NoSuchSetError{Set: set}
	}
	if _, ok := s.Data[param]; !ok {
		return &NoSuchParamError{Set: set, Param: param}
	}
	s.Data[param] = value
	return nil
}

// ActivateConfSet makes set active and applies its values.
func (c *Component) ActivateConfSet(set string) error {
	s, ok := c.confSets[set]
	if !ok {
		return &NoSuchSetError{Set: set}
	}
	c.activeSet = set
	c.applied = maps.Clone(s.Data)
	c.activations++
	return nil
}

// AppliedConfig returns the parameter values the running component uses.
func (c *Component) AppliedConfig() map[string]string {
	return maps.Clone(c.applied)
}

// Activations returns how many times a set has been activated.
func (c *Component) Activations() int { return c.activations }

// AddExecContext appends an execution context and returns its index.
func (c *Component) AddExecContext(ec ExecContext) int {
	e := ec
	c.execContexts = append(c.execContexts, &e)
	return len(c.execContexts) - 1
}

// ExecContexts returns copies of the component's execution contexts.
func (c *Component) ExecContexts() []ExecContext {
	out := make([]ExecContext, len(c.execContexts))
	for i, ec := range c.execContexts {
		out[i] = *ec
	}
	return out
}

// StateIn returns the component's state in the execution context at index.
func (c *Component) StateIn(index int) (ExecState, error) {
	ec, err := c.execContext(index)
	if err != nil {
		return 0, err
	}
	return ec.State, nil
}

// ActivateIn starts the component in the execution context at index.
func (c *Component) ActivateIn(index int) error {
	ec, err := c.execContext(index)
	if err != nil {
		return err
	}
	if ec.State == StateError {
		return ErrPrecondition
	}
	ec.State = StateActive
	return nil
}

// DeactivateIn stops the component in the execution context at index.
func (c *Component) DeactivateIn(index int) error {
	ec, err := c.execContext(index)
	if err != nil {
		return err
	}
	if ec.State == StateError {
		return ErrPrecondition
	}
	ec.State = StateInactive
	return nil
}

// ResetIn moves the component out of the error state in the execution
// context at index.
func (c *Component) ResetIn(index int) error {
	ec, err := c.execContext(index)
	if err != nil {
		return err
	}
	if ec.State != StateError {
		return ErrPrecondition
	}
	ec.State = StateInactive
	return nil
}

func (c *Component) execContext(index int) (*ExecContext, error) {
	if index < 0 || index >= len(c.execContexts) {
		return nil, &BadIndexError{Index: index}
	}
	return c.execContexts[index], nil
}
