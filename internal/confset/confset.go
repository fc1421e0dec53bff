// SPDX-License-Identifier: MPL-2.0

package confset

import (
	"maps"
	"slices"

	"github.com/rtshell/rtshell/internal/rttree"
)

type (
	// Param is one configuration parameter.
	Param struct {
		Key   string
		Value string
	}

	// Entry describes one configuration set for display.
	Entry struct {
		Name        string
		Description string
		Active      bool
		// Params is only filled in for long listings.
		Params []Param
	}

	// Manager operates on the configuration sets of components.
	Manager struct{}
)

// List returns the component's sets sorted by name. Parameters, sorted by
// key, are included only when long is set.
func (Manager) List(c rttree.Configurable, long bool) []Entry {
	sets := c.ConfSets()
	active := c.ActiveConfSetName()

	names := slices.Sorted(maps.Keys(sets))
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		s := sets[name]
		e := Entry{Name: name, Description: s.Description, Active: name == active}
		if long {
			for _, k := range slices.Sorted(maps.Keys(s.Data)) {
				e.Params = append(e.Params, Param{Key: k, Value: s.Data[k]})
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// SetValue changes param in the named set, or in the active set when set is
// empty. If the changed set is the active one it is activated again so the
// running component picks up the new value. Nothing is changed when the set
// or parameter does not exist.
func (m Manager) SetValue(c rttree.Configurable, set, param, value string) error {
	if set == "" {
		set = c.ActiveConfSetName()
	}
	if err := c.SetConfSetValue(set, param, value); err != nil {
		return err
	}
	if set == c.ActiveConfSetName() {
		return m.Activate(c, set)
	}
	return nil
}

// Activate makes set the active set and applies its values, even if it is
// already active.
func (Manager) Activate(c rttree.Configurable, set string) error {
	return c.ActivateConfSet(set)
}
