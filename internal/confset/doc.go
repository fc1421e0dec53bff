// SPDX-License-Identifier: MPL-2.0

// Package confset lists, edits and activates the configuration sets of a
// component.
//
// A component always has exactly one active set, and the values it runs
// with are the values of that set at the moment it was last activated.
// Editing the stored active set therefore has no effect until the set is
// activated again; Manager.SetValue does that itself so callers cannot
// forget.
package confset
