// SPDX-License-Identifier: MPL-2.0

// Package store loads and saves namespace snapshots.
//
// A snapshot describes the name servers of a namespace and everything bound
// below them. It can be written as CUE, TOML, YAML or JSON; the format is
// chosen from the file extension and every format is validated against the
// same embedded CUE schema (#Namespace) before a tree is built from it.
//
// Commands that mutate the namespace (rtsh conf set, rtsh del, rtsh act)
// write the tree back with Save in the format it was loaded from.
package store
