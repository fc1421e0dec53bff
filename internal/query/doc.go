// SPDX-License-Identifier: MPL-2.0

// Package query searches a namespace tree the way find(1) searches a file
// system.
//
// Run walks the tree below a root node depth first and lazily yields the
// display path of every node whose kind is selected by the filter's type set
// and whose full path matches at least one of the filter's name patterns.
// Walking never changes the tree, but it also takes no snapshot: a sequence
// observes whatever the tree looks like while it is being consumed.
package query
