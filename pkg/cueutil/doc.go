// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema and
// renders Go values back to CUE source.
//
// Both the rtsh configuration file and namespace snapshots use the same
// three steps: compile the schema, unify the user document with one of its
// definitions, then validate and decode into a Go struct.
//
//	//go:embed namespace_schema.cue
//	var namespaceSchema []byte
//
//	res, err := cueutil.ParseAndDecode[Document](
//	    namespaceSchema, data, "#Namespace",
//	    cueutil.WithFilename("tree.cue"),
//	)
//
// Errors carry the CUE path of the offending field, for example
// `tree.cue: servers[0].children[1].kind: ...`.
package cueutil
