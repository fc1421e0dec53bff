// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Commands report failures as an ActionableError: a one-line diagnostic in
// the form `rtsh find: /localhost/nope: no such directory or object`, an
// optional list of suggestions, and a reference to an Issue whose Markdown
// help is rendered with glamour when the user asks for verbose output.
package issue
