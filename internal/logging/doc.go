// SPDX-License-Identifier: MPL-2.0

// Package logging builds the single charmbracelet/log logger rtsh writes
// diagnostics through. Command output never goes through it.
package logging
