// SPDX-License-Identifier: MPL-2.0

// Package types defines small validated value types shared by the rtsh
// packages: process exit codes and filesystem paths given on the command
// line or in configuration.
//
// This package is a leaf dependency: it imports only the standard library.
package types
