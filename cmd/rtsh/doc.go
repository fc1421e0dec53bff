// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for rtsh.
//
// This package implements the Cobra command hierarchy for the rtsh CLI: the
// namespace commands (cd, pwd, find, conf, del, act, deact, reset), shell
// completion and configuration management. Commands resolve their path
// argument against the working directory held in $RTCSH_CWD, load the
// namespace snapshot, and write it back after a mutation.
package cmd
