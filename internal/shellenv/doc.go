// SPDX-License-Identifier: MPL-2.0

// Package shellenv renders the single line a parent shell evaluates to
// update the rtsh working directory variable.
//
// rtsh cannot change its parent's environment, so `rtsh cd` prints a
// command such as `export RTCSH_CWD="/localhost"` and a shell function
// wrapping it evaluates the output.
package shellenv
