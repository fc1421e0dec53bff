// SPDX-License-Identifier: MPL-2.0

// Package config handles rtsh configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/rtsh/config.cue on Linux,
// ~/Library/Application Support/rtsh/config.cue on macOS and
// %APPDATA%\rtsh\config.cue on Windows, or from the file named by --config.
// Values are validated against the embedded config_schema.cue, merged over the
// defaults, and may be overridden by RTSH_* environment variables
// (for example RTSH_CACHE_SIZE or RTSH_UI_VERBOSE).
package config
