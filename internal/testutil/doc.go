// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover environment variables (MustSetenv, MustUnsetenv), the
// user's home and configuration directories (SetHomeDir, SetConfigDir) and
// fixture files (MustWriteFile, MustReadFile).
package testutil
