// SPDX-License-Identifier: MPL-2.0

// Package rtpath resolves command-line paths in the component namespace.
//
// Paths typed by the user may be relative to a virtual working directory that
// lives outside the process (normally an environment variable maintained by the
// enclosing shell). Resolve turns such a path into an absolute one, and Parse
// splits an absolute path into naming elements and an optional port name.
//
// The separator is always '/', and a trailing separator is significant: it
// marks the path as naming a directory. Port names follow the last element
// after a ':' (for example /localhost/motor0.rtc:in).
package rtpath
