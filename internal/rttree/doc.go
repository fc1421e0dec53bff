// SPDX-License-Identifier: MPL-2.0

// Package rttree models the namespace of running components that the rtsh
// commands operate on.
//
// The namespace is a tree rooted at "/". Its first level holds name servers;
// below them are naming-context directories, managers and components.
// Components carry ports, configuration sets and execution contexts.
//
// Node is a closed set of variants (*NameServer, *Directory, *Manager,
// *Component) distinguished by Kind, so callers can switch over every kind
// exhaustively instead of probing for capabilities.
package rttree
