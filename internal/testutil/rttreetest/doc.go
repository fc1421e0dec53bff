// SPDX-License-Identifier: MPL-2.0

// Package rttreetest builds namespace trees for tests.
//
// This package is separate from testutil so that rttree's own tests can use
// testutil without importing rttree back.
//
// # Usage
//
//	import "github.com/rtshell/rtshell/internal/testutil/rttreetest"
//
//	tree := rttreetest.Sample(t)
//	comp := rttreetest.NewComponent("motor0.rtc", rttreetest.WithConfSet("default", "", "speed", "1"))
package rttreetest
