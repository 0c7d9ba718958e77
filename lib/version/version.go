// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

// Package version exposes the build version stamped into GoTicket
// binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time via
// -ldflags "-X github.com/goticket/goticket/lib/version.Version=v1.2.3".
// Unstamped builds fall back to module build info.
var Version = ""

// String returns the version to display.
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// Print writes the standard --version line for the named binary.
func Print(binaryName string) {
	fmt.Printf("%s %s\n", binaryName, String())
}
