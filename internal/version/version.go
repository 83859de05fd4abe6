// Copyright (c) 2026 The atomix Authors.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other atomix packages to avoid import cycles.

package version

import "runtime/debug"

// Version is the module version stamped by go install, or "dev" for local
// builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// UserAgent is sent with every request to the coordination service.
func UserAgent() string {
	return "atomix-cli/" + Version
}
