// Package version reports the rl-academy build.
package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time with -ldflags "-X .../internal/version.Version=...".
var Version = "development"

// Commit is the git commit the binary was built from.
var Commit = "unknown"

// String returns the version, suffixed with the commit when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Full returns the version line printed by the version command.
func Full() string {
	return fmt.Sprintf("rl-academy %s (%s %s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
