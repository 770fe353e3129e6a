// Package version carries the build identification shown in the About
// dialog and the startup log.
package version

import "fmt"

// Set at build time via -ldflags "-X anatomy-mapper/internal/version.Version=..."
var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String renders the full build identification, e.g.
// "0.1.0 (abc1234, built 2026-08-30T12:00:00Z)".
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildTime)
}
