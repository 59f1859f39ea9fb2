// Package version carries the build identity stamped in via ldflags.
package version

import "fmt"

var (
	// Version is the release name, "dev" for local builds.
	Version = "dev"

	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the full version line shown by --version.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("schoolseed %s (%s, built %s)", Version, commit, BuildTime)
}
