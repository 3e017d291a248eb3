// Package version holds build metadata injected with -ldflags.
package version

//nolint:gochecknoglobals // Set at build time via -ldflags "-X".
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line description of the build.
func String() string {
	return version + " (commit " + gitCommit + ", built " + buildDate + ")"
}
