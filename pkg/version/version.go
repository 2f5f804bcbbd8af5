// Package version reports the datagrid build version.
package version

// Build information, set with -ldflags "-X github.com/rshade/datagrid/pkg/version.version=...".
//
//nolint:gochecknoglobals // Set at link time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// GetVersion returns the semantic version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}
