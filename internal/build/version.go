// Package build provides version and build information for
// template-init. It intentionally has no dependencies on other
// internal packages to avoid import cycles.
package build

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line shown in the wizard banner.
func String() string {
	return "template-init " + Version
}

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}
