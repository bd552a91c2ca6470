// Package version exposes the build metadata reported by the rank
// command's -version flag. The values are overridden at build time via
// -ldflags "-X".
package version

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// GitSHA identifies the commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)
