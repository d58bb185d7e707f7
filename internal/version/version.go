// Package version provides version information for glide.
package version

// Version is the version of glide. This can be overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}
