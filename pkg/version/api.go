/*
Package version derives a human-readable version string for the
running binary from the build information embedded by the Go
toolchain. The result is an explicitly owned value computed at
startup and passed to whatever needs it; no package-level state is
kept.
*/
package version

type Info struct {
	Commit  string // Short VCS commit hash, if known.
	Dirty   bool   // True if the working tree had local modifications.
	Version string // Module version or release tag, if known.
}

// Get returns version information for the running binary.
func Get() Info {
	return get()
}

// String returns the release tag if one is known, else a string
// derived from the commit hash, with a "-dirty" suffix when built
// from a modified tree.
func (i Info) String() string {
	return i.toString()
}
