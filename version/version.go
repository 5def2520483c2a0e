package version

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetFullVersion returns the version, suffixed with the short commit for release builds
func GetFullVersion() string {
	if Version == "dev" || GitCommit == "unknown" {
		return Version
	}
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return Version + "+" + commit
}
