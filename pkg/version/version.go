package version

// Overridden at build time via -ldflags.
var (
	Version   = "0.2.4"
	BuildDate = "unknown"
	GitCommit = "unknown"
)
